package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Provider supplies one course definition.
type Provider interface {
	// Name identifies the provider in logs and is the slug fallback when Meta has none.
	Name() string
	Meta() (CourseMeta, error)
	Modules() ([]Module, error)
}

// QuizProvider is implemented by providers that ship quiz questions, keyed by module slug.
type QuizProvider interface {
	Quizzes() (map[string][]QuizQuestion, error)
}

// Source yields the providers evaluated each time the registry is built. An error means
// the source could not be listed at all; the registry logs it and carries on.
type Source interface {
	Providers() ([]Provider, error)
}

// Static is a fixed, compiled-in list of providers.
type Static []Provider

func (s Static) Providers() ([]Provider, error) {
	return s, nil
}

// Dir is a directory of YAML course files. Files are read on every registry build so a
// reload picks up edits. A directory that does not exist holds no courses.
type Dir string

func (d Dir) Providers() ([]Provider, error) {
	entries, err := os.ReadDir(string(d))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	var providers []Provider
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		providers = append(providers, LoadFile(filepath.Join(string(d), e.Name())))
	}
	return providers, nil
}

type fileCourse struct {
	Meta    CourseMeta                `yaml:"meta"`
	Modules []Module                  `yaml:"modules"`
	Quizzes map[string][]QuizQuestion `yaml:"quizzes"`
}

// FileProvider is a course parsed from a YAML document. A read or parse failure is kept
// and returned from every accessor.
type FileProvider struct {
	path   string
	course fileCourse
	err    error
}

func LoadFile(path string) *FileProvider {
	p := &FileProvider{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		p.err = err
		return p
	}

	if err := yaml.Unmarshal(data, &p.course); err != nil {
		p.err = fmt.Errorf("parse %s: %w", path, err)
		return p
	}

	if len(p.course.Modules) == 0 {
		p.err = fmt.Errorf("%s: course has no modules", path)
	}
	return p
}

func (p *FileProvider) Name() string {
	base := filepath.Base(p.path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (p *FileProvider) Meta() (CourseMeta, error) {
	return p.course.Meta, p.err
}

func (p *FileProvider) Modules() ([]Module, error) {
	return p.course.Modules, p.err
}

func (p *FileProvider) Quizzes() (map[string][]QuizQuestion, error) {
	return p.course.Quizzes, p.err
}
