package content

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// CourseMeta describes a course for listing pages. Empty strings are treated as absent.
type CourseMeta struct {
	Slug      string   `yaml:"slug" json:"slug"`
	Title     string   `yaml:"title" json:"title"`
	Summary   string   `yaml:"summary" json:"summary"`
	Duration  string   `yaml:"duration" json:"duration"`
	Level     string   `yaml:"level" json:"level"`
	HeroImage string   `yaml:"hero_image" json:"hero_image"`
	Thumbnail string   `yaml:"thumbnail" json:"thumbnail"`
	OGImage   string   `yaml:"og_image" json:"og_image"`
	Tags      []string `yaml:"tags" json:"tags"`
	// Order pins the course position on the landing page; nil falls back to level and title.
	Order *int `yaml:"order" json:"order"`
}

type Section struct {
	Title   string `yaml:"title" json:"title"`
	Content string `yaml:"content" json:"content"`
}

type Resource struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

type Module struct {
	Slug       string     `yaml:"slug" json:"slug"`
	Title      string     `yaml:"title" json:"title"`
	Summary    string     `yaml:"summary" json:"summary"`
	Sections   []Section  `yaml:"sections" json:"sections"`
	Resources  []Resource `yaml:"resources" json:"resources"`
	Guardrails []string   `yaml:"guardrails" json:"guardrails"`
}

type Option struct {
	Key   string
	Label string
}

// Options keeps answer options in authoring order. It encodes as a JSON object whose
// keys appear in that order.
type Options []Option

func (o Options) Label(key string) (string, bool) {
	for _, opt := range o {
		if opt.Key == key {
			return opt.Label, true
		}
	}
	return "", false
}

func (o Options) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, opt := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(opt.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(opt.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *Options) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: options must be a mapping of key to label", node.Line)
	}
	opts := make(Options, 0, len(node.Content)/2)
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		kn, vn := node.Content[i], node.Content[i+1]
		if kn.Kind != yaml.ScalarNode || vn.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: option key and label must be scalars", kn.Line)
		}
		key, label := kn.Value, vn.Value
		if seen[key] {
			return fmt.Errorf("line %d: duplicate option key %q", node.Content[i].Line, key)
		}
		seen[key] = true
		opts = append(opts, Option{Key: key, Label: label})
	}
	*o = opts
	return nil
}

// QuizQuestion is a single multiple choice question. Correct holds the key of the right
// option and must never be sent to clients.
type QuizQuestion struct {
	ID      string  `yaml:"id"`
	Prompt  string  `yaml:"prompt"`
	Options Options `yaml:"options"`
	Correct string  `yaml:"correct"`
	Help    string  `yaml:"help"`
}

// Course is a fully loaded course as held by the registry.
type Course struct {
	Slug    string
	Meta    CourseMeta
	Modules []Module
	Quizzes map[string][]QuizQuestion
	Source  string
}

// CourseSummary is the landing-page card for a course. Absent values encode as null.
type CourseSummary struct {
	Slug      string   `json:"slug"`
	Title     *string  `json:"title"`
	Summary   *string  `json:"summary"`
	Duration  *string  `json:"duration"`
	Level     *string  `json:"level"`
	HeroImage *string  `json:"hero_image"`
	Thumbnail *string  `json:"thumbnail"`
	OGImage   *string  `json:"og_image"`
	Tags      []string `json:"tags"`
	Order     *int     `json:"order"`
}

// ModuleKey is the persistence identity of a module: "<course>:<module>".
func ModuleKey(courseSlug, moduleSlug string) string {
	return courseSlug + ":" + moduleSlug
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (c *Course) Summary() CourseSummary {
	tags := append([]string{}, c.Meta.Tags...)
	var order *int
	if c.Meta.Order != nil {
		o := *c.Meta.Order
		order = &o
	}
	return CourseSummary{
		Slug:      c.Slug,
		Title:     optional(c.Meta.Title),
		Summary:   optional(c.Meta.Summary),
		Duration:  optional(c.Meta.Duration),
		Level:     optional(c.Meta.Level),
		HeroImage: optional(c.Meta.HeroImage),
		Thumbnail: optional(c.Meta.Thumbnail),
		OGImage:   optional(c.Meta.OGImage),
		Tags:      tags,
		Order:     order,
	}
}

func (c *Course) module(slug string) (int, bool) {
	for i := range c.Modules {
		if c.Modules[i].Slug == slug {
			return i, true
		}
	}
	return -1, false
}
