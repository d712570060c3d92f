package content

import (
	"fmt"
	"learnhub/pkg/monitoring"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

// Registry holds every discovered course. It is built lazily on first use and is
// read-only afterwards except through Reload.
type Registry struct {
	sources []Source
	log     *zap.Logger

	mu      sync.RWMutex
	courses []Course
	loaded  bool
}

func NewRegistry(log *zap.Logger, sources ...Source) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{sources: sources, log: log.Named("content")}
}

// Discover returns the cached course list, building it when empty or when force is set.
// Providers that fail are left out.
func (r *Registry) Discover(force bool) []Course {
	if !force {
		r.mu.RLock()
		if r.loaded {
			courses := r.courses
			r.mu.RUnlock()
			return courses
		}
		r.mu.RUnlock()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded && !force {
		return r.courses
	}

	courses := make([]Course, 0)
	seen := make(map[string]string)
	for _, src := range r.sources {
		providers, err := src.Providers()
		if err != nil {
			r.log.Warn("course source unavailable", zap.Error(err))
		}
		for _, p := range providers {
			c, err := load(p)
			if err != nil {
				r.log.Warn("skipping course provider", zap.String("provider", p.Name()), zap.Error(err))
				monitoring.DiscoveryFailures.WithLabelValues(p.Name()).Inc()
				continue
			}
			if prev, dup := seen[c.Slug]; dup {
				r.log.Warn("duplicate course slug",
					zap.String("slug", c.Slug),
					zap.String("provider", p.Name()),
					zap.String("kept", prev),
				)
				monitoring.DiscoveryFailures.WithLabelValues(p.Name()).Inc()
				continue
			}
			seen[c.Slug] = c.Source
			courses = append(courses, c)
		}
	}

	r.courses = courses
	r.loaded = true
	monitoring.CoursesLoaded.Set(float64(len(courses)))
	r.log.Info("content registry built", zap.Int("courses", len(courses)))
	return courses
}

func (r *Registry) Reload() []Course {
	return r.Discover(true)
}

func load(p Provider) (c Course, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()

	meta, err := p.Meta()
	if err != nil {
		return Course{}, fmt.Errorf("meta: %w", err)
	}
	modules, err := p.Modules()
	if err != nil {
		return Course{}, fmt.Errorf("modules: %w", err)
	}

	var quizzes map[string][]QuizQuestion
	if qp, ok := p.(QuizProvider); ok {
		quizzes, err = qp.Quizzes()
		if err != nil {
			return Course{}, fmt.Errorf("quizzes: %w", err)
		}
		if err := validateQuizzes(modules, quizzes); err != nil {
			return Course{}, fmt.Errorf("quizzes: %w", err)
		}
	}

	slug := meta.Slug
	if slug == "" {
		slug = p.Name()
	}

	return Course{
		Slug:    slug,
		Meta:    meta,
		Modules: modules,
		Quizzes: quizzes,
		Source:  p.Name(),
	}, nil
}

// validateQuizzes checks that every quiz belongs to a known module and that each
// question has a unique id and a correct key naming one of its options.
func validateQuizzes(modules []Module, quizzes map[string][]QuizQuestion) error {
	known := make(map[string]bool, len(modules))
	for _, m := range modules {
		known[m.Slug] = true
	}

	for moduleSlug, questions := range quizzes {
		if !known[moduleSlug] {
			return fmt.Errorf("quiz for unknown module %q", moduleSlug)
		}
		ids := make(map[string]bool, len(questions))
		for i, q := range questions {
			if q.ID == "" {
				return fmt.Errorf("%s: question %d has no id", moduleSlug, i+1)
			}
			if ids[q.ID] {
				return fmt.Errorf("%s: duplicate question id %q", moduleSlug, q.ID)
			}
			ids[q.ID] = true
			if _, ok := q.Options.Label(q.Correct); !ok {
				return fmt.Errorf("%s/%s: correct key %q is not an option", moduleSlug, q.ID, q.Correct)
			}
		}
	}
	return nil
}

func (r *Registry) CourseBySlug(slug string) (*Course, bool) {
	courses := r.Discover(false)
	for i := range courses {
		if courses[i].Slug == slug {
			return &courses[i], true
		}
	}
	return nil, false
}

// Module returns the course, the module and the module that follows it (nil when last).
func (r *Registry) Module(courseSlug, moduleSlug string) (*Course, *Module, *Module, bool) {
	course, ok := r.CourseBySlug(courseSlug)
	if !ok {
		return nil, nil, nil, false
	}
	i, ok := course.module(moduleSlug)
	if !ok {
		return course, nil, nil, false
	}
	var next *Module
	if i+1 < len(course.Modules) {
		next = &course.Modules[i+1]
	}
	return course, &course.Modules[i], next, true
}

func (r *Registry) ModuleQuiz(courseSlug, moduleSlug string) []QuizQuestion {
	course, ok := r.CourseBySlug(courseSlug)
	if !ok {
		return []QuizQuestion{}
	}
	questions, ok := course.Quizzes[moduleSlug]
	if !ok {
		return []QuizQuestion{}
	}
	return questions
}

func (r *Registry) ModuleQuestion(courseSlug, moduleSlug, questionID string) (*QuizQuestion, bool) {
	questions := r.ModuleQuiz(courseSlug, moduleSlug)
	for i := range questions {
		if questions[i].ID == questionID {
			return &questions[i], true
		}
	}
	return nil, false
}

const unknownLevel = 3

// LevelRank orders difficulty labels: introductory, intermediate, advanced, then anything else.
func LevelRank(level string) int {
	l := strings.ToLower(strings.TrimSpace(level))
	switch {
	case strings.HasPrefix(l, "intro"), strings.HasPrefix(l, "beginner"):
		return 0
	case strings.HasPrefix(l, "intermediate"):
		return 1
	case strings.HasPrefix(l, "advanced"):
		return 2
	default:
		return unknownLevel
	}
}

// Summaries lists every course for the landing page: pinned order first, then level,
// then title ignoring case.
func (r *Registry) Summaries() []CourseSummary {
	courses := r.Discover(false)

	type entry struct {
		summary CourseSummary
		rank    int
		title   string
	}

	fold := cases.Fold()
	entries := make([]entry, len(courses))
	for i := range courses {
		entries[i] = entry{
			summary: courses[i].Summary(),
			rank:    LevelRank(courses[i].Meta.Level),
			title:   fold.String(courses[i].Meta.Title),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		ao, bo := a.summary.Order, b.summary.Order
		if (ao != nil) != (bo != nil) {
			return ao != nil
		}
		if ao != nil && *ao != *bo {
			return *ao < *bo
		}
		if a.rank != b.rank {
			return a.rank < b.rank
		}
		return a.title < b.title
	})

	out := make([]CourseSummary, len(entries))
	for i, e := range entries {
		out[i] = e.summary
	}
	return out
}
