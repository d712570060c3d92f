package service

import (
	"learnhub/internal/content"
	"learnhub/internal/util"
)

type CourseService struct {
	Registry *content.Registry
	Storage  *StorageService
}

func NewCourseService(registry *content.Registry, storage *StorageService) *CourseService {
	return &CourseService{Registry: registry, Storage: storage}
}

type ModuleListItem struct {
	Slug         string `json:"slug"`
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	SectionCount int    `json:"section_count"`
}

type CourseView struct {
	Course  content.CourseSummary `json:"course"`
	Modules []ModuleListItem      `json:"modules"`
}

type ModuleLink struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// ModuleView is the module page payload. Quiz questions are not part of it; clients fetch
// them one at a time from the quiz endpoint.
type ModuleView struct {
	Course        content.CourseSummary `json:"course"`
	Module        content.Module        `json:"module"`
	NextModule    *ModuleLink           `json:"next_module"`
	HasQuiz       bool                  `json:"has_quiz"`
	QuestionCount int                   `json:"question_count"`
	ModuleKey     string                `json:"module_key"`
}

func (s *CourseService) ListCourses() []content.CourseSummary {
	summaries := s.Registry.Summaries()
	for i := range summaries {
		s.resolveImages(&summaries[i])
	}
	return summaries
}

func (s *CourseService) GetCourse(courseSlug string) (*CourseView, error) {
	course, ok := s.Registry.CourseBySlug(courseSlug)
	if !ok {
		return nil, util.ErrCourseNotFound
	}

	modules := make([]ModuleListItem, len(course.Modules))
	for i, m := range course.Modules {
		modules[i] = ModuleListItem{
			Slug:         m.Slug,
			Title:        m.Title,
			Summary:      m.Summary,
			SectionCount: len(m.Sections),
		}
	}

	summary := course.Summary()
	s.resolveImages(&summary)
	return &CourseView{Course: summary, Modules: modules}, nil
}

func (s *CourseService) GetModule(courseSlug, moduleSlug string) (*ModuleView, error) {
	course, module, next, ok := s.Registry.Module(courseSlug, moduleSlug)
	if course == nil {
		return nil, util.ErrCourseNotFound
	}
	if !ok {
		return nil, util.ErrModuleNotFound
	}

	view := &ModuleView{
		Course:    course.Summary(),
		Module:    *module,
		ModuleKey: content.ModuleKey(course.Slug, module.Slug),
	}
	s.resolveImages(&view.Course)

	if next != nil {
		view.NextModule = &ModuleLink{Slug: next.Slug, Title: next.Title}
	}

	n := len(s.Registry.ModuleQuiz(course.Slug, module.Slug))
	view.HasQuiz = n > 0
	view.QuestionCount = n
	return view, nil
}

func (s *CourseService) resolveImages(cs *content.CourseSummary) {
	if s.Storage == nil {
		return
	}
	for _, ref := range []**string{&cs.HeroImage, &cs.Thumbnail, &cs.OGImage} {
		if *ref == nil {
			continue
		}
		u := s.Storage.AssetURL(**ref)
		*ref = &u
	}
}
