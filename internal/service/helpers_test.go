package service

import (
	"learnhub/internal/content"
)

// testCourse is a compiled course used across service tests.
type testCourse struct {
	slug    string
	modules []string
	quizzes map[string][]content.QuizQuestion
}

func (c testCourse) Name() string { return c.slug }

func (c testCourse) Meta() (content.CourseMeta, error) {
	return content.CourseMeta{
		Slug:      c.slug,
		Title:     "Course " + c.slug,
		Level:     "Introductory",
		HeroImage: "/static/images/" + c.slug + ".png",
		Thumbnail: "https://cdn.example.com/" + c.slug + ".png",
	}, nil
}

func (c testCourse) Modules() ([]content.Module, error) {
	out := make([]content.Module, len(c.modules))
	for i, s := range c.modules {
		out[i] = content.Module{
			Slug:     s,
			Title:    "Module " + s,
			Sections: []content.Section{{Title: "One", Content: "<p>1</p>"}, {Title: "Two", Content: "<p>2</p>"}},
		}
	}
	return out, nil
}

func (c testCourse) Quizzes() (map[string][]content.QuizQuestion, error) {
	return c.quizzes, nil
}

func question(id, correct, help string) content.QuizQuestion {
	return content.QuizQuestion{
		ID:     id,
		Prompt: "Prompt " + id,
		Options: content.Options{
			{Key: "a", Label: "Option A"},
			{Key: "b", Label: "Option B"},
			{Key: "c", Label: "Option C"},
		},
		Correct: correct,
		Help:    help,
	}
}

func testRegistry() *content.Registry {
	return content.NewRegistry(nil, content.Static{
		testCourse{
			slug:    "course-1",
			modules: []string{"intro", "empty", "final"},
			quizzes: map[string][]content.QuizQuestion{
				"intro": {question("q1", "b", "Think about B."), question("q2", "a", "")},
				"final": {question("f1", "c", "")},
			},
		},
		testCourse{
			slug:    "course-2",
			modules: []string{"intro"},
			quizzes: map[string][]content.QuizQuestion{
				"intro": {question("other-1", "a", "")},
			},
		},
	})
}
