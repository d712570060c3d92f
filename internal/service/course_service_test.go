package service

import (
	"errors"
	"learnhub/internal/config"
	"learnhub/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCourseService(t *testing.T) *CourseService {
	t.Helper()
	storage, err := NewStorageService(&config.Config{
		Storage: config.StorageConfig{Type: util.StorageLocal, LocalPath: t.TempDir(), PublicPrefix: "/static"},
	})
	require.NoError(t, err)
	return NewCourseService(testRegistry(), storage)
}

func TestListCourses(t *testing.T) {
	s := newCourseService(t)

	list := s.ListCourses()
	require.Len(t, list, 2)
	assert.Equal(t, "course-1", list[0].Slug)
	require.NotNil(t, list[0].HeroImage)
	assert.Equal(t, "/static/images/course-1.png", *list[0].HeroImage)
	require.NotNil(t, list[0].Thumbnail)
	assert.Equal(t, "https://cdn.example.com/course-1.png", *list[0].Thumbnail)
	assert.Nil(t, list[0].OGImage)
}

func TestGetCourse(t *testing.T) {
	s := newCourseService(t)

	view, err := s.GetCourse("course-1")
	require.NoError(t, err)
	assert.Equal(t, "course-1", view.Course.Slug)
	require.Len(t, view.Modules, 3)
	assert.Equal(t, "intro", view.Modules[0].Slug)
	assert.Equal(t, 2, view.Modules[0].SectionCount)

	_, err = s.GetCourse("nope")
	assert.True(t, errors.Is(err, util.ErrCourseNotFound))
}

func TestGetModule(t *testing.T) {
	s := newCourseService(t)

	view, err := s.GetModule("course-1", "intro")
	require.NoError(t, err)
	assert.Equal(t, "course-1:intro", view.ModuleKey)
	assert.True(t, view.HasQuiz)
	assert.Equal(t, 2, view.QuestionCount)
	require.NotNil(t, view.NextModule)
	assert.Equal(t, "empty", view.NextModule.Slug)

	view, err = s.GetModule("course-1", "empty")
	require.NoError(t, err)
	assert.False(t, view.HasQuiz)
	assert.Equal(t, 0, view.QuestionCount)

	view, err = s.GetModule("course-1", "final")
	require.NoError(t, err)
	assert.Nil(t, view.NextModule)

	_, err = s.GetModule("nope", "intro")
	assert.True(t, errors.Is(err, util.ErrCourseNotFound))

	_, err = s.GetModule("course-1", "nope")
	assert.True(t, errors.Is(err, util.ErrModuleNotFound))
}
