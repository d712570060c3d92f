package service

import (
	"context"
	"encoding/json"
	"errors"
	"learnhub/internal/model"
	"learnhub/internal/repository"
	"learnhub/internal/testutil"
	"learnhub/internal/util"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizService(t *testing.T) (*QuizService, *repository.QuizAttemptRepository) {
	t.Helper()
	repo := repository.NewQuizAttemptRepository(testutil.DB(t))
	return NewQuizService(testRegistry(), repo), repo
}

func submit(t *testing.T, s *QuizService, course, module, session, id, selected string) *SubmitAnswerResult {
	t.Helper()
	res, err := s.SubmitAnswer(context.Background(), SubmitAnswerInput{
		CourseSlug: course,
		ModuleSlug: module,
		SessionID:  session,
		QuestionID: id,
		Selected:   selected,
	})
	require.NoError(t, err)
	return res
}

func next(t *testing.T, s *QuizService, course, module, session string) *NextQuestionResult {
	t.Helper()
	res, err := s.NextQuestion(context.Background(), course, module, session)
	require.NoError(t, err)
	return res
}

func TestQuizRotation(t *testing.T) {
	s, repo := newQuizService(t)

	r := next(t, s, "course-1", "intro", "s1")
	require.NotNil(t, r.Question)
	assert.Equal(t, "q1", r.Question.ID)
	assert.Equal(t, 2, r.Remaining)
	assert.Equal(t, 2, r.Total)
	assert.False(t, r.Completed)

	res := submit(t, s, "course-1", "intro", "s1", "q1", "a")
	assert.False(t, res.Correct)
	require.NotNil(t, res.Help)
	assert.Equal(t, "Think about B.", *res.Help)

	r = next(t, s, "course-1", "intro", "s1")
	require.NotNil(t, r.Question)
	assert.Equal(t, "q1", r.Question.ID)
	assert.Equal(t, 2, r.Remaining)

	assert.True(t, submit(t, s, "course-1", "intro", "s1", "q1", "b").Correct)

	r = next(t, s, "course-1", "intro", "s1")
	require.NotNil(t, r.Question)
	assert.Equal(t, "q2", r.Question.ID)
	assert.Equal(t, 1, r.Remaining)
	assert.Equal(t, 2, r.Total)

	res = submit(t, s, "course-1", "intro", "s1", "q2", "a")
	assert.True(t, res.Correct)
	assert.Nil(t, res.Help)

	r = next(t, s, "course-1", "intro", "s1")
	assert.Nil(t, r.Question)
	assert.True(t, r.Completed)
	assert.Equal(t, 0, r.Remaining)
	assert.Equal(t, 2, r.Total)

	var attempts []model.QuizAttempt
	require.NoError(t, repo.DB.Where("session_id = ? AND module_slug = ?", "s1", "course-1:intro").Find(&attempts).Error)
	assert.Len(t, attempts, 3)
}

func TestQuizModuleWithoutQuestions(t *testing.T) {
	s, _ := newQuizService(t)

	for _, tc := range []struct{ course, module string }{
		{"course-1", "empty"},
		{"course-1", "missing"},
		{"missing", "intro"},
	} {
		r := next(t, s, tc.course, tc.module, "s1")
		assert.Nil(t, r.Question)
		assert.True(t, r.Completed)
		assert.Equal(t, 0, r.Remaining)
		assert.Equal(t, 0, r.Total)
	}
}

func TestQuizCorrectAnswerStaysPassed(t *testing.T) {
	s, _ := newQuizService(t)

	submit(t, s, "course-1", "intro", "s1", "q1", "b")
	submit(t, s, "course-1", "intro", "s1", "q1", "a")
	submit(t, s, "course-1", "intro", "s1", "q1", "c")

	r := next(t, s, "course-1", "intro", "s1")
	require.NotNil(t, r.Question)
	assert.Equal(t, "q2", r.Question.ID)
	assert.Equal(t, 1, r.Remaining)
}

func TestQuizNextIsStable(t *testing.T) {
	s, _ := newQuizService(t)

	first := next(t, s, "course-1", "intro", "s1")
	second := next(t, s, "course-1", "intro", "s1")
	assert.Equal(t, first, second)
}

func TestQuizCompletedOnlyWhenAllPassed(t *testing.T) {
	s, _ := newQuizService(t)

	submit(t, s, "course-1", "intro", "s1", "q2", "a")
	assert.False(t, next(t, s, "course-1", "intro", "s1").Completed)

	submit(t, s, "course-1", "intro", "s1", "q1", "c")
	assert.False(t, next(t, s, "course-1", "intro", "s1").Completed)

	submit(t, s, "course-1", "intro", "s1", "q1", "b")
	assert.True(t, next(t, s, "course-1", "intro", "s1").Completed)
}

func TestQuizSessionsAndCoursesAreIndependent(t *testing.T) {
	s, _ := newQuizService(t)

	submit(t, s, "course-1", "intro", "s1", "q1", "b")

	r := next(t, s, "course-1", "intro", "s2")
	require.NotNil(t, r.Question)
	assert.Equal(t, "q1", r.Question.ID)

	r = next(t, s, "course-2", "intro", "s1")
	require.NotNil(t, r.Question)
	assert.Equal(t, "other-1", r.Question.ID)
	assert.Equal(t, 1, r.Total)

	assert.Len(t, s.Registry.ModuleQuiz("course-1", "intro"), 2)
	assert.Len(t, s.Registry.ModuleQuiz("course-2", "intro"), 1)

	_, err := s.SubmitAnswer(context.Background(), SubmitAnswerInput{
		CourseSlug: "course-2", ModuleSlug: "intro", SessionID: "s1", QuestionID: "q1", Selected: "b",
	})
	assert.True(t, errors.Is(err, util.ErrQuestionNotFound))
}

func TestQuestionViewHasNoAnswer(t *testing.T) {
	s, _ := newQuizService(t)

	r := next(t, s, "course-1", "final", "s1")
	require.NotNil(t, r.Question)

	data, err := json.Marshal(r.Question)
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.ElementsMatch(t, []string{"id", "prompt", "options"}, keys(payload))
	assert.NotContains(t, strings.ToLower(string(data)), "correct")
	assert.JSONEq(t, `{"a":"Option A","b":"Option B","c":"Option C"}`, string(payload["options"]))
}

func TestQuizValidation(t *testing.T) {
	s, _ := newQuizService(t)
	ctx := context.Background()

	_, err := s.NextQuestion(ctx, "course-1", "intro", "")
	require.Error(t, err)
	assert.True(t, util.IsValidation(err))
	assert.Equal(t, "session_id required", err.Error())

	_, err = s.NextQuestion(ctx, "course-1", "intro", strings.Repeat("x", util.MaxSessionIDLen+1))
	assert.True(t, util.IsValidation(err))

	for _, in := range []SubmitAnswerInput{
		{CourseSlug: "course-1", ModuleSlug: "intro", QuestionID: "q1", Selected: "a"},
		{CourseSlug: "course-1", ModuleSlug: "intro", SessionID: "s1", Selected: "a"},
		{CourseSlug: "course-1", ModuleSlug: "intro", SessionID: "s1", QuestionID: "q1"},
	} {
		_, err := s.SubmitAnswer(ctx, in)
		require.Error(t, err)
		assert.True(t, util.IsValidation(err))
		assert.Equal(t, "session_id, question_id and selected are required", err.Error())
	}

	_, err = s.SubmitAnswer(ctx, SubmitAnswerInput{
		CourseSlug: "course-1", ModuleSlug: "intro", SessionID: "s1", QuestionID: "q1",
		Selected: strings.Repeat("a", util.MaxSelectedLen+1),
	})
	assert.True(t, util.IsValidation(err))

	_, err = s.SubmitAnswer(ctx, SubmitAnswerInput{
		CourseSlug: "course-1", ModuleSlug: "intro", SessionID: "s1", QuestionID: "nope", Selected: "a",
	})
	assert.True(t, errors.Is(err, util.ErrQuestionNotFound))
	assert.True(t, util.IsNotFound(err))
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
