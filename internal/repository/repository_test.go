package repository

import (
	"context"
	"errors"
	"learnhub/internal/model"
	"learnhub/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProgressUpsert(t *testing.T) {
	db := testutil.DB(t)
	repo := NewProgressRepository(db)
	ctx := context.Background()
	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	var row model.ModuleProgress
	err := db.Where("session_id = ? AND module_slug = ?", "s1", "c:m").First(&row).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	first, err := repo.Upsert(ctx, "s1", "c:m", false, t0)
	require.NoError(t, err)
	assert.False(t, first.Completed)

	_, err = repo.Upsert(ctx, "s1", "c:m", true, t0.Add(time.Minute))
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, "s1", "c:m", false, t0.Add(2*time.Minute))
	require.NoError(t, err)

	require.NoError(t, db.Where("session_id = ? AND module_slug = ?", "s1", "c:m").First(&row).Error)
	assert.Equal(t, first.ID, row.ID)
	assert.True(t, row.Completed)
	assert.True(t, row.LastAccessedAt.Equal(t0.Add(2*time.Minute)))

	rows, err := repo.ListBySession(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestPassedQuestionIDs(t *testing.T) {
	db := testutil.DB(t)
	repo := NewQuizAttemptRepository(db)
	ctx := context.Background()

	for _, a := range []model.QuizAttempt{
		{SessionID: "s1", ModuleKey: "c:m", QuestionID: "q1", Selected: "a", Correct: false},
		{SessionID: "s1", ModuleKey: "c:m", QuestionID: "q1", Selected: "b", Correct: true},
		{SessionID: "s1", ModuleKey: "c:m", QuestionID: "q1", Selected: "b", Correct: true},
		{SessionID: "s1", ModuleKey: "c:other", QuestionID: "q2", Selected: "b", Correct: true},
		{SessionID: "s2", ModuleKey: "c:m", QuestionID: "q3", Selected: "b", Correct: true},
	} {
		a := a
		require.NoError(t, repo.Create(ctx, &a))
	}

	passed, err := repo.PassedQuestionIDs(ctx, "s1", "c:m")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"q1": true}, passed)

	var count int64
	require.NoError(t, db.Model(&model.QuizAttempt{}).Where("session_id = ? AND module_slug = ?", "s1", "c:m").Count(&count).Error)
	assert.Equal(t, int64(3), count)
}
