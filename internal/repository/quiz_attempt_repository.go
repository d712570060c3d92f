package repository

import (
	"context"
	"learnhub/internal/model"

	"gorm.io/gorm"
)

type QuizAttemptRepository struct {
	DB *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) *QuizAttemptRepository {
	return &QuizAttemptRepository{DB: db}
}

func (r *QuizAttemptRepository) Create(ctx context.Context, attempt *model.QuizAttempt) error {
	return r.DB.WithContext(ctx).Create(attempt).Error
}

// PassedQuestionIDs returns the ids of questions the session has answered correctly at
// least once for the module.
func (r *QuizAttemptRepository) PassedQuestionIDs(ctx context.Context, sessionID, moduleKey string) (map[string]bool, error) {
	var ids []string
	err := r.DB.WithContext(ctx).
		Model(&model.QuizAttempt{}).
		Where("session_id = ? AND module_slug = ? AND correct = ?", sessionID, moduleKey, true).
		Pluck("question_id", &ids).Error
	if err != nil {
		return nil, err
	}

	passed := make(map[string]bool, len(ids))
	for _, id := range ids {
		passed[id] = true
	}
	return passed, nil
}
