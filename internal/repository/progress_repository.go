package repository

import (
	"context"
	"errors"
	"learnhub/internal/model"
	"time"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) ListBySession(ctx context.Context, sessionID string) ([]model.ModuleProgress, error) {
	var rows []model.ModuleProgress
	err := r.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Upsert creates the (session, module) row on first sight. Completion only ever moves
// from false to true; last access is always set to accessedAt.
func (r *ProgressRepository) Upsert(ctx context.Context, sessionID, moduleKey string, completed bool, accessedAt time.Time) (*model.ModuleProgress, error) {
	var row model.ModuleProgress
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("session_id = ? AND module_slug = ?", sessionID, moduleKey).First(&row).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = model.ModuleProgress{
				SessionID:      sessionID,
				ModuleKey:      moduleKey,
				Completed:      completed,
				LastAccessedAt: accessedAt,
			}
			return tx.Create(&row).Error
		}

		row.Completed = row.Completed || completed
		row.LastAccessedAt = accessedAt
		return tx.Model(&row).Updates(map[string]interface{}{
			"completed":        row.Completed,
			"last_accessed_at": row.LastAccessedAt,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}
