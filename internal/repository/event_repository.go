package repository

import (
	"context"
	"learnhub/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Create(ctx context.Context, event *model.ProgressEvent) error {
	return r.DB.WithContext(ctx).Create(event).Error
}
