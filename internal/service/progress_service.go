package service

import (
	"context"
	"fmt"
	"learnhub/internal/model"
	"learnhub/internal/util"
	"learnhub/pkg/monitoring"
	"time"
)

type ProgressStore interface {
	ListBySession(ctx context.Context, sessionID string) ([]model.ModuleProgress, error)
	Upsert(ctx context.Context, sessionID, moduleKey string, completed bool, accessedAt time.Time) (*model.ModuleProgress, error)
}

type EventStore interface {
	Create(ctx context.Context, event *model.ProgressEvent) error
}

type ProgressService struct {
	Progress ProgressStore
	Events   EventStore
	Now      func() time.Time
}

func NewProgressService(progress ProgressStore, events EventStore) *ProgressService {
	return &ProgressService{
		Progress: progress,
		Events:   events,
		Now:      func() time.Time { return time.Now().UTC() },
	}
}

type ModuleProgressView struct {
	Completed    bool   `json:"completed"`
	LastAccessed string `json:"last_accessed"`
}

type EventInput struct {
	SessionID string
	EventType string
	ModuleKey string
	Page      string
}

func (s *ProgressService) GetProgress(ctx context.Context, sessionID string) (map[string]ModuleProgressView, error) {
	if sessionID == "" {
		return nil, util.NewValidationError("session_id required")
	}

	rows, err := s.Progress.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	out := make(map[string]ModuleProgressView, len(rows))
	for _, row := range rows {
		out[row.ModuleKey] = ModuleProgressView{
			Completed:    row.Completed,
			LastAccessed: row.LastAccessedAt.UTC().Format(time.RFC3339),
		}
	}
	return out, nil
}

// UpsertProgress records a visit. A module once completed stays completed.
func (s *ProgressService) UpsertProgress(ctx context.Context, sessionID, moduleKey string, completed bool) (*model.ModuleProgress, error) {
	if sessionID == "" || moduleKey == "" {
		return nil, util.NewValidationError("session_id and module_slug are required")
	}
	if len(sessionID) > util.MaxSessionIDLen || len(moduleKey) > util.MaxModuleKeyLen {
		return nil, util.NewValidationError("session_id or module_slug too long")
	}

	row, err := s.Progress.Upsert(ctx, sessionID, moduleKey, completed, s.Now())
	if err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}
	return row, nil
}

func (s *ProgressService) RecordEvent(ctx context.Context, in EventInput) error {
	if in.SessionID == "" || in.EventType == "" {
		return util.NewValidationError("session_id and event_type are required")
	}
	if len(in.SessionID) > util.MaxSessionIDLen ||
		len(in.EventType) > util.MaxEventTypeLen ||
		len(in.ModuleKey) > util.MaxModuleKeyLen ||
		len(in.Page) > util.MaxPageLen {
		return util.NewValidationError("event field too long")
	}

	event := &model.ProgressEvent{
		SessionID: in.SessionID,
		EventType: in.EventType,
		ModuleKey: nullable(in.ModuleKey),
		Page:      nullable(in.Page),
	}
	if err := s.Events.Create(ctx, event); err != nil {
		return fmt.Errorf("save event: %w", err)
	}

	monitoring.ProgressEvents.Inc()
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
