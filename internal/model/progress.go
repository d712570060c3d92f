package model

import "time"

// ModuleProgress 记录一个匿名会话对某个模块的访问与完成情况
type ModuleProgress struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID      string    `gorm:"type:varchar(64);not null;uniqueIndex:uq_session_module;index" json:"sessionId"`
	ModuleKey      string    `gorm:"column:module_slug;type:varchar(100);not null;uniqueIndex:uq_session_module;index" json:"moduleSlug"`
	Completed      bool      `gorm:"not null;default:false" json:"completed"`
	LastAccessedAt time.Time `gorm:"not null" json:"lastAccessedAt"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (ModuleProgress) TableName() string {
	return "module_progress"
}

// ProgressEvent is a free-form telemetry row.
type ProgressEvent struct {
	LogRow
	SessionID string  `gorm:"type:varchar(64);not null;index" json:"sessionId"`
	EventType string  `gorm:"type:varchar(50);not null" json:"eventType"`
	ModuleKey *string `gorm:"column:module_slug;type:varchar(100)" json:"moduleSlug"`
	Page      *string `gorm:"type:varchar(200)" json:"page"`
}

func (ProgressEvent) TableName() string {
	return "progress_events"
}
