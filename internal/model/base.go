package model

import "time"

// LogRow is embedded by the append-only tables; rows are inserted once and never updated.
type LogRow struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}
