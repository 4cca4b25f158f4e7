package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BackupLog records one database backup attempt, automatic or manual
type BackupLog struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	FileName    string     `gorm:"size:255;not null" json:"file_name"`
	FileSize    int64      `gorm:"default:0" json:"file_size"`
	Status      string     `gorm:"size:20;not null" json:"status"` // in_progress, success, failed
	Type        string     `gorm:"size:20;not null" json:"type"`   // automatic, manual
	TriggeredBy *uuid.UUID `gorm:"type:uuid" json:"triggered_by,omitempty"`
	Error       *string    `gorm:"size:1000" json:"error,omitempty"`
	StartedAt   time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new backup log
func (b *BackupLog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BackupLog model
func (BackupLog) TableName() string {
	return "backup_logs"
}
