package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessStatus represents the outcome of a GC login attempt
type AccessStatus string

const (
	AccessStatusSuccess AccessStatus = "success"
	AccessStatusFailed  AccessStatus = "failed"
)

// GcAccessLog is one row per GC dashboard login attempt. The stream is
// append-only: rows are never updated or deleted, so there is no soft
// delete column.
type GcAccessLog struct {
	ID        string       `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID *string      `json:"projectId" gorm:"type:uuid;index"` // null when the failed attempt matched no project
	Timestamp time.Time    `json:"timestamp" gorm:"not null;index"`
	IP        string       `json:"ip" gorm:"default:null"`
	UserAgent string       `json:"userAgent" gorm:"default:null"`
	Status    AccessStatus `json:"status" gorm:"type:varchar(10);not null"`
}

// TableName sets the table name for GcAccessLog model
func (GcAccessLog) TableName() string {
	return "gc_access_logs"
}

// BeforeCreate assigns the canonical application id.
func (l *GcAccessLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now()
	}
	return nil
}
