package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeLog is one installer's hours on one project for one day.
//
// BillRateOverride, when set, supersedes the project's TMBillRate for this
// entry. Non-TM projects track time for cost purposes only and are never
// billed per entry.
type TimeLog struct {
	ID               string         `json:"id" gorm:"primaryKey;type:uuid"`
	Date             time.Time      `json:"date" gorm:"type:date;not null;index"`
	InstallerID      string         `json:"installerId" gorm:"type:uuid;not null;index"`
	ProjectID        string         `json:"projectId" gorm:"type:uuid;not null;index"`
	Hours            float64        `json:"hours" gorm:"not null"`
	BillRateOverride *float64       `json:"billRateOverride" gorm:"default:null"`
	Notes            string         `json:"notes" gorm:"default:null"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Installer Installer `json:"installer,omitempty" gorm:"foreignKey:InstallerID;constraint:OnDelete:CASCADE"`
	Project   Project   `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for TimeLog model
func (TimeLog) TableName() string {
	return "time_logs"
}

// BeforeCreate assigns the canonical application id.
func (t *TimeLog) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
