package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Setting keys the application reads.
const (
	SettingCompanyName        = "company_name"
	SettingLowMarginThreshold = "low_margin_threshold"
)

// Setting is a simple key/value row for company-wide configuration.
type Setting struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Key       string    `json:"key" gorm:"not null;uniqueIndex"`
	Value     string    `json:"value" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName sets the table name for Setting model
func (Setting) TableName() string {
	return "settings"
}

// BeforeCreate assigns the canonical application id.
func (s *Setting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
