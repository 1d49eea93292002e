package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Material is a material purchase charged to a project.
//
// MarkupPercent is a whole-number percentage: 20 means 20%, so the markup
// profit on the line is Total * MarkupPercent / 100.
type Material struct {
	ID            string         `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID     string         `json:"projectId" gorm:"type:uuid;not null;index"`
	Description   string         `json:"description" gorm:"not null"`
	Quantity      float64        `json:"quantity" gorm:"not null;default:1"`
	Unit          string         `json:"unit" gorm:"default:null"`
	UnitCost      float64        `json:"unitCost" gorm:"not null;default:0"`
	Total         float64        `json:"total" gorm:"not null;default:0"`
	MarkupPercent float64        `json:"markupPercent" gorm:"not null;default:0"`
	Date          time.Time      `json:"date" gorm:"type:date"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for Material model
func (Material) TableName() string {
	return "materials"
}

// BeforeCreate assigns the canonical application id.
func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
