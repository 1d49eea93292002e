package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Installer represents a field employee whose hours are logged against
// projects. CostRate is the true internal hourly cost and is never a
// billing rate.
type Installer struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string         `json:"name" gorm:"not null"`
	CostRate  float64        `json:"costRate" gorm:"not null"`
	Position  string         `json:"position" gorm:"default:null"`
	Phone     string         `json:"phone" gorm:"default:null"`
	Email     string         `json:"email" gorm:"default:null"`
	Active    bool           `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name for Installer model
func (Installer) TableName() string {
	return "installers"
}

// BeforeCreate assigns the canonical application id.
func (i *Installer) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
