package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CashflowForecast is a per-month projection of money in and out.
// Month is stored as "2006-01".
type CashflowForecast struct {
	ID              string         `json:"id" gorm:"primaryKey;type:uuid"`
	Month           string         `json:"month" gorm:"type:varchar(7);not null;uniqueIndex"`
	ExpectedInflow  float64        `json:"expectedInflow" gorm:"not null;default:0"`
	ExpectedOutflow float64        `json:"expectedOutflow" gorm:"not null;default:0"`
	OpeningBalance  float64        `json:"openingBalance" gorm:"not null;default:0"`
	Notes           string         `json:"notes" gorm:"default:null"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name for CashflowForecast model
func (CashflowForecast) TableName() string {
	return "cashflow_forecasts"
}

// BeforeCreate assigns the canonical application id.
func (c *CashflowForecast) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ClosingBalance is the derived end-of-month position.
func (c *CashflowForecast) ClosingBalance() float64 {
	return c.OpeningBalance + c.ExpectedInflow - c.ExpectedOutflow
}
