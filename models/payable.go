package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PayableStatus represents payable workflow states
type PayableStatus string

const (
	PayableStatusPending PayableStatus = "pending"
	PayableStatusPaid    PayableStatus = "paid"
)

// Payable is an amount the company owes a vendor, optionally tied to a
// project.
type Payable struct {
	ID         string         `json:"id" gorm:"primaryKey;type:uuid"`
	VendorName string         `json:"vendorName" gorm:"not null"`
	ProjectID  *string        `json:"projectId" gorm:"type:uuid;index;default:null"`
	Amount     float64        `json:"amount" gorm:"not null"`
	Status     PayableStatus  `json:"status" gorm:"type:varchar(10);not null;default:'pending'"`
	Category   string         `json:"category" gorm:"default:null"`
	DueDate    time.Time      `json:"dueDate" gorm:"type:date"`
	PaidDate   *time.Time     `json:"paidDate" gorm:"type:date;default:null"`
	Notes      string         `json:"notes" gorm:"default:null"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name for Payable model
func (Payable) TableName() string {
	return "payables"
}

// BeforeCreate assigns the canonical application id.
func (p *Payable) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
