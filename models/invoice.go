package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceStatus represents invoice workflow states
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice is an amount billed to a project's client.
type Invoice struct {
	ID            string         `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID     string         `json:"projectId" gorm:"type:uuid;not null;index"`
	InvoiceNumber string         `json:"invoiceNumber" gorm:"not null;uniqueIndex"`
	Amount        float64        `json:"amount" gorm:"not null"`
	Status        InvoiceStatus  `json:"status" gorm:"type:varchar(10);not null;default:'draft'"`
	IssuedDate    time.Time      `json:"issuedDate" gorm:"type:date"`
	DueDate       time.Time      `json:"dueDate" gorm:"type:date"`
	PaidDate      *time.Time     `json:"paidDate" gorm:"type:date;default:null"`
	Notes         string         `json:"notes" gorm:"default:null"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// BeforeCreate assigns the canonical application id.
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
