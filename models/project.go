package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillingType represents how a project is billed
type BillingType string

const (
	BillingTypeTM    BillingType = "tm"    // time & material: hours x rate plus marked-up materials
	BillingTypeFixed BillingType = "fixed" // single fixed contract price
	BillingTypeSOV   BillingType = "sov"   // schedule of values
	BillingTypeBid   BillingType = "bid"   // bid work, billed like fixed
)

// ProjectStatus represents project lifecycle states
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// Project represents a job site / contract the company tracks time and
// material against.
//
// Invariant: a TM project always carries a positive TMBillRate; any other
// billing type never does. GcPin and GcPinUsed are owned by the GC access
// control service and must never be touched by plain CRUD updates.
type Project struct {
	ID             string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name           string         `json:"name" gorm:"not null"`
	ClientName     string         `json:"clientName" gorm:"default:null"`
	Address        string         `json:"address" gorm:"default:null"`
	Description    string         `json:"description" gorm:"default:null"`
	BillingType    BillingType    `json:"billingType" gorm:"type:varchar(10);not null;default:'tm'"`
	TMBillRate     *float64       `json:"tmBillRate" gorm:"default:null"`
	ContractAmount float64        `json:"contractAmount" gorm:"default:0"`
	OpeningBalance float64        `json:"openingBalance" gorm:"default:0"`
	Status         ProjectStatus  `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	GcPin          *string        `json:"-" gorm:"type:varchar(4);index"`
	GcPinUsed      bool           `json:"-" gorm:"not null;default:false"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	TimeLogs  []TimeLog  `json:"timeLogs,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Materials []Material `json:"materials,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Expenses  []Expense  `json:"expenses,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	TMTags    []TMTag    `json:"tmTags,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for Project model
func (Project) TableName() string {
	return "projects"
}

// BeforeCreate assigns the canonical application id.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// IsTM reports whether the project bills per time log entry.
func (p *Project) IsTM() bool {
	return p.BillingType == BillingTypeTM
}
