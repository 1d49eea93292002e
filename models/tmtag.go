package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IDList custom type for JSON storage of referenced record ids
type IDList []string

func (l IDList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *IDList) Scan(value interface{}) error {
	if value == nil {
		*l = IDList{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for IDList")
	}
}

// TagStatus represents T&M tag workflow states
type TagStatus string

const (
	TagStatusDraft     TagStatus = "draft"
	TagStatusSubmitted TagStatus = "submitted"
	TagStatusAccepted  TagStatus = "accepted"
	TagStatusRejected  TagStatus = "rejected"
)

// TMTag bundles the time logs, materials and expenses of one billing period
// into a signed tag handed to the GC. Totals are computed by the billing
// engine when the tag is created or refreshed, and the whole record becomes
// immutable once the tag is accepted.
type TMTag struct {
	ID                string         `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID         string         `json:"projectId" gorm:"type:uuid;not null;index"`
	TagNumber         string         `json:"tagNumber" gorm:"not null"`
	PeriodStart       time.Time      `json:"periodStart" gorm:"type:date"`
	PeriodEnd         time.Time      `json:"periodEnd" gorm:"type:date"`
	Status            TagStatus      `json:"status" gorm:"type:varchar(12);not null;default:'draft'"`
	TimeLogIDs        IDList         `json:"timeLogIds" gorm:"type:text"`
	MaterialIDs       IDList         `json:"materialIds" gorm:"type:text"`
	ExpenseIDs        IDList         `json:"expenseIds" gorm:"type:text"`
	TotalLaborCost    float64        `json:"totalLaborCost" gorm:"not null;default:0"`
	TotalLaborBill    float64        `json:"totalLaborBill" gorm:"not null;default:0"`
	TotalMaterialCost float64        `json:"totalMaterialCost" gorm:"not null;default:0"`
	TotalMaterialBill float64        `json:"totalMaterialBill" gorm:"not null;default:0"`
	TotalExpense      float64        `json:"totalExpense" gorm:"not null;default:0"`
	TotalBill         float64        `json:"totalBill" gorm:"not null;default:0"`
	ForemanName       string         `json:"foremanName" gorm:"default:null"`
	GcSignature       string         `json:"gcSignature" gorm:"default:null"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for TMTag model
func (TMTag) TableName() string {
	return "tm_tags"
}

// BeforeCreate assigns the canonical application id.
func (t *TMTag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
