package repositories

import (
	"errors"

	"github.com/firetm-simple/database"
	"github.com/firetm-simple/models"
	"gorm.io/gorm"
)

// PayableRepository handles database operations for payables
type PayableRepository struct{}

// NewPayableRepository creates a new payable repository instance
func NewPayableRepository() *PayableRepository {
	return &PayableRepository{}
}

// FindAll retrieves all payables, optionally filtered by status
func (r *PayableRepository) FindAll(status string) ([]models.Payable, error) {
	var payables []models.Payable
	db := database.DB.Order("due_date ASC")
	if status != "" {
		db = db.Where("status = ?", status)
	}
	result := db.Find(&payables)
	return payables, result.Error
}

// FindByID retrieves a payable by its ID
func (r *PayableRepository) FindByID(id string) (models.Payable, error) {
	var payable models.Payable
	result := database.DB.First(&payable, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return payable, models.ErrNotFound
	}
	return payable, result.Error
}

// Create inserts a new payable into the database
func (r *PayableRepository) Create(payable models.Payable) (models.Payable, error) {
	result := database.DB.Create(&payable)
	return payable, result.Error
}

// Update modifies an existing payable
func (r *PayableRepository) Update(payable models.Payable) error {
	result := database.DB.Save(&payable)
	return result.Error
}

// Delete removes a payable from the database (soft delete)
func (r *PayableRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Payable{}, "id = ?", id)
	return result.Error
}
