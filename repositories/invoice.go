package repositories

import (
	"errors"

	"github.com/firetm-simple/database"
	"github.com/firetm-simple/models"
	"gorm.io/gorm"
)

// InvoiceRepository handles database operations for invoices
type InvoiceRepository struct{}

// NewInvoiceRepository creates a new invoice repository instance
func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{}
}

// FindAll retrieves all invoices, optionally filtered by project and status
func (r *InvoiceRepository) FindAll(projectID, status string) ([]models.Invoice, error) {
	var invoices []models.Invoice
	db := database.DB.Order("issued_date DESC")
	if projectID != "" {
		db = db.Where("project_id = ?", projectID)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}
	result := db.Find(&invoices)
	return invoices, result.Error
}

// FindByID retrieves an invoice by its ID
func (r *InvoiceRepository) FindByID(id string) (models.Invoice, error) {
	var invoice models.Invoice
	result := database.DB.First(&invoice, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return invoice, models.ErrNotFound
	}
	return invoice, result.Error
}

// Create inserts a new invoice into the database
func (r *InvoiceRepository) Create(invoice models.Invoice) (models.Invoice, error) {
	result := database.DB.Create(&invoice)
	return invoice, result.Error
}

// Update modifies an existing invoice
func (r *InvoiceRepository) Update(invoice models.Invoice) error {
	result := database.DB.Save(&invoice)
	return result.Error
}

// Delete removes an invoice from the database (soft delete)
func (r *InvoiceRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Invoice{}, "id = ?", id)
	return result.Error
}
