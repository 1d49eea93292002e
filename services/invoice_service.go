package services

import (
	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/models"
	"github.com/firetm-simple/repositories"
)

// InvoiceService handles business logic for invoices
type InvoiceService struct {
	invoiceRepo *repositories.InvoiceRepository
	projectRepo *repositories.ProjectRepository
}

// NewInvoiceService creates a new invoice service instance
func NewInvoiceService() *InvoiceService {
	return &InvoiceService{
		invoiceRepo: repositories.NewInvoiceRepository(),
		projectRepo: repositories.NewProjectRepository(),
	}
}

// ListInvoices retrieves invoices, optionally filtered by project and status
func (s *InvoiceService) ListInvoices(projectID, status string) ([]models.Invoice, error) {
	return s.invoiceRepo.FindAll(projectID, status)
}

// GetInvoice retrieves an invoice by ID
func (s *InvoiceService) GetInvoice(id string) (models.Invoice, error) {
	return s.invoiceRepo.FindByID(id)
}

// CreateInvoice creates a new invoice
func (s *InvoiceService) CreateInvoice(req dto.CreateInvoiceRequest) (models.Invoice, error) {
	if _, err := s.projectRepo.FindByID(req.ProjectID); err != nil {
		return models.Invoice{}, err
	}

	issuedDate, err := parseDate(req.IssuedDate)
	if err != nil {
		return models.Invoice{}, err
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return models.Invoice{}, err
	}

	invoice := models.Invoice{
		ProjectID:     req.ProjectID,
		InvoiceNumber: req.InvoiceNumber,
		Amount:        req.Amount,
		Status:        models.InvoiceStatusDraft,
		IssuedDate:    issuedDate,
		DueDate:       dueDate,
		Notes:         req.Notes,
	}
	return s.invoiceRepo.Create(invoice)
}

// UpdateInvoice updates an existing invoice
func (s *InvoiceService) UpdateInvoice(id string, req dto.UpdateInvoiceRequest) (models.Invoice, error) {
	existing, err := s.invoiceRepo.FindByID(id)
	if err != nil {
		return models.Invoice{}, err
	}

	issuedDate, err := parseDate(req.IssuedDate)
	if err != nil {
		return models.Invoice{}, err
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return models.Invoice{}, err
	}

	existing.InvoiceNumber = req.InvoiceNumber
	existing.Amount = req.Amount
	existing.Status = models.InvoiceStatus(req.Status)
	existing.IssuedDate = issuedDate
	existing.DueDate = dueDate
	existing.Notes = req.Notes

	if req.PaidDate != "" {
		paidDate, err := parseDate(req.PaidDate)
		if err != nil {
			return models.Invoice{}, err
		}
		existing.PaidDate = &paidDate
	} else if existing.Status != models.InvoiceStatusPaid {
		existing.PaidDate = nil
	}

	if err := s.invoiceRepo.Update(existing); err != nil {
		return models.Invoice{}, err
	}
	return existing, nil
}

// DeleteInvoice removes an invoice
func (s *InvoiceService) DeleteInvoice(id string) error {
	if _, err := s.invoiceRepo.FindByID(id); err != nil {
		return err
	}
	return s.invoiceRepo.Delete(id)
}
