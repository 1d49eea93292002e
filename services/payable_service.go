package services

import (
	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/models"
	"github.com/firetm-simple/repositories"
)

// PayableService handles business logic for payables
type PayableService struct {
	payableRepo *repositories.PayableRepository
	projectRepo *repositories.ProjectRepository
}

// NewPayableService creates a new payable service instance
func NewPayableService() *PayableService {
	return &PayableService{
		payableRepo: repositories.NewPayableRepository(),
		projectRepo: repositories.NewProjectRepository(),
	}
}

// ListPayables retrieves payables, optionally filtered by status
func (s *PayableService) ListPayables(status string) ([]models.Payable, error) {
	return s.payableRepo.FindAll(status)
}

// GetPayable retrieves a payable by ID
func (s *PayableService) GetPayable(id string) (models.Payable, error) {
	return s.payableRepo.FindByID(id)
}

// CreatePayable creates a new payable
func (s *PayableService) CreatePayable(req dto.CreatePayableRequest) (models.Payable, error) {
	if req.ProjectID != nil {
		if _, err := s.projectRepo.FindByID(*req.ProjectID); err != nil {
			return models.Payable{}, err
		}
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return models.Payable{}, err
	}

	payable := models.Payable{
		VendorName: req.VendorName,
		ProjectID:  req.ProjectID,
		Amount:     req.Amount,
		Status:     models.PayableStatusPending,
		Category:   req.Category,
		DueDate:    dueDate,
		Notes:      req.Notes,
	}
	return s.payableRepo.Create(payable)
}

// UpdatePayable updates an existing payable
func (s *PayableService) UpdatePayable(id string, req dto.UpdatePayableRequest) (models.Payable, error) {
	existing, err := s.payableRepo.FindByID(id)
	if err != nil {
		return models.Payable{}, err
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return models.Payable{}, err
	}

	existing.VendorName = req.VendorName
	existing.Amount = req.Amount
	existing.Status = models.PayableStatus(req.Status)
	existing.Category = req.Category
	existing.DueDate = dueDate
	existing.Notes = req.Notes

	if req.PaidDate != "" {
		paidDate, err := parseDate(req.PaidDate)
		if err != nil {
			return models.Payable{}, err
		}
		existing.PaidDate = &paidDate
	} else if existing.Status != models.PayableStatusPaid {
		existing.PaidDate = nil
	}

	if err := s.payableRepo.Update(existing); err != nil {
		return models.Payable{}, err
	}
	return existing, nil
}

// DeletePayable removes a payable
func (s *PayableService) DeletePayable(id string) error {
	if _, err := s.payableRepo.FindByID(id); err != nil {
		return err
	}
	return s.payableRepo.Delete(id)
}
