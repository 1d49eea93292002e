package services

import (
	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/models"
	"github.com/firetm-simple/repositories"
)

// ExpenseService handles business logic for expenses
type ExpenseService struct {
	expenseRepo *repositories.ExpenseRepository
	projectRepo *repositories.ProjectRepository
}

// NewExpenseService creates a new expense service instance
func NewExpenseService() *ExpenseService {
	return &ExpenseService{
		expenseRepo: repositories.NewExpenseRepository(),
		projectRepo: repositories.NewProjectRepository(),
	}
}

// ListExpenses retrieves all expenses of a project
func (s *ExpenseService) ListExpenses(projectID string) ([]models.Expense, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return nil, err
	}
	return s.expenseRepo.FindByProjectID(projectID)
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(id string) (models.Expense, error) {
	return s.expenseRepo.FindByID(id)
}

// CreateExpense records a project expense
func (s *ExpenseService) CreateExpense(req dto.CreateExpenseRequest) (models.Expense, error) {
	if _, err := s.projectRepo.FindByID(req.ProjectID); err != nil {
		return models.Expense{}, err
	}

	date, err := parseDateOptional(req.Date)
	if err != nil {
		return models.Expense{}, err
	}

	expense := models.Expense{
		ProjectID:   req.ProjectID,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        date,
	}
	return s.expenseRepo.Create(expense)
}

// UpdateExpense updates an existing expense
func (s *ExpenseService) UpdateExpense(id string, req dto.UpdateExpenseRequest) (models.Expense, error) {
	existing, err := s.expenseRepo.FindByID(id)
	if err != nil {
		return models.Expense{}, err
	}

	date, err := parseDateOptional(req.Date)
	if err != nil {
		return models.Expense{}, err
	}

	existing.Description = req.Description
	existing.Amount = req.Amount
	existing.Category = req.Category
	if !date.IsZero() {
		existing.Date = date
	}

	if err := s.expenseRepo.Update(existing); err != nil {
		return models.Expense{}, err
	}
	return existing, nil
}

// DeleteExpense removes an expense
func (s *ExpenseService) DeleteExpense(id string) error {
	if _, err := s.expenseRepo.FindByID(id); err != nil {
		return err
	}
	return s.expenseRepo.Delete(id)
}
