package services

import (
	"fmt"

	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/models"
	"github.com/firetm-simple/repositories"
)

// TMTagService handles business logic for T&M tags. Tag totals are never
// taken from the caller: they are recomputed from the referenced records by
// the billing engine whenever a tag is created or edited.
type TMTagService struct {
	tmTagRepo     *repositories.TMTagRepository
	projectRepo   *repositories.ProjectRepository
	timeLogRepo   *repositories.TimeLogRepository
	materialRepo  *repositories.MaterialRepository
	expenseRepo   *repositories.ExpenseRepository
	installerRepo *repositories.InstallerRepository
}

// NewTMTagService creates a new T&M tag service instance
func NewTMTagService() *TMTagService {
	return &TMTagService{
		tmTagRepo:     repositories.NewTMTagRepository(),
		projectRepo:   repositories.NewProjectRepository(),
		timeLogRepo:   repositories.NewTimeLogRepository(),
		materialRepo:  repositories.NewMaterialRepository(),
		expenseRepo:   repositories.NewExpenseRepository(),
		installerRepo: repositories.NewInstallerRepository(),
	}
}

// ListTags retrieves all tags of a project, newest first
func (s *TMTagService) ListTags(projectID string) ([]models.TMTag, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return nil, err
	}
	return s.tmTagRepo.FindByProjectID(projectID)
}

// GetTag retrieves a tag by ID
func (s *TMTagService) GetTag(id string) (models.TMTag, error) {
	return s.tmTagRepo.FindByID(id)
}

// CreateTag builds a tag for a billing period and prices it
func (s *TMTagService) CreateTag(req dto.CreateTMTagRequest) (models.TMTag, error) {
	project, err := s.projectRepo.FindByID(req.ProjectID)
	if err != nil {
		return models.TMTag{}, err
	}

	periodStart, err := parseDate(req.PeriodStart)
	if err != nil {
		return models.TMTag{}, err
	}
	periodEnd, err := parseDate(req.PeriodEnd)
	if err != nil {
		return models.TMTag{}, err
	}
	if periodEnd.Before(periodStart) {
		return models.TMTag{}, fmt.Errorf("%w: period end before period start", models.ErrValidation)
	}

	tag := models.TMTag{
		ProjectID:   req.ProjectID,
		TagNumber:   req.TagNumber,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Status:      models.TagStatusDraft,
		TimeLogIDs:  req.TimeLogIDs,
		MaterialIDs: req.MaterialIDs,
		ExpenseIDs:  req.ExpenseIDs,
		ForemanName: req.ForemanName,
	}

	if err := s.priceTag(&tag, project); err != nil {
		return models.TMTag{}, err
	}

	return s.tmTagRepo.Create(tag)
}

// UpdateTag edits a draft or submitted tag and reprices it. An accepted tag
// is immutable.
func (s *TMTagService) UpdateTag(id string, req dto.UpdateTMTagRequest) (models.TMTag, error) {
	existing, err := s.tmTagRepo.FindByID(id)
	if err != nil {
		return models.TMTag{}, err
	}

	if existing.Status == models.TagStatusAccepted {
		return models.TMTag{}, models.ErrImmutableTag
	}

	project, err := s.projectRepo.FindByID(existing.ProjectID)
	if err != nil {
		return models.TMTag{}, err
	}

	periodStart, err := parseDate(req.PeriodStart)
	if err != nil {
		return models.TMTag{}, err
	}
	periodEnd, err := parseDate(req.PeriodEnd)
	if err != nil {
		return models.TMTag{}, err
	}
	if periodEnd.Before(periodStart) {
		return models.TMTag{}, fmt.Errorf("%w: period end before period start", models.ErrValidation)
	}

	existing.TagNumber = req.TagNumber
	existing.PeriodStart = periodStart
	existing.PeriodEnd = periodEnd
	existing.TimeLogIDs = req.TimeLogIDs
	existing.MaterialIDs = req.MaterialIDs
	existing.ExpenseIDs = req.ExpenseIDs
	existing.ForemanName = req.ForemanName
	existing.GcSignature = req.GcSignature

	if err := s.priceTag(&existing, project); err != nil {
		return models.TMTag{}, err
	}

	if err := s.tmTagRepo.Update(existing); err != nil {
		return models.TMTag{}, err
	}
	return existing, nil
}

// UpdateTagStatus moves a tag through its workflow. Once accepted a tag can
// never change status again.
func (s *TMTagService) UpdateTagStatus(id string, status models.TagStatus) (models.TMTag, error) {
	existing, err := s.tmTagRepo.FindByID(id)
	if err != nil {
		return models.TMTag{}, err
	}

	if existing.Status == models.TagStatusAccepted {
		return models.TMTag{}, models.ErrImmutableTag
	}

	existing.Status = status
	if err := s.tmTagRepo.Update(existing); err != nil {
		return models.TMTag{}, err
	}
	return existing, nil
}

// DeleteTag removes a tag; accepted tags cannot be deleted
func (s *TMTagService) DeleteTag(id string) error {
	existing, err := s.tmTagRepo.FindByID(id)
	if err != nil {
		return err
	}
	if existing.Status == models.TagStatusAccepted {
		return models.ErrImmutableTag
	}
	return s.tmTagRepo.Delete(id)
}

// priceTag loads the referenced records and fills in the tag's totals via
// the billing engine.
func (s *TMTagService) priceTag(tag *models.TMTag, project models.Project) error {
	tag.TotalLaborCost = 0
	tag.TotalLaborBill = 0
	tag.TotalMaterialCost = 0
	tag.TotalMaterialBill = 0
	tag.TotalExpense = 0

	if len(tag.TimeLogIDs) > 0 {
		timeLogs, err := s.timeLogRepo.FindByIDs(tag.TimeLogIDs)
		if err != nil {
			return err
		}
		if len(timeLogs) != len(tag.TimeLogIDs) {
			return fmt.Errorf("%w: tag references missing time logs", models.ErrValidation)
		}

		installerIDs := make([]string, 0, len(timeLogs))
		for _, timeLog := range timeLogs {
			installerIDs = append(installerIDs, timeLog.InstallerID)
		}
		installers, err := s.installerRepo.FindByIDs(installerIDs)
		if err != nil {
			return err
		}

		for _, timeLog := range timeLogs {
			installer, ok := installers[timeLog.InstallerID]
			if !ok {
				return models.ErrNotFound
			}
			line, err := ComputeLaborLine(timeLog, project, installer)
			if err != nil {
				return err
			}
			tag.TotalLaborCost += line.CostAmount
			tag.TotalLaborBill += line.BillAmount
		}
	}

	if len(tag.MaterialIDs) > 0 {
		materials, err := s.materialRepo.FindByIDs(tag.MaterialIDs)
		if err != nil {
			return err
		}
		if len(materials) != len(tag.MaterialIDs) {
			return fmt.Errorf("%w: tag references missing materials", models.ErrValidation)
		}
		for _, material := range materials {
			line := ComputeMaterialLine(material)
			tag.TotalMaterialCost += line.CostAmount
			tag.TotalMaterialBill += line.BillAmount
		}
	}

	if len(tag.ExpenseIDs) > 0 {
		expenses, err := s.expenseRepo.FindByIDs(tag.ExpenseIDs)
		if err != nil {
			return err
		}
		if len(expenses) != len(tag.ExpenseIDs) {
			return fmt.Errorf("%w: tag references missing expenses", models.ErrValidation)
		}
		for _, expense := range expenses {
			tag.TotalExpense += expense.Amount
		}
	}

	tag.TotalBill = tag.TotalLaborBill + tag.TotalMaterialBill + tag.TotalExpense
	return nil
}
