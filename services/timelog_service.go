package services

import (
	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/models"
	"github.com/firetm-simple/repositories"
)

// TimeLogService handles business logic for time logs
type TimeLogService struct {
	timeLogRepo   *repositories.TimeLogRepository
	projectRepo   *repositories.ProjectRepository
	installerRepo *repositories.InstallerRepository
}

// NewTimeLogService creates a new time log service instance
func NewTimeLogService() *TimeLogService {
	return &TimeLogService{
		timeLogRepo:   repositories.NewTimeLogRepository(),
		projectRepo:   repositories.NewProjectRepository(),
		installerRepo: repositories.NewInstallerRepository(),
	}
}

// ListTimeLogs retrieves time logs matching the filter
func (s *TimeLogService) ListTimeLogs(filter dto.TimeLogFilter) ([]models.TimeLog, error) {
	return s.timeLogRepo.FindFiltered(filter)
}

// GetTimeLog retrieves a time log by ID
func (s *TimeLogService) GetTimeLog(id string) (models.TimeLog, error) {
	return s.timeLogRepo.FindByID(id)
}

// CreateTimeLog logs hours after checking the referenced project and
// installer exist
func (s *TimeLogService) CreateTimeLog(req dto.CreateTimeLogRequest) (models.TimeLog, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return models.TimeLog{}, err
	}

	if _, err := s.projectRepo.FindByID(req.ProjectID); err != nil {
		return models.TimeLog{}, err
	}
	if _, err := s.installerRepo.FindByID(req.InstallerID); err != nil {
		return models.TimeLog{}, err
	}

	timeLog := models.TimeLog{
		Date:             date,
		InstallerID:      req.InstallerID,
		ProjectID:        req.ProjectID,
		Hours:            req.Hours,
		BillRateOverride: req.BillRateOverride,
		Notes:            req.Notes,
	}
	return s.timeLogRepo.Create(timeLog)
}

// UpdateTimeLog updates an existing time log
func (s *TimeLogService) UpdateTimeLog(id string, req dto.UpdateTimeLogRequest) (models.TimeLog, error) {
	existing, err := s.timeLogRepo.FindByID(id)
	if err != nil {
		return models.TimeLog{}, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return models.TimeLog{}, err
	}

	existing.Date = date
	existing.Hours = req.Hours
	existing.BillRateOverride = req.BillRateOverride
	existing.Notes = req.Notes

	if err := s.timeLogRepo.Update(existing); err != nil {
		return models.TimeLog{}, err
	}
	return existing, nil
}

// DeleteTimeLog removes a time log
func (s *TimeLogService) DeleteTimeLog(id string) error {
	if _, err := s.timeLogRepo.FindByID(id); err != nil {
		return err
	}
	return s.timeLogRepo.Delete(id)
}
