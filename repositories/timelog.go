package repositories

import (
	"errors"

	"github.com/firetm-simple/database"
	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/models"
	"gorm.io/gorm"
)

// TimeLogRepository handles database operations for time logs
type TimeLogRepository struct{}

// NewTimeLogRepository creates a new time log repository instance
func NewTimeLogRepository() *TimeLogRepository {
	return &TimeLogRepository{}
}

// FindByID retrieves a time log by its ID
func (r *TimeLogRepository) FindByID(id string) (models.TimeLog, error) {
	var timeLog models.TimeLog
	result := database.DB.First(&timeLog, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return timeLog, models.ErrNotFound
	}
	return timeLog, result.Error
}

// FindByIDs retrieves the time logs with the given ids
func (r *TimeLogRepository) FindByIDs(ids []string) ([]models.TimeLog, error) {
	var timeLogs []models.TimeLog
	result := database.DB.Where("id IN ?", ids).Find(&timeLogs)
	return timeLogs, result.Error
}

// FindByProjectID retrieves all time logs of a project
func (r *TimeLogRepository) FindByProjectID(projectID string) ([]models.TimeLog, error) {
	var timeLogs []models.TimeLog
	result := database.DB.Where("project_id = ?", projectID).Order("date ASC").Find(&timeLogs)
	return timeLogs, result.Error
}

// FindFiltered retrieves time logs matching the filter
func (r *TimeLogRepository) FindFiltered(filter dto.TimeLogFilter) ([]models.TimeLog, error) {
	var timeLogs []models.TimeLog

	db := database.DB.Model(&models.TimeLog{})

	if filter.ProjectID != "" {
		db = db.Where("project_id = ?", filter.ProjectID)
	}
	if filter.InstallerID != "" {
		db = db.Where("installer_id = ?", filter.InstallerID)
	}
	if filter.From != "" {
		db = db.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		db = db.Where("date <= ?", filter.To)
	}

	result := db.Order("date ASC").Find(&timeLogs)
	return timeLogs, result.Error
}

// Create inserts a new time log into the database
func (r *TimeLogRepository) Create(timeLog models.TimeLog) (models.TimeLog, error) {
	result := database.DB.Create(&timeLog)
	return timeLog, result.Error
}

// Update modifies an existing time log
func (r *TimeLogRepository) Update(timeLog models.TimeLog) error {
	result := database.DB.Save(&timeLog)
	return result.Error
}

// Delete removes a time log from the database (soft delete)
func (r *TimeLogRepository) Delete(id string) error {
	result := database.DB.Delete(&models.TimeLog{}, "id = ?", id)
	return result.Error
}
