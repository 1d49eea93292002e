package repositories

import (
	"github.com/firetm-simple/database"
	"github.com/firetm-simple/models"
)

// GcAccessLogRepository handles the append-only GC access log stream
type GcAccessLogRepository struct{}

// NewGcAccessLogRepository creates a new access log repository instance
func NewGcAccessLogRepository() *GcAccessLogRepository {
	return &GcAccessLogRepository{}
}

// Append records one login attempt. Rows are never updated or deleted.
func (r *GcAccessLogRepository) Append(entry models.GcAccessLog) error {
	return database.DB.Create(&entry).Error
}

// FindByProjectID retrieves a project's access log, newest first
func (r *GcAccessLogRepository) FindByProjectID(projectID string, limit int) ([]models.GcAccessLog, error) {
	var entries []models.GcAccessLog
	db := database.DB.Where("project_id = ?", projectID).Order("timestamp DESC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	result := db.Find(&entries)
	return entries, result.Error
}

// CountByProjectIDAndStatus counts attempts with the given outcome
func (r *GcAccessLogRepository) CountByProjectIDAndStatus(projectID string, status models.AccessStatus) (int64, error) {
	var count int64
	result := database.DB.Model(&models.GcAccessLog{}).
		Where("project_id = ? AND status = ?", projectID, status).
		Count(&count)
	return count, result.Error
}
