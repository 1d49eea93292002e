package repositories

import (
	"errors"

	"github.com/firetm-simple/database"
	"github.com/firetm-simple/models"
	"gorm.io/gorm"
)

// TMTagRepository handles database operations for T&M tags
type TMTagRepository struct{}

// NewTMTagRepository creates a new T&M tag repository instance
func NewTMTagRepository() *TMTagRepository {
	return &TMTagRepository{}
}

// FindByID retrieves a tag by its ID
func (r *TMTagRepository) FindByID(id string) (models.TMTag, error) {
	var tag models.TMTag
	result := database.DB.First(&tag, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return tag, models.ErrNotFound
	}
	return tag, result.Error
}

// FindByProjectID retrieves all tags of a project, newest first
func (r *TMTagRepository) FindByProjectID(projectID string) ([]models.TMTag, error) {
	var tags []models.TMTag
	result := database.DB.Where("project_id = ?", projectID).Order("period_start DESC").Find(&tags)
	return tags, result.Error
}

// CountByProjectIDAndStatus counts a project's tags in a given status
func (r *TMTagRepository) CountByProjectIDAndStatus(projectID string, status models.TagStatus) (int64, error) {
	var count int64
	result := database.DB.Model(&models.TMTag{}).
		Where("project_id = ? AND status = ?", projectID, status).
		Count(&count)
	return count, result.Error
}

// Create inserts a new tag into the database
func (r *TMTagRepository) Create(tag models.TMTag) (models.TMTag, error) {
	result := database.DB.Create(&tag)
	return tag, result.Error
}

// Update modifies an existing tag
func (r *TMTagRepository) Update(tag models.TMTag) error {
	result := database.DB.Save(&tag)
	return result.Error
}

// Delete removes a tag from the database (soft delete)
func (r *TMTagRepository) Delete(id string) error {
	result := database.DB.Delete(&models.TMTag{}, "id = ?", id)
	return result.Error
}
