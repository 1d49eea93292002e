package repositories

import (
	"errors"

	"github.com/firetm-simple/database"
	"github.com/firetm-simple/models"
	"gorm.io/gorm"
)

// MaterialRepository handles database operations for materials
type MaterialRepository struct{}

// NewMaterialRepository creates a new material repository instance
func NewMaterialRepository() *MaterialRepository {
	return &MaterialRepository{}
}

// FindByID retrieves a material by its ID
func (r *MaterialRepository) FindByID(id string) (models.Material, error) {
	var material models.Material
	result := database.DB.First(&material, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return material, models.ErrNotFound
	}
	return material, result.Error
}

// FindByIDs retrieves the materials with the given ids
func (r *MaterialRepository) FindByIDs(ids []string) ([]models.Material, error) {
	var materials []models.Material
	result := database.DB.Where("id IN ?", ids).Find(&materials)
	return materials, result.Error
}

// FindByProjectID retrieves all materials of a project
func (r *MaterialRepository) FindByProjectID(projectID string) ([]models.Material, error) {
	var materials []models.Material
	result := database.DB.Where("project_id = ?", projectID).Order("date ASC").Find(&materials)
	return materials, result.Error
}

// Create inserts a new material into the database
func (r *MaterialRepository) Create(material models.Material) (models.Material, error) {
	result := database.DB.Create(&material)
	return material, result.Error
}

// Update modifies an existing material
func (r *MaterialRepository) Update(material models.Material) error {
	result := database.DB.Save(&material)
	return result.Error
}

// Delete removes a material from the database (soft delete)
func (r *MaterialRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Material{}, "id = ?", id)
	return result.Error
}
