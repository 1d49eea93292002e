package repositories

import (
	"errors"

	"github.com/firetm-simple/database"
	"github.com/firetm-simple/models"
	"gorm.io/gorm"
)

// InstallerRepository handles database operations for installers
type InstallerRepository struct{}

// NewInstallerRepository creates a new installer repository instance
func NewInstallerRepository() *InstallerRepository {
	return &InstallerRepository{}
}

// FindAll retrieves all installers, optionally only active ones
func (r *InstallerRepository) FindAll(activeOnly bool) ([]models.Installer, error) {
	var installers []models.Installer
	db := database.DB.Order("name ASC")
	if activeOnly {
		db = db.Where("active = ?", true)
	}
	result := db.Find(&installers)
	return installers, result.Error
}

// FindByID retrieves an installer by its ID
func (r *InstallerRepository) FindByID(id string) (models.Installer, error) {
	var installer models.Installer
	result := database.DB.First(&installer, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return installer, models.ErrNotFound
	}
	return installer, result.Error
}

// FindByIDs retrieves installers keyed by id
func (r *InstallerRepository) FindByIDs(ids []string) (map[string]models.Installer, error) {
	var installers []models.Installer
	if err := database.DB.Where("id IN ?", ids).Find(&installers).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]models.Installer, len(installers))
	for _, installer := range installers {
		byID[installer.ID] = installer
	}
	return byID, nil
}

// Create inserts a new installer into the database
func (r *InstallerRepository) Create(installer models.Installer) (models.Installer, error) {
	result := database.DB.Create(&installer)
	return installer, result.Error
}

// Update modifies an existing installer
func (r *InstallerRepository) Update(installer models.Installer) error {
	result := database.DB.Save(&installer)
	return result.Error
}

// Delete removes an installer from the database (soft delete)
func (r *InstallerRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Installer{}, "id = ?", id)
	return result.Error
}
