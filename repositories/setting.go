package repositories

import (
	"errors"

	"github.com/firetm-simple/database"
	"github.com/firetm-simple/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository handles database operations for settings
type SettingRepository struct{}

// NewSettingRepository creates a new setting repository instance
func NewSettingRepository() *SettingRepository {
	return &SettingRepository{}
}

// FindAll retrieves all settings
func (r *SettingRepository) FindAll() ([]models.Setting, error) {
	var settings []models.Setting
	result := database.DB.Order("key ASC").Find(&settings)
	return settings, result.Error
}

// Get retrieves the value of one key
func (r *SettingRepository) Get(key string) (string, error) {
	var setting models.Setting
	result := database.DB.First(&setting, "key = ?", key)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return "", models.ErrNotFound
	}
	return setting.Value, result.Error
}

// Upsert creates or replaces the value of one key
func (r *SettingRepository) Upsert(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}
