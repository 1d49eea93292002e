package services

import (
	"github.com/firetm-simple/models"
	"github.com/firetm-simple/repositories"
)

// SettingsService handles company-wide configuration
type SettingsService struct {
	settingRepo *repositories.SettingRepository
}

// NewSettingsService creates a new settings service instance
func NewSettingsService() *SettingsService {
	return &SettingsService{
		settingRepo: repositories.NewSettingRepository(),
	}
}

// ListSettings retrieves all settings
func (s *SettingsService) ListSettings() ([]models.Setting, error) {
	return s.settingRepo.FindAll()
}

// GetSetting retrieves the value of one key
func (s *SettingsService) GetSetting(key string) (string, error) {
	return s.settingRepo.Get(key)
}

// UpsertSetting creates or replaces one key
func (s *SettingsService) UpsertSetting(key, value string) error {
	return s.settingRepo.Upsert(key, value)
}
