package repositories

import (
	"errors"

	"github.com/firetm-simple/database"
	"github.com/firetm-simple/models"
	"gorm.io/gorm"
)

// CashflowRepository handles database operations for cashflow forecasts
type CashflowRepository struct{}

// NewCashflowRepository creates a new cashflow repository instance
func NewCashflowRepository() *CashflowRepository {
	return &CashflowRepository{}
}

// FindAll retrieves all forecasts ordered by month
func (r *CashflowRepository) FindAll() ([]models.CashflowForecast, error) {
	var forecasts []models.CashflowForecast
	result := database.DB.Order("month ASC").Find(&forecasts)
	return forecasts, result.Error
}

// FindByID retrieves a forecast by its ID
func (r *CashflowRepository) FindByID(id string) (models.CashflowForecast, error) {
	var forecast models.CashflowForecast
	result := database.DB.First(&forecast, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return forecast, models.ErrNotFound
	}
	return forecast, result.Error
}

// FindByMonth retrieves a forecast by its "2006-01" month key
func (r *CashflowRepository) FindByMonth(month string) (models.CashflowForecast, error) {
	var forecast models.CashflowForecast
	result := database.DB.First(&forecast, "month = ?", month)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return forecast, models.ErrNotFound
	}
	return forecast, result.Error
}

// Create inserts a new forecast into the database
func (r *CashflowRepository) Create(forecast models.CashflowForecast) (models.CashflowForecast, error) {
	result := database.DB.Create(&forecast)
	return forecast, result.Error
}

// Update modifies an existing forecast
func (r *CashflowRepository) Update(forecast models.CashflowForecast) error {
	result := database.DB.Save(&forecast)
	return result.Error
}

// Delete removes a forecast from the database (soft delete)
func (r *CashflowRepository) Delete(id string) error {
	result := database.DB.Delete(&models.CashflowForecast{}, "id = ?", id)
	return result.Error
}
