package services

import (
	"fmt"

	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/models"
	"github.com/firetm-simple/repositories"
)

// CashflowService handles business logic for cashflow forecasts
type CashflowService struct {
	cashflowRepo *repositories.CashflowRepository
}

// NewCashflowService creates a new cashflow service instance
func NewCashflowService() *CashflowService {
	return &CashflowService{
		cashflowRepo: repositories.NewCashflowRepository(),
	}
}

func toCashflowResponse(forecast models.CashflowForecast) dto.CashflowResponse {
	return dto.CashflowResponse{
		ID:              forecast.ID,
		Month:           forecast.Month,
		ExpectedInflow:  forecast.ExpectedInflow,
		ExpectedOutflow: forecast.ExpectedOutflow,
		OpeningBalance:  forecast.OpeningBalance,
		ClosingBalance:  forecast.ClosingBalance(),
		Notes:           forecast.Notes,
	}
}

// ListForecasts retrieves all forecasts ordered by month
func (s *CashflowService) ListForecasts() ([]dto.CashflowResponse, error) {
	forecasts, err := s.cashflowRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]dto.CashflowResponse, 0, len(forecasts))
	for _, forecast := range forecasts {
		responses = append(responses, toCashflowResponse(forecast))
	}
	return responses, nil
}

// GetForecast retrieves a forecast by ID
func (s *CashflowService) GetForecast(id string) (dto.CashflowResponse, error) {
	forecast, err := s.cashflowRepo.FindByID(id)
	if err != nil {
		return dto.CashflowResponse{}, err
	}
	return toCashflowResponse(forecast), nil
}

// CreateForecast creates a forecast for a month not yet covered
func (s *CashflowService) CreateForecast(req dto.CreateCashflowRequest) (dto.CashflowResponse, error) {
	if err := parseMonth(req.Month); err != nil {
		return dto.CashflowResponse{}, err
	}

	if _, err := s.cashflowRepo.FindByMonth(req.Month); err == nil {
		return dto.CashflowResponse{}, fmt.Errorf("%w: forecast for %s already exists", models.ErrValidation, req.Month)
	}

	forecast := models.CashflowForecast{
		Month:           req.Month,
		ExpectedInflow:  req.ExpectedInflow,
		ExpectedOutflow: req.ExpectedOutflow,
		OpeningBalance:  req.OpeningBalance,
		Notes:           req.Notes,
	}

	created, err := s.cashflowRepo.Create(forecast)
	if err != nil {
		return dto.CashflowResponse{}, err
	}
	return toCashflowResponse(created), nil
}

// UpdateForecast updates an existing forecast
func (s *CashflowService) UpdateForecast(id string, req dto.UpdateCashflowRequest) (dto.CashflowResponse, error) {
	existing, err := s.cashflowRepo.FindByID(id)
	if err != nil {
		return dto.CashflowResponse{}, err
	}

	existing.ExpectedInflow = req.ExpectedInflow
	existing.ExpectedOutflow = req.ExpectedOutflow
	existing.OpeningBalance = req.OpeningBalance
	existing.Notes = req.Notes

	if err := s.cashflowRepo.Update(existing); err != nil {
		return dto.CashflowResponse{}, err
	}
	return toCashflowResponse(existing), nil
}

// DeleteForecast removes a forecast
func (s *CashflowService) DeleteForecast(id string) error {
	if _, err := s.cashflowRepo.FindByID(id); err != nil {
		return err
	}
	return s.cashflowRepo.Delete(id)
}
