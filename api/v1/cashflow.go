package v1

import (
	"net/http"

	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/services"
	"github.com/gin-gonic/gin"
)

// CashflowController handles monthly cashflow forecast endpoints
type CashflowController struct {
	cashflowService *services.CashflowService
}

// NewCashflowController creates a new cashflow controller
func NewCashflowController() *CashflowController {
	return &CashflowController{
		cashflowService: services.NewCashflowService(),
	}
}

// RegisterRoutes registers cashflow routes
func (ctrl *CashflowController) RegisterRoutes(router *gin.RouterGroup) {
	cashflow := router.Group("/cashflow")
	{
		cashflow.GET("", ctrl.ListForecasts)
		cashflow.GET("/:id", ctrl.GetForecast)
		cashflow.POST("", ctrl.CreateForecast)
		cashflow.PUT("/:id", ctrl.UpdateForecast)
		cashflow.DELETE("/:id", ctrl.DeleteForecast)
	}
}

// ListForecasts retrieves all forecasts ordered by month
func (ctrl *CashflowController) ListForecasts(c *gin.Context) {
	forecasts, err := ctrl.cashflowService.ListForecasts()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   forecasts,
	})
}

// GetForecast retrieves a forecast by ID
func (ctrl *CashflowController) GetForecast(c *gin.Context) {
	forecast, err := ctrl.cashflowService.GetForecast(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   forecast,
	})
}

// CreateForecast creates a forecast for a month not yet covered
func (ctrl *CashflowController) CreateForecast(c *gin.Context) {
	var req dto.CreateCashflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	forecast, err := ctrl.cashflowService.CreateForecast(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   forecast,
	})
}

// UpdateForecast updates an existing forecast
func (ctrl *CashflowController) UpdateForecast(c *gin.Context) {
	var req dto.UpdateCashflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	forecast, err := ctrl.cashflowService.UpdateForecast(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   forecast,
	})
}

// DeleteForecast removes a forecast
func (ctrl *CashflowController) DeleteForecast(c *gin.Context) {
	if err := ctrl.cashflowService.DeleteForecast(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Forecast deleted successfully",
	})
}
