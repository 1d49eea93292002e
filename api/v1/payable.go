package v1

import (
	"net/http"

	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/services"
	"github.com/gin-gonic/gin"
)

// PayableController handles vendor payable API endpoints
type PayableController struct {
	payableService *services.PayableService
}

// NewPayableController creates a new payable controller
func NewPayableController() *PayableController {
	return &PayableController{
		payableService: services.NewPayableService(),
	}
}

// RegisterRoutes registers payable routes
func (ctrl *PayableController) RegisterRoutes(router *gin.RouterGroup) {
	payables := router.Group("/payables")
	{
		payables.GET("", ctrl.ListPayables)
		payables.GET("/:id", ctrl.GetPayable)
		payables.POST("", ctrl.CreatePayable)
		payables.PUT("/:id", ctrl.UpdatePayable)
		payables.DELETE("/:id", ctrl.DeletePayable)
	}
}

// ListPayables retrieves payables, optionally filtered by status
func (ctrl *PayableController) ListPayables(c *gin.Context) {
	payables, err := ctrl.payableService.ListPayables(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   payables,
	})
}

// GetPayable retrieves a payable by ID
func (ctrl *PayableController) GetPayable(c *gin.Context) {
	payable, err := ctrl.payableService.GetPayable(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   payable,
	})
}

// CreatePayable creates a new payable
func (ctrl *PayableController) CreatePayable(c *gin.Context) {
	var req dto.CreatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	payable, err := ctrl.payableService.CreatePayable(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   payable,
	})
}

// UpdatePayable updates an existing payable
func (ctrl *PayableController) UpdatePayable(c *gin.Context) {
	var req dto.UpdatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	payable, err := ctrl.payableService.UpdatePayable(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   payable,
	})
}

// DeletePayable removes a payable
func (ctrl *PayableController) DeletePayable(c *gin.Context) {
	if err := ctrl.payableService.DeletePayable(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Payable deleted successfully",
	})
}
