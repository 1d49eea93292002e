package v1

import (
	"net/http"

	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/services"
	"github.com/gin-gonic/gin"
)

// InvoiceController handles invoice-related API endpoints
type InvoiceController struct {
	invoiceService *services.InvoiceService
}

// NewInvoiceController creates a new invoice controller
func NewInvoiceController() *InvoiceController {
	return &InvoiceController{
		invoiceService: services.NewInvoiceService(),
	}
}

// RegisterRoutes registers invoice routes
func (ctrl *InvoiceController) RegisterRoutes(router *gin.RouterGroup) {
	invoices := router.Group("/invoices")
	{
		invoices.GET("", ctrl.ListInvoices)
		invoices.GET("/:id", ctrl.GetInvoice)
		invoices.POST("", ctrl.CreateInvoice)
		invoices.PUT("/:id", ctrl.UpdateInvoice)
		invoices.DELETE("/:id", ctrl.DeleteInvoice)
	}
}

// ListInvoices retrieves invoices, optionally filtered by project and status
func (ctrl *InvoiceController) ListInvoices(c *gin.Context) {
	invoices, err := ctrl.invoiceService.ListInvoices(c.Query("projectId"), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   invoices,
	})
}

// GetInvoice retrieves an invoice by ID
func (ctrl *InvoiceController) GetInvoice(c *gin.Context) {
	invoice, err := ctrl.invoiceService.GetInvoice(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   invoice,
	})
}

// CreateInvoice creates a new invoice
func (ctrl *InvoiceController) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	invoice, err := ctrl.invoiceService.CreateInvoice(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   invoice,
	})
}

// UpdateInvoice updates an existing invoice
func (ctrl *InvoiceController) UpdateInvoice(c *gin.Context) {
	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	invoice, err := ctrl.invoiceService.UpdateInvoice(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   invoice,
	})
}

// DeleteInvoice removes an invoice
func (ctrl *InvoiceController) DeleteInvoice(c *gin.Context) {
	if err := ctrl.invoiceService.DeleteInvoice(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Invoice deleted successfully",
	})
}
