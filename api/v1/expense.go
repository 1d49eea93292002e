package v1

import (
	"net/http"

	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/services"
	"github.com/gin-gonic/gin"
)

// ExpenseController handles expense-related API endpoints
type ExpenseController struct {
	expenseService *services.ExpenseService
}

// NewExpenseController creates a new expense controller
func NewExpenseController() *ExpenseController {
	return &ExpenseController{
		expenseService: services.NewExpenseService(),
	}
}

// RegisterRoutes registers expense routes
func (ctrl *ExpenseController) RegisterRoutes(router *gin.RouterGroup) {
	expenses := router.Group("/expenses")
	{
		expenses.GET("/:id", ctrl.GetExpense)
		expenses.POST("", ctrl.CreateExpense)
		expenses.PUT("/:id", ctrl.UpdateExpense)
		expenses.DELETE("/:id", ctrl.DeleteExpense)
	}

	projects := router.Group("/projects")
	{
		projects.GET("/:id/expenses", ctrl.ListProjectExpenses)
	}
}

// ListProjectExpenses retrieves all expenses of a project
func (ctrl *ExpenseController) ListProjectExpenses(c *gin.Context) {
	expenses, err := ctrl.expenseService.ListExpenses(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   expenses,
	})
}

// GetExpense retrieves an expense by ID
func (ctrl *ExpenseController) GetExpense(c *gin.Context) {
	expense, err := ctrl.expenseService.GetExpense(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   expense,
	})
}

// CreateExpense records a project expense
func (ctrl *ExpenseController) CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	expense, err := ctrl.expenseService.CreateExpense(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   expense,
	})
}

// UpdateExpense updates an existing expense
func (ctrl *ExpenseController) UpdateExpense(c *gin.Context) {
	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	expense, err := ctrl.expenseService.UpdateExpense(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   expense,
	})
}

// DeleteExpense removes an expense
func (ctrl *ExpenseController) DeleteExpense(c *gin.Context) {
	if err := ctrl.expenseService.DeleteExpense(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Expense deleted successfully",
	})
}
