package v1

import (
	"net/http"
	"strconv"

	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/services"
	"github.com/gin-gonic/gin"
)

// GcController handles the GC portal and the office-side PIN endpoints
type GcController struct {
	gcAccessService *services.GcAccessService
}

// NewGcController creates a new GC controller
func NewGcController() *GcController {
	return &GcController{
		gcAccessService: services.NewGcAccessService(),
	}
}

// RegisterPortalRoutes registers the PIN-gated GC portal routes. These are
// not behind the JWT middleware: possession of an outstanding PIN is the
// only credential.
func (ctrl *GcController) RegisterPortalRoutes(router *gin.RouterGroup) {
	gc := router.Group("/gc")
	{
		gc.POST("/validate-pin", ctrl.ValidatePin)
		gc.POST("/projects/:id/login", ctrl.LoginWithProjectAndPin)
		gc.GET("/projects/:id/dashboard", ctrl.GetDashboard)
	}
}

// RegisterAdminRoutes registers the office-side PIN management routes
func (ctrl *GcController) RegisterAdminRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.POST("/:id/gc-pin", ctrl.IssuePin)
		projects.GET("/:id/access-logs", ctrl.GetAccessLogs)
	}
}

// IssuePin returns the project's current PIN, generating one if none is
// outstanding. Idempotent: peeking never rotates.
func (ctrl *GcController) IssuePin(c *gin.Context) {
	projectID := c.Param("id")

	response, err := ctrl.gcAccessService.IssuePin(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// ValidatePin is the PIN-only GC login
func (ctrl *GcController) ValidatePin(c *gin.Context) {
	var req dto.ValidatePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	response, err := ctrl.gcAccessService.ValidatePin(req.Pin, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// LoginWithProjectAndPin is the stricter login used when the caller already
// knows the project
func (ctrl *GcController) LoginWithProjectAndPin(c *gin.Context) {
	projectID := c.Param("id")

	var req dto.GcLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	response, err := ctrl.gcAccessService.LoginWithProjectAndPin(projectID, req.Pin, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetDashboard returns the financially redacted GC project view
func (ctrl *GcController) GetDashboard(c *gin.Context) {
	projectID := c.Param("id")

	dashboard, err := ctrl.gcAccessService.Dashboard(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   dashboard,
	})
}

// GetAccessLogs returns a project's login history
func (ctrl *GcController) GetAccessLogs(c *gin.Context) {
	projectID := c.Param("id")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 {
		limit = 100
	}

	logs, err := ctrl.gcAccessService.AccessLogs(projectID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   logs,
	})
}
