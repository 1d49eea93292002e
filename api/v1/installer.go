package v1

import (
	"net/http"

	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/services"
	"github.com/gin-gonic/gin"
)

// InstallerController handles installer-related API endpoints
type InstallerController struct {
	installerService *services.InstallerService
}

// NewInstallerController creates a new installer controller
func NewInstallerController() *InstallerController {
	return &InstallerController{
		installerService: services.NewInstallerService(),
	}
}

// RegisterRoutes registers installer routes
func (ctrl *InstallerController) RegisterRoutes(router *gin.RouterGroup) {
	installers := router.Group("/installers")
	{
		installers.GET("", ctrl.ListInstallers)
		installers.GET("/:id", ctrl.GetInstaller)
		installers.POST("", ctrl.CreateInstaller)
		installers.PUT("/:id", ctrl.UpdateInstaller)
		installers.DELETE("/:id", ctrl.DeleteInstaller)
	}
}

// ListInstallers retrieves all installers
func (ctrl *InstallerController) ListInstallers(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	installers, err := ctrl.installerService.ListInstallers(activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   installers,
	})
}

// GetInstaller retrieves an installer by ID
func (ctrl *InstallerController) GetInstaller(c *gin.Context) {
	installer, err := ctrl.installerService.GetInstaller(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   installer,
	})
}

// CreateInstaller creates a new installer
func (ctrl *InstallerController) CreateInstaller(c *gin.Context) {
	var req dto.CreateInstallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	installer, err := ctrl.installerService.CreateInstaller(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   installer,
	})
}

// UpdateInstaller updates an existing installer
func (ctrl *InstallerController) UpdateInstaller(c *gin.Context) {
	var req dto.UpdateInstallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	installer, err := ctrl.installerService.UpdateInstaller(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   installer,
	})
}

// DeleteInstaller removes an installer
func (ctrl *InstallerController) DeleteInstaller(c *gin.Context) {
	if err := ctrl.installerService.DeleteInstaller(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Installer deleted successfully",
	})
}
