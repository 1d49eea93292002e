package v1

import (
	"net/http"

	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/services"
	"github.com/gin-gonic/gin"
)

// SettingsController handles company configuration endpoints
type SettingsController struct {
	settingsService *services.SettingsService
}

// NewSettingsController creates a new settings controller
func NewSettingsController() *SettingsController {
	return &SettingsController{
		settingsService: services.NewSettingsService(),
	}
}

// RegisterRoutes registers the read-only settings routes
func (ctrl *SettingsController) RegisterRoutes(router *gin.RouterGroup) {
	settings := router.Group("/settings")
	{
		settings.GET("", ctrl.ListSettings)
		settings.GET("/:key", ctrl.GetSetting)
	}
}

// RegisterAdminRoutes registers the settings mutation route
func (ctrl *SettingsController) RegisterAdminRoutes(router *gin.RouterGroup) {
	settings := router.Group("/settings")
	{
		settings.PUT("", ctrl.UpsertSetting)
	}
}

// ListSettings retrieves all settings
func (ctrl *SettingsController) ListSettings(c *gin.Context) {
	settings, err := ctrl.settingsService.ListSettings()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   settings,
	})
}

// GetSetting retrieves the value of one key
func (ctrl *SettingsController) GetSetting(c *gin.Context) {
	key := c.Param("key")

	value, err := ctrl.settingsService.GetSetting(key)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"key":   key,
			"value": value,
		},
	})
}

// UpsertSetting creates or replaces one configuration key
func (ctrl *SettingsController) UpsertSetting(c *gin.Context) {
	var req dto.UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	if err := ctrl.settingsService.UpsertSetting(req.Key, req.Value); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Setting saved successfully",
	})
}
