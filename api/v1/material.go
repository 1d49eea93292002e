package v1

import (
	"net/http"

	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/services"
	"github.com/gin-gonic/gin"
)

// MaterialController handles material-related API endpoints
type MaterialController struct {
	materialService *services.MaterialService
}

// NewMaterialController creates a new material controller
func NewMaterialController() *MaterialController {
	return &MaterialController{
		materialService: services.NewMaterialService(),
	}
}

// RegisterRoutes registers material routes
func (ctrl *MaterialController) RegisterRoutes(router *gin.RouterGroup) {
	materials := router.Group("/materials")
	{
		materials.GET("/:id", ctrl.GetMaterial)
		materials.POST("", ctrl.CreateMaterial)
		materials.PUT("/:id", ctrl.UpdateMaterial)
		materials.DELETE("/:id", ctrl.DeleteMaterial)
	}

	projects := router.Group("/projects")
	{
		projects.GET("/:id/materials", ctrl.ListProjectMaterials)
	}
}

// ListProjectMaterials retrieves all materials of a project
func (ctrl *MaterialController) ListProjectMaterials(c *gin.Context) {
	materials, err := ctrl.materialService.ListMaterials(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   materials,
	})
}

// GetMaterial retrieves a material by ID
func (ctrl *MaterialController) GetMaterial(c *gin.Context) {
	material, err := ctrl.materialService.GetMaterial(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   material,
	})
}

// CreateMaterial records a material purchase
func (ctrl *MaterialController) CreateMaterial(c *gin.Context) {
	var req dto.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	material, err := ctrl.materialService.CreateMaterial(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   material,
	})
}

// UpdateMaterial updates an existing material
func (ctrl *MaterialController) UpdateMaterial(c *gin.Context) {
	var req dto.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	material, err := ctrl.materialService.UpdateMaterial(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   material,
	})
}

// DeleteMaterial removes a material
func (ctrl *MaterialController) DeleteMaterial(c *gin.Context) {
	if err := ctrl.materialService.DeleteMaterial(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Material deleted successfully",
	})
}
