package v1

import (
	"net/http"

	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/models"
	"github.com/firetm-simple/services"
	"github.com/gin-gonic/gin"
)

// TMTagController handles T&M tag API endpoints
type TMTagController struct {
	tmTagService *services.TMTagService
}

// NewTMTagController creates a new T&M tag controller
func NewTMTagController() *TMTagController {
	return &TMTagController{
		tmTagService: services.NewTMTagService(),
	}
}

// RegisterRoutes registers T&M tag routes
func (ctrl *TMTagController) RegisterRoutes(router *gin.RouterGroup) {
	tags := router.Group("/tm-tags")
	{
		tags.GET("/:id", ctrl.GetTag)
		tags.POST("", ctrl.CreateTag)
		tags.PUT("/:id", ctrl.UpdateTag)
		tags.POST("/:id/status", ctrl.UpdateTagStatus)
		tags.DELETE("/:id", ctrl.DeleteTag)
	}

	projects := router.Group("/projects")
	{
		projects.GET("/:id/tm-tags", ctrl.ListProjectTags)
	}
}

// ListProjectTags retrieves all tags of a project, newest first
func (ctrl *TMTagController) ListProjectTags(c *gin.Context) {
	tags, err := ctrl.tmTagService.ListTags(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   tags,
	})
}

// GetTag retrieves a tag by ID
func (ctrl *TMTagController) GetTag(c *gin.Context) {
	tag, err := ctrl.tmTagService.GetTag(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   tag,
	})
}

// CreateTag builds and prices a tag for a billing period
func (ctrl *TMTagController) CreateTag(c *gin.Context) {
	var req dto.CreateTMTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	tag, err := ctrl.tmTagService.CreateTag(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   tag,
	})
}

// UpdateTag edits a draft or submitted tag and reprices it
func (ctrl *TMTagController) UpdateTag(c *gin.Context) {
	var req dto.UpdateTMTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	tag, err := ctrl.tmTagService.UpdateTag(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   tag,
	})
}

// UpdateTagStatus moves a tag through its workflow
func (ctrl *TMTagController) UpdateTagStatus(c *gin.Context) {
	var req dto.UpdateTagStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	tag, err := ctrl.tmTagService.UpdateTagStatus(c.Param("id"), models.TagStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   tag,
	})
}

// DeleteTag removes a tag; accepted tags cannot be deleted
func (ctrl *TMTagController) DeleteTag(c *gin.Context) {
	if err := ctrl.tmTagService.DeleteTag(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tag deleted successfully",
	})
}
