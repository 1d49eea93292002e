package v1

import (
	"net/http"

	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/services"
	"github.com/gin-gonic/gin"
)

var timeLogService = services.NewTimeLogService()

// ListTimeLogs retrieves time logs filtered by project, installer and date
// range
func ListTimeLogs(c *gin.Context) {
	filter := dto.TimeLogFilter{
		ProjectID:   c.Query("projectId"),
		InstallerID: c.Query("installerId"),
		From:        c.Query("from"),
		To:          c.Query("to"),
	}

	timeLogs, err := timeLogService.ListTimeLogs(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   timeLogs,
	})
}

// GetTimeLog retrieves a time log by ID
func GetTimeLog(c *gin.Context) {
	timeLog, err := timeLogService.GetTimeLog(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   timeLog,
	})
}

// CreateTimeLog logs hours for an installer on a project
func CreateTimeLog(c *gin.Context) {
	var req dto.CreateTimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	timeLog, err := timeLogService.CreateTimeLog(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   timeLog,
	})
}

// UpdateTimeLog updates an existing time log
func UpdateTimeLog(c *gin.Context) {
	var req dto.UpdateTimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	timeLog, err := timeLogService.UpdateTimeLog(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   timeLog,
	})
}

// DeleteTimeLog removes a time log
func DeleteTimeLog(c *gin.Context) {
	if err := timeLogService.DeleteTimeLog(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Time log deleted successfully",
	})
}
