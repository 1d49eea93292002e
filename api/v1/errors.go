package v1

import (
	"errors"
	"net/http"

	"github.com/firetm-simple/models"
	"github.com/gin-gonic/gin"
)

// respondError translates service errors into transport responses. GC auth
// failures keep their single generic message; admin-facing errors carry the
// underlying detail since the caller is trusted.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrMalformedPin):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
	case errors.Is(err, models.ErrInvalidPin):
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": models.ErrInvalidPin.Error()})
	case errors.Is(err, models.ErrImmutableTag):
		c.JSON(http.StatusConflict, gin.H{"status": "error", "message": err.Error()})
	case errors.Is(err, models.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": err.Error()})
	case errors.Is(err, models.ErrConfiguration):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"status": "error", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
	}
}
