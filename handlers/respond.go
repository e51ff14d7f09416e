// File: handlers/respond.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookerly/database/repository"
	"bookerly/models"
	"bookerly/services/availability"
)

// respondError maps the service error taxonomy onto HTTP responses. Policy
// rejections and slot conflicts are expected outcomes and answer 409 with the
// human-readable reason; format errors answer 400, missing documents 404.
func respondError(c *gin.Context, err error) {
	var policy *availability.PolicyError
	switch {
	case errors.As(err, &policy):
		c.JSON(http.StatusConflict, gin.H{"valid": false, "error": policy.Reason})
	case errors.Is(err, models.ErrInvalidFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		zap.L().Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
