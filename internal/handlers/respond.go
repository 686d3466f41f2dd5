package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"complypilot/internal/apperr"

	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy onto HTTP status codes. Anything
// outside the taxonomy is an internal error and is logged, not exposed.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrAnalysisFailed), errors.Is(err, apperr.ErrUnavailable):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		slog.Error("internal error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
