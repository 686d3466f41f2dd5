package handlers

import (
	"errors"
	"net/http"

	"complypilot/internal/apperr"
	"complypilot/internal/dashboard"
	"complypilot/internal/database"
	"complypilot/internal/middleware"
	"complypilot/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetDashboard composes the latest assessment, the current register and the
// recent documents into one summary. Read-only.
func GetDashboard(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var latest *models.Assessment
	var assessment models.Assessment
	err := database.DB.
		Where("user_id = ?", user.UserID).
		Order("created_at desc").
		First(&assessment).Error
	switch {
	case err == nil:
		latest = &assessment
	case !errors.Is(err, gorm.ErrRecordNotFound):
		respondError(c, err)
		return
	}

	register, err := riskManager.Get(user.UserID)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		respondError(c, err)
		return
	}

	docs, err := documentSvc.List(user.UserID, 10)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard.Build(user, latest, register, docs))
}
