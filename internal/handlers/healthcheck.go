package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"complypilot/internal/apperr"
	"complypilot/internal/compliance"
	"complypilot/internal/database"
	"complypilot/internal/middleware"
	"complypilot/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetQuestions(c *gin.Context) {
	catalog := compliance.Catalog()
	c.JSON(http.StatusOK, gin.H{
		"questions":       catalog,
		"total_questions": len(catalog),
		"categories":      compliance.CountByCategory(),
	})
}

// An empty response list is a valid submission and scores zero.
type healthCheckSubmitRequest struct {
	Responses []compliance.Answer `json:"responses"`
}

// SubmitHealthCheck scores the submitted answers and persists a new
// assessment. History is append-only; prior assessments are never touched.
func SubmitHealthCheck(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req healthCheckSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err))
		return
	}

	result := compliance.Score(compliance.Catalog(), req.Responses)
	gaps := result.Gaps
	if gaps == nil {
		gaps = []compliance.Gap{}
	}

	assessment := models.Assessment{
		ID:                   uuid.NewString(),
		UserID:               user.UserID,
		Responses:            req.Responses,
		ComplianceScore:      result.ComplianceScore,
		GDPRScore:            result.GDPRScore,
		CyberEssentialsScore: result.CyberEssentialsScore,
		RiskLevel:            result.RiskLevel,
		Gaps:                 gaps,
		TotalGaps:            len(gaps),
		CreatedAt:            time.Now().UTC(),
	}

	if err := database.DB.Create(&assessment).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

func GetHealthCheckHistory(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var assessments []models.Assessment
	if err := database.DB.
		Where("user_id = ?", user.UserID).
		Order("created_at desc").
		Limit(100).
		Find(&assessments).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"health_checks": assessments})
}

// GetLatestHealthCheck returns the most recent assessment, or null when the
// subject has never submitted one.
func GetLatestHealthCheck(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var assessment models.Assessment
	err := database.DB.
		Where("user_id = ?", user.UserID).
		Order("created_at desc").
		First(&assessment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}
