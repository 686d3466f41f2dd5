package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"complypilot/internal/apperr"
	"complypilot/internal/middleware"
	"complypilot/internal/models"

	"github.com/gin-gonic/gin"
)

type registerGenerateRequest struct {
	BusinessType string  `json:"business_type" binding:"required"`
	Industry     *string `json:"industry"`
}

// GenerateRegister instantiates a register from the business-type template,
// replacing any existing one for the subject.
func GenerateRegister(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req registerGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: business_type is required", apperr.ErrInvalidInput))
		return
	}

	register, err := riskManager.Generate(user.UserID, req.BusinessType, req.Industry)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, register)
}

// GetRegister returns the current register, or null when none exists.
func GetRegister(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	register, err := riskManager.Get(user.UserID)
	if errors.Is(err, apperr.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, register)
}

type riskUpdateRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

func UpdateRisk(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req riskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: status is required", apperr.ErrInvalidInput))
		return
	}

	riskID := c.Param("risk_id")
	updated, err := riskManager.UpdateStatus(user.UserID, riskID, models.RiskStatus(req.Status), req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Risk updated successfully",
		"risk_id": riskID,
		"status":  updated.Status,
	})
}
