package handlers

import (
	"fmt"
	"net/http"

	"complypilot/internal/apperr"
	"complypilot/internal/database"
	"complypilot/internal/middleware"
	"complypilot/internal/models"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, user)
}

type profileUpdateRequest struct {
	CompanyName   *string `json:"company_name"`
	BusinessType  *string `json:"business_type"`
	EmployeeCount *int    `json:"employee_count"`
	Industry      *string `json:"industry"`
}

// UpdateProfile applies a partial update; unset fields stay untouched.
func UpdateProfile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err))
		return
	}

	updates := map[string]interface{}{}
	if req.CompanyName != nil {
		updates["company_name"] = *req.CompanyName
	}
	if req.BusinessType != nil {
		updates["business_type"] = *req.BusinessType
	}
	if req.EmployeeCount != nil {
		updates["employee_count"] = *req.EmployeeCount
	}
	if req.Industry != nil {
		updates["industry"] = *req.Industry
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&models.User{}).
			Where("user_id = ?", user.UserID).
			Updates(updates).Error; err != nil {
			respondError(c, err)
			return
		}
	}

	var updated models.User
	if err := database.DB.Where("user_id = ?", user.UserID).First(&updated).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
