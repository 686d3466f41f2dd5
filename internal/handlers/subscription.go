package handlers

import (
	"errors"
	"net/http"

	"complypilot/internal/database"
	"complypilot/internal/middleware"
	"complypilot/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetSubscription returns the subject's plan, defaulting to the free tier
// when no subscription row exists.
func GetSubscription(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var sub models.Subscription
	err := database.DB.Where("user_id = ?", user.UserID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{
			"plan_type": "free",
			"status":    "active",
			"features": gin.H{
				"health_checks_per_month":     1,
				"document_analyses_per_month": 3,
				"risk_register":               true,
				"priority_support":            false,
				"export_reports":              false,
			},
		})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// GetSubscriptionPlans lists the static plan catalog. -1 means unlimited.
func GetSubscriptionPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"plans": []gin.H{
			{
				"id":       "free",
				"name":     "Free",
				"price":    0,
				"currency": "GBP",
				"interval": "month",
				"features": gin.H{
					"health_checks_per_month":     1,
					"document_analyses_per_month": 3,
					"risk_register":               true,
					"priority_support":            false,
					"export_reports":              false,
				},
				"description": "Perfect for getting started with compliance",
			},
			{
				"id":       "starter",
				"name":     "Starter",
				"price":    29,
				"currency": "GBP",
				"interval": "month",
				"features": gin.H{
					"health_checks_per_month":     5,
					"document_analyses_per_month": 15,
					"risk_register":               true,
					"priority_support":            false,
					"export_reports":              true,
				},
				"description": "For small businesses starting their compliance journey",
			},
			{
				"id":       "professional",
				"name":     "Professional",
				"price":    79,
				"currency": "GBP",
				"interval": "month",
				"features": gin.H{
					"health_checks_per_month":     -1,
					"document_analyses_per_month": 50,
					"risk_register":               true,
					"priority_support":            true,
					"export_reports":              true,
				},
				"description": "For growing businesses with serious compliance needs",
			},
			{
				"id":       "enterprise",
				"name":     "Enterprise",
				"price":    199,
				"currency": "GBP",
				"interval": "month",
				"features": gin.H{
					"health_checks_per_month":     -1,
					"document_analyses_per_month": -1,
					"risk_register":               true,
					"priority_support":            true,
					"export_reports":              true,
					"dedicated_support":           true,
					"custom_integrations":         true,
				},
				"description": "For organisations requiring full compliance support",
			},
		},
	})
}
