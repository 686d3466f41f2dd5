package server

import (
	"net/http"

	"complypilot/internal/database"
	"complypilot/internal/handlers"
	"complypilot/internal/middleware"

	"github.com/gin-gonic/gin"
)

// cors mirrors the permissive credentialed policy of the hosted frontend:
// echo the caller's origin, allow any method and header.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Session-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func NewRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors())

	api := r.Group("/api")

	api.GET("/", handlers.Root)
	api.GET("/health", handlers.Health)

	// AUTH
	api.POST("/auth/session", handlers.CreateSession)
	api.POST("/auth/logout", handlers.Logout)

	// static plan catalog needs no session
	api.GET("/subscription/plans", handlers.GetSubscriptionPlans)

	auth := api.Group("/")
	auth.Use(middleware.RequireAuth(database.NewSessionStore()))

	auth.GET("/auth/me", handlers.Me)

	// PROFILE
	auth.GET("/users/profile", handlers.GetProfile)
	auth.PUT("/users/profile", handlers.UpdateProfile)

	// COMPLIANCE HEALTH CHECK
	auth.GET("/health-check/questions", handlers.GetQuestions)
	auth.POST("/health-check/submit", handlers.SubmitHealthCheck)
	auth.GET("/health-check/history", handlers.GetHealthCheckHistory)
	auth.GET("/health-check/latest", handlers.GetLatestHealthCheck)

	// DOCUMENTS
	auth.POST("/documents/upload", handlers.UploadDocument)
	auth.GET("/documents", handlers.ListDocuments)
	auth.GET("/documents/:id", handlers.GetDocument)
	auth.POST("/documents/:id/analyze", handlers.AnalyzeDocument)
	auth.DELETE("/documents/:id", handlers.DeleteDocument)

	// RISK REGISTER
	auth.POST("/risk-register/generate", handlers.GenerateRegister)
	auth.GET("/risk-register", handlers.GetRegister)
	auth.PUT("/risk-register/:risk_id", handlers.UpdateRisk)

	// DASHBOARD
	auth.GET("/dashboard", handlers.GetDashboard)

	// SUBSCRIPTION
	auth.GET("/subscription", handlers.GetSubscription)

	return r
}
