package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"complypilot/internal/apperr"
	"complypilot/internal/database"
	"complypilot/internal/middleware"
	"complypilot/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type sessionCreateRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// CreateSession exchanges an identity-provider session id for a bearer
// token. First sight of an email creates the user; later sign-ins refresh
// the display fields. Any prior sessions for the user are invalidated.
func CreateSession(c *gin.Context) {
	var req sessionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: session_id is required", apperr.ErrInvalidInput))
		return
	}

	data, err := identityClient.Exchange(c.Request.Context(), req.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now().UTC()

	var user models.User
	err = database.DB.Where("email = ?", data.Email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			UserID:    newUserID(),
			Email:     data.Email,
			Name:      data.Name,
			Picture:   data.Picture,
			CreatedAt: now,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			respondError(c, err)
			return
		}
	case err != nil:
		respondError(c, err)
		return
	default:
		updates := map[string]interface{}{"name": data.Name, "picture": data.Picture}
		if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
			respondError(c, err)
			return
		}
		user.Name = data.Name
		user.Picture = data.Picture
	}

	token := data.SessionToken
	if token == "" {
		token = "session_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	}

	if err := database.DB.Where("user_id = ?", user.UserID).Delete(&models.Session{}).Error; err != nil {
		respondError(c, err)
		return
	}
	sess := models.Session{
		UserID:    user.UserID,
		Token:     token,
		ExpiresAt: now.Add(models.SessionTTL),
		CreatedAt: now,
	}
	if err := database.DB.Create(&sess).Error; err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookie, token, int(models.SessionTTL.Seconds()), "/", "", cfg.CookieSecure, true)

	c.JSON(http.StatusOK, gin.H{"message": "Session created", "user": user})
}

// Me returns the authenticated user.
func Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperr.ErrUnauthenticated)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout deletes the session row behind the cookie, if any, and clears the
// cookie.
func Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		if err := database.DB.Where("token = ?", token).Delete(&models.Session{}).Error; err != nil {
			respondError(c, err)
			return
		}
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", cfg.CookieSecure, true)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func newUserID() string {
	return "user_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
