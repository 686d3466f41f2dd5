package middleware

import (
	"net/http"
	"strings"
	"time"

	"complypilot/internal/models"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the opaque session token; an Authorization bearer
// header is accepted as an alternative carrier.
const SessionCookie = "session_token"

const userContextKey = "CurrentUser"

// SessionReader resolves an opaque token to its session row and a session
// to its user.
type SessionReader interface {
	SessionByToken(token string) (*models.Session, error)
	UserByID(userID string) (*models.User, error)
}

func sessionToken(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// RequireAuth resolves the session token to a user and stores it on the
// request context. Missing, unknown or expired tokens fail with 401.
func RequireAuth(sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		sess, err := sessions.SessionByToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}
		if sess.Expired(time.Now().UTC()) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}

		user, err := sessions.UserByID(sess.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		c.Set(userContextKey, *user)
		c.Next()
	}
}
