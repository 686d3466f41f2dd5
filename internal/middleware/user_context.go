package middleware

import (
	"complypilot/internal/models"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the user placed on the context by RequireAuth.
func CurrentUser(c *gin.Context) (models.User, bool) {
	val, ok := c.Get(userContextKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}
