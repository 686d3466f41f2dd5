package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"complypilot/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeSessions struct {
	sessions map[string]models.Session
	users    map[string]models.User
}

func (f *fakeSessions) SessionByToken(token string) (*models.Session, error) {
	sess, ok := f.sessions[token]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &sess, nil
}

func (f *fakeSessions) UserByID(userID string) (*models.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &user, nil
}

func authRouter(sessions SessionReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", RequireAuth(sessions), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, user)
	})
	return r
}

func validReader() *fakeSessions {
	return &fakeSessions{
		sessions: map[string]models.Session{
			"tok-live": {
				UserID:    "user_1",
				Token:     "tok-live",
				ExpiresAt: time.Now().UTC().Add(models.SessionTTL),
			},
			"tok-stale": {
				UserID:    "user_1",
				Token:     "tok-stale",
				ExpiresAt: time.Now().UTC().Add(-time.Minute),
			},
		},
		users: map[string]models.User{
			"user_1": {UserID: "user_1", Email: "owner@sme.example", Name: "Owner"},
		},
	}
}

func TestRequireAuth_MissingToken(t *testing.T) {
	r := authRouter(validReader())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "not authenticated")
}

func TestRequireAuth_UnknownToken(t *testing.T) {
	r := authRouter(validReader())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok-forged"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid session")
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	r := authRouter(validReader())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok-stale"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "session expired")
}

func TestRequireAuth_SessionWithoutUser(t *testing.T) {
	reader := validReader()
	reader.users = map[string]models.User{}
	r := authRouter(reader)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok-live"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_CookieCarrier(t *testing.T) {
	r := authRouter(validReader())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok-live"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "owner@sme.example")
}

func TestRequireAuth_BearerCarrier(t *testing.T) {
	r := authRouter(validReader())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer tok-live")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "owner@sme.example")
}

func TestRequireAuth_CookieWinsOverHeader(t *testing.T) {
	r := authRouter(validReader())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok-stale"})
	req.Header.Set("Authorization", "Bearer tok-live")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "session expired")
}
