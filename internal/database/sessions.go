package database

import (
	"complypilot/internal/models"
)

// SessionStore is the gorm-backed session lookup, implementing
// middleware.SessionReader.
type SessionStore struct{}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (SessionStore) SessionByToken(token string) (*models.Session, error) {
	var sess models.Session
	if err := DB.Where("token = ?", token).First(&sess).Error; err != nil {
		return nil, err
	}
	return &sess, nil
}

func (SessionStore) UserByID(userID string) (*models.User, error) {
	var user models.User
	if err := DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
