package models

import "time"

// Session holds an opaque bearer token with a fixed 7-day TTL. Expiry is
// checked on every lookup; expired rows are treated as unauthenticated.
type Session struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"size:64;index;not null" json:"user_id"`
	Token     string    `gorm:"uniqueIndex;size:128;not null" json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

const SessionTTL = 7 * 24 * time.Hour

func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
