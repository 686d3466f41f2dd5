package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_ExpiredBoundary(t *testing.T) {
	expiry := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)
	sess := Session{Token: "tok", ExpiresAt: expiry}

	tests := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{"well before expiry", expiry.Add(-24 * time.Hour), false},
		{"exactly at expiry", expiry, false},
		{"just past expiry", expiry.Add(time.Nanosecond), true},
		{"long past expiry", expiry.Add(24 * time.Hour), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, sess.Expired(tt.now))
		})
	}
}

func TestSession_FreshTokenLivesSevenDays(t *testing.T) {
	now := time.Now().UTC()
	sess := Session{Token: "tok", ExpiresAt: now.Add(SessionTTL)}

	assert.False(t, sess.Expired(now))
	assert.False(t, sess.Expired(now.Add(SessionTTL-time.Second)))
	assert.True(t, sess.Expired(now.Add(SessionTTL+time.Second)))
}
