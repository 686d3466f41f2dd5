package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"complypilot/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchange_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sess-123", r.Header.Get("X-Session-ID"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"email":"owner@sme.example","name":"Owner","picture":null,"session_token":"tok-abc"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	data, err := c.Exchange(context.Background(), "sess-123")
	require.NoError(t, err)

	assert.Equal(t, "owner@sme.example", data.Email)
	assert.Equal(t, "Owner", data.Name)
	assert.Nil(t, data.Picture)
	assert.Equal(t, "tok-abc", data.SessionToken)
}

func TestExchange_RejectedSessionID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Exchange(context.Background(), "bad")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestExchange_ProviderUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL)
	_, err := c.Exchange(context.Background(), "sess-123")
	assert.ErrorIs(t, err, apperr.ErrUnavailable)
}

func TestExchange_MalformedReply(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "oops"},
		{"missing email", `{"name":"Owner"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL)
			_, err := c.Exchange(context.Background(), "sess-123")
			assert.ErrorIs(t, err, apperr.ErrUnavailable)
		})
	}
}
