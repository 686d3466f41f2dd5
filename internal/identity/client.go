package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"complypilot/internal/apperr"
)

// SessionData is what the identity exchange returns for a valid session id.
type SessionData struct {
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Picture      *string `json:"picture"`
	SessionToken string  `json:"session_token"`
}

// Client exchanges an opaque session id for the signed-in user's identity.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Exchange resolves a session id with the identity provider. An unreachable
// provider is Unavailable; a rejected session id is Unauthenticated.
func (c *Client) Exchange(ctx context.Context, sessionID string) (*SessionData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building identity request: %v", apperr.ErrUnavailable, err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: identity service unreachable: %v", apperr.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: invalid session id", apperr.ErrUnauthenticated)
	}

	var data SessionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: decoding identity response: %v", apperr.ErrUnavailable, err)
	}
	if data.Email == "" {
		return nil, fmt.Errorf("%w: identity response missing email", apperr.ErrUnavailable)
	}
	return &data, nil
}
