package backend

import (
	"context"
	"net/http"
	"sync"
)

// TokenStore holds the admin bearer token for the process lifetime. A 401
// from the backend clears it.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

func (t *TokenStore) Token() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.token
}

func (t *TokenStore) Set(token string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = token
}

func (t *TokenStore) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = ""
}

type AdminUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}

func (c *Client) Login(ctx context.Context, username, password string) (*AdminUser, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	var resp loginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}

	c.tokens.Set(resp.Token)
	return &resp.User, nil
}

func (c *Client) Logout(ctx context.Context) error {
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	// The local token is dropped regardless of what the backend said.
	c.tokens.Clear()
	return err
}

func (c *Client) Me(ctx context.Context) (*AdminUser, error) {
	var resp struct {
		User AdminUser `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}
