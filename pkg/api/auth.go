package api

import (
	"context"
	"net/http"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	var pair TokenPair
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, LoginRequest{Email: email, Password: password}, &pair)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

func (c *Client) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var pair TokenPair
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/refresh", nil, RefreshRequest{RefreshToken: refreshToken}, &pair)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

// Logout revokes the refresh token server side. The local token store
// is cleared by the caller regardless of the outcome.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, RefreshRequest{RefreshToken: refreshToken}, nil)
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/v1/user/me", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) MySubscription(ctx context.Context) (*Subscription, error) {
	var s Subscription
	if err := c.do(ctx, http.MethodGet, "/api/v1/user/subscription", nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
