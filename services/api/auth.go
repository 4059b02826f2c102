package api

import (
	"context"
	"net/http"

	"github.com/viebus/viebus/internal/pkg/models"
)

// Login exchanges credentials for a token pair and user record. Transport
// only: persisting the session is the auth service's responsibility.
func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	err := c.Request(ctx, http.MethodPost, "/auth/login/",
		models.LoginRequest{Username: username, Password: password}, &resp, Public())
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns the same payload as login.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	err := c.Request(ctx, http.MethodPost, "/auth/registration/", req, &resp, Public())
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
