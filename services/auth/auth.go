package auth

import (
	"context"

	"github.com/viebus/viebus/internal/pkg/models"
)

// AuthGW is the slice of the API client the session store depends on.
type AuthGW interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error)
}
