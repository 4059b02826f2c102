// Package storage persists the client-local session state: the access and
// refresh tokens plus the serialized user record. This is the only mutable
// state shared across components; it is written exclusively by login, logout
// and token refresh.
package storage

import "github.com/viebus/viebus/internal/pkg/models"

// Store is the persisted session state. Implementations must be safe for
// concurrent use: tokens are read at the start of every API call while a
// refresh may be rotating them.
type Store interface {
	// AccessToken returns the stored access token, or "" when absent.
	AccessToken() string
	// RefreshToken returns the stored refresh token, or "" when absent.
	RefreshToken() string
	// User returns the cached user record, or nil when absent or corrupt.
	User() *models.User
	// SetTokens rotates the token pair. An empty refresh keeps the current one.
	SetTokens(access, refresh string) error
	// SetSession atomically replaces tokens and user record together.
	SetSession(access, refresh string, user *models.User) error
	// Clear purges tokens and user record. Idempotent.
	Clear() error
}

// state is the serialized document shared by implementations.
type state struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *models.User `json:"user,omitempty"`
}
