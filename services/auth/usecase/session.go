// Package usecase implements the process-wide authentication session: the
// cached user record and token pair, initialized from persisted state at
// startup and torn down by logout.
package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/viebus/viebus/internal/pkg/constants"
	"github.com/viebus/viebus/internal/pkg/events"
	"github.com/viebus/viebus/internal/pkg/logger"
	"github.com/viebus/viebus/internal/pkg/models"
	"github.com/viebus/viebus/internal/pkg/storage"
	"github.com/viebus/viebus/services/auth"
)

// Validation errors reported before any network call is made.
var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// Session owns the authentication state. All consumers receive it by
// injection; nothing else writes the session store besides token refresh
// inside the API client.
type Session struct {
	gw    auth.AuthGW
	store storage.Store
	bus   *events.Bus
}

// NewSession creates the session over the persisted store. Reading the
// store never fails: corrupt persisted state means logged out.
func NewSession(gw auth.AuthGW, store storage.Store, bus *events.Bus) *Session {
	return &Session{gw: gw, store: store, bus: bus}
}

// Login authenticates and persists tokens plus user record atomically.
// A failed login leaves prior state untouched. On success a "user logged
// in" event is published for the notification subsystem.
func (s *Session) Login(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	resp, err := s.gw.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	return s.establish(resp)
}

// Register creates an account and establishes the session the same way
// login does. The password confirmation is checked before any network call.
func (s *Session) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password1 == "" {
		return nil, ErrMissingCredentials
	}
	if req.Password1 != req.Password2 {
		return nil, ErrPasswordMismatch
	}

	resp, err := s.gw.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.establish(resp)
}

func (s *Session) establish(resp *models.LoginResponse) (*models.User, error) {
	user := resp.User
	if err := s.store.SetSession(resp.Access, resp.Refresh, &user); err != nil {
		return nil, err
	}

	logger.Info("user logged in", logger.String("username", user.Username))
	s.bus.Publish(constants.TopicUserLoggedIn, models.UserLoggedInEvent{Username: user.Username})

	return &user, nil
}

// Logout purges tokens and the cached user record. Safe to call when
// already logged out.
func (s *Session) Logout() error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	logger.Info("user logged out")
	s.bus.Publish(constants.TopicUserLoggedOut, nil)
	return nil
}

// IsAuthenticated is true iff a user record is cached and an access token
// is present. The token is not validated here; validation happens lazily on
// the next API call.
func (s *Session) IsAuthenticated() bool {
	return s.store.User() != nil && s.store.AccessToken() != ""
}

// CurrentUser returns the cached user record, or nil when logged out.
func (s *Session) CurrentUser() *models.User {
	return s.store.User()
}
