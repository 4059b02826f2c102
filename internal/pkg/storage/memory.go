package storage

import (
	"sync"

	"github.com/viebus/viebus/internal/pkg/models"
)

// MemStore is an in-memory Store used by tests and ephemeral sessions.
type MemStore struct {
	mu sync.RWMutex
	st state
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// AccessToken returns the stored access token
func (m *MemStore) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.st.AccessToken
}

// RefreshToken returns the stored refresh token
func (m *MemStore) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.st.RefreshToken
}

// User returns the cached user record
func (m *MemStore) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.st.User == nil {
		return nil
	}
	u := *m.st.User
	return &u
}

// SetTokens rotates the token pair
func (m *MemStore) SetTokens(access, refresh string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st.AccessToken = access
	if refresh != "" {
		m.st.RefreshToken = refresh
	}
	return nil
}

// SetSession atomically replaces tokens and user record together
func (m *MemStore) SetSession(access, refresh string, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st = state{AccessToken: access, RefreshToken: refresh, User: user}
	return nil
}

// Clear purges tokens and user record
func (m *MemStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st = state{}
	return nil
}
