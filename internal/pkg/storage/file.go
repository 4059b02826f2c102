package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/viebus/viebus/internal/pkg/logger"
	"github.com/viebus/viebus/internal/pkg/models"
)

const sessionFile = "session.json"

// FileStore persists the session state as a single JSON document on disk.
// The whole document is rewritten on every mutation via a temp file and
// rename, so readers never observe a half-written session.
type FileStore struct {
	mu   sync.RWMutex
	path string
	st   state
}

// NewFileStore loads the persisted session from dir, creating dir when
// missing. A corrupt or partial session file is treated as logged out rather
// than an error.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}

	fs := &FileStore{path: filepath.Join(dir, sessionFile)}

	data, err := os.ReadFile(fs.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read session file, starting logged out",
				logger.String("path", fs.path), logger.Err(err))
		}
		return fs, nil
	}

	if err := json.Unmarshal(data, &fs.st); err != nil {
		logger.Warn("corrupt session file, starting logged out",
			logger.String("path", fs.path), logger.Err(err))
		fs.st = state{}
	}
	return fs, nil
}

// AccessToken returns the stored access token
func (f *FileStore) AccessToken() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.st.AccessToken
}

// RefreshToken returns the stored refresh token
func (f *FileStore) RefreshToken() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.st.RefreshToken
}

// User returns the cached user record
func (f *FileStore) User() *models.User {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.st.User == nil {
		return nil
	}
	u := *f.st.User
	return &u
}

// SetTokens rotates the token pair
func (f *FileStore) SetTokens(access, refresh string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.st.AccessToken = access
	if refresh != "" {
		f.st.RefreshToken = refresh
	}
	return f.persistLocked()
}

// SetSession atomically replaces tokens and user record together
func (f *FileStore) SetSession(access, refresh string, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev := f.st
	f.st = state{AccessToken: access, RefreshToken: refresh, User: user}
	if err := f.persistLocked(); err != nil {
		f.st = prev
		return err
	}
	return nil
}

// Clear purges tokens and user record
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.st = state{}
	return f.persistLocked()
}

func (f *FileStore) persistLocked() error {
	data, err := json.Marshal(f.st)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}
