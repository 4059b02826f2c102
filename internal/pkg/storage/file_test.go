package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viebus/viebus/internal/pkg/models"
)

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	fs, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, fs.SetSession("access", "refresh", &models.User{ID: 7, Username: "alice"}))

	// A new store over the same dir sees the persisted session.
	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "access", reopened.AccessToken())
	assert.Equal(t, "refresh", reopened.RefreshToken())
	require.NotNil(t, reopened.User())
	assert.Equal(t, "alice", reopened.User().Username)
}

func TestFileStoreStartsLoggedOut(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, fs.AccessToken())
	assert.Empty(t, fs.RefreshToken())
	assert.Nil(t, fs.User())
}

func TestFileStoreCorruptFileMeansLoggedOut(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, sessionFile), []byte(`{"access_token": tru`), 0600))

	fs, err := NewFileStore(dir)
	require.NoError(t, err, "corrupt state is not a startup error")
	assert.Empty(t, fs.AccessToken())
	assert.Nil(t, fs.User())
}

func TestSetTokensKeepsRefreshWhenEmpty(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.SetTokens("access-1", "refresh-1"))
	require.NoError(t, fs.SetTokens("access-2", ""))

	assert.Equal(t, "access-2", fs.AccessToken())
	assert.Equal(t, "refresh-1", fs.RefreshToken())
}

func TestClearIsIdempotentAndPersisted(t *testing.T) {
	dir := t.TempDir()

	fs, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, fs.SetSession("access", "refresh", &models.User{ID: 7}))

	require.NoError(t, fs.Clear())
	require.NoError(t, fs.Clear())

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	assert.Empty(t, reopened.AccessToken())
	assert.Nil(t, reopened.User())
}

func TestPersistLeavesNoTempFileBehind(t *testing.T) {
	dir := t.TempDir()

	fs, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, fs.SetSession("access", "refresh", &models.User{ID: 7}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, sessionFile, entries[0].Name())
}
