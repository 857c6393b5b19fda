package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-labs/leadline-cli/internal/core/domain"
)

func TestStore_Load_Defaults(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestStore_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	settings := domain.Settings{
		ServerURL:         "http://api.internal:9000",
		RequestsPerSecond: 8,
		Burst:             4,
	}
	require.NoError(t, store.Save(settings))

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	loaded, err := reopened.Load()

	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestStore_Load_PartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\nurl = \"http://other:8000\"\n"), 0600))

	store, err := NewStore(dir)
	require.NoError(t, err)
	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, "http://other:8000", settings.ServerURL)
	assert.Equal(t, domain.DefaultSettings().RequestsPerSecond, settings.RequestsPerSecond,
		"unset fields keep their defaults")
}

func TestStore_Load_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not toml ["), 0600))

	store, err := NewStore(dir)
	require.NoError(t, err)

	_, err = store.Load()
	assert.Error(t, err)
}

func TestStore_Path(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}
