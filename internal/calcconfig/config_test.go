package calcconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromPath_MissingFileYieldsDefault(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPath_ParsesStoragePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage_path: /tmp/custom.state\n"), 0644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/custom.state", cfg.StoragePath)
}

func TestLoadFromPath_MalformedYAMLErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage_path: [unterminated\n"), 0644))

	_, err := LoadFromPath(path)
	require.Error(t, err)
}

func TestResolveBlobPath_UsesOverrideWhenSet(t *testing.T) {
	cfg := &Config{StoragePath: "/tmp/override.state"}
	path, err := cfg.ResolveBlobPath()
	require.NoError(t, err)
	require.Equal(t, "/tmp/override.state", path)
}

func TestResolveBlobPath_FallsBackToDefault(t *testing.T) {
	cfg := DefaultConfig()
	path, err := cfg.ResolveBlobPath()
	require.NoError(t, err)
	require.NotEmpty(t, path)
}
