package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// To enable testing without touching the real user config directory, this
// is a variable so a test can override it.
var defaultDirectory = DefaultDirectory

// SetTestDirectory overrides the default directory resolution for tests.
func SetTestDirectory(dir string) {
	defaultDirectory = func() (string, error) { return dir, nil }
}

// ResetDirectory restores the default directory resolution.
func ResetDirectory() {
	defaultDirectory = DefaultDirectory
}

// DefaultDirectory returns the directory that holds the calculator's blob
// and lock file when no explicit path override is configured: a "calc"
// subdirectory of os.UserConfigDir().
func DefaultDirectory() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "calc"), nil
}

// DefaultBlobPath returns the absolute path to the storage blob when no
// explicit path override is configured.
func DefaultBlobPath() (string, error) {
	dir, err := defaultDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.state"), nil
}

// lockPathFor derives a sibling lock file path from a blob path.
func lockPathFor(blobPath string) string {
	return blobPath + ".lock"
}
