// Package calcconfig reads the calculator's optional on-disk configuration
// file: where to keep the storage blob.
package calcconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/finkrer/calc/internal/storage"
)

const (
	configDirName  = "calc"
	configFileName = "config.yaml"
)

// Config is the top-level structure for ~/.config/calc/config.yaml.
type Config struct {
	// StoragePath overrides the default blob location. Empty means use
	// storage.DefaultBlobPath().
	StoragePath string `yaml:"storage_path"`
}

// DefaultConfig returns a Config with no overrides: the storage backend
// falls back to storage.DefaultBlobPath().
func DefaultConfig() *Config {
	return &Config{}
}

// Load reads the config file from the user's config directory. If it does
// not exist, DefaultConfig is returned with no error - an absent config
// file is not a failure, matching the fallback-on-absence idiom this
// package is grounded on.
func Load() (*Config, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("calcconfig: resolving user config directory: %w", err)
	}
	return LoadFromPath(filepath.Join(dir, configDirName, configFileName))
}

// LoadFromPath reads and parses the YAML config file at path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("calcconfig: reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("calcconfig: parsing config: %w", err)
	}
	return &cfg, nil
}

// ResolveBlobPath returns the storage blob path this config selects: the
// override if set, otherwise storage.DefaultBlobPath().
func (c *Config) ResolveBlobPath() (string, error) {
	if c.StoragePath != "" {
		return c.StoragePath, nil
	}
	return storage.DefaultBlobPath()
}
