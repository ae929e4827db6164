// Package config persists the CLI's default flag values across
// invocations (output mode, strict policy, macro file path, as saved by
// `gotex config set`),
// grounded on the teacher's internal/config.Load/Save pattern
// (os.UserHomeDir, os.MkdirAll 0700, encoding/json). It has nothing to do
// with gotex.Settings, the in-process per-Render record — this is purely
// "what should `gotex render` default to when a flag is omitted."
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the CLI's persisted default flags.
type Config struct {
	Output string `json:"output"` // "html", "mathml", "both"
	Strict string `json:"strict"` // "error", "warn", "ignore"
	Macros string `json:"macros"` // path to a user macro file, "" if unset
}

const (
	configDirName  = ".gotex"
	configFileName = "config.json"
)

// GetConfigDir returns the path to gotex's config directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	return configDir, nil
}

// Load loads the configuration from disk, returning defaults if the file
// doesn't exist yet.
func Load() (*Config, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(configDir, configFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{Output: "html", Strict: "error"}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, configFileName)

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
