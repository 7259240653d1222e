// Package config provides configuration loading for taskman.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"taskman/internal/filesystem"
)

// envPrefix namespaces the environment variables taskman reads.
const envPrefix = "TASKMAN_"

// Config holds everything taskman needs outside the store itself.
type Config struct {
	// DataPath is the file holding the persisted project store.
	DataPath string `koanf:"data_path"`

	// LogPath is the log file. Empty disables logging entirely; the TUI
	// never logs to the terminal it is drawing on.
	LogPath string `koanf:"log_path"`

	// AutosaveInterval is the period of the background sync.
	AutosaveInterval time.Duration `koanf:"autosave_interval"`
}

// Load reads configuration with the following precedence (highest first):
//
//  1. TASKMAN_* environment variables (TASKMAN_DATA_PATH, TASKMAN_LOG_PATH,
//     TASKMAN_AUTOSAVE_INTERVAL)
//  2. YAML config file (default ~/.config/taskman/config.yaml)
//  3. Built-in defaults
//
// A missing config file is not an error; a malformed one is, since the user
// explicitly wrote it.
func Load(fsys filesystem.FileSystem, configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, ".config", "taskman", "config.yaml")
	}

	if fsys.Exists(configPath) {
		content, err := fsys.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// TASKMAN_DATA_PATH -> data_path
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) error {
	if cfg.DataPath == "" || cfg.LogPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		if cfg.DataPath == "" {
			cfg.DataPath = filepath.Join(home, ".local", "share", "taskman", "projects.json")
		}
		if cfg.LogPath == "" {
			cfg.LogPath = filepath.Join(home, ".local", "state", "taskman", "taskman.log")
		}
	}
	if cfg.AutosaveInterval == 0 {
		cfg.AutosaveInterval = 15 * time.Second
	}
	return nil
}

// Validate rejects values the rest of the program cannot work with.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("data_path must not be empty")
	}
	if c.AutosaveInterval < time.Second {
		return fmt.Errorf("autosave_interval %s is below the 1s minimum", c.AutosaveInterval)
	}
	return nil
}
