// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for hollow commands.
//
// Configuration is loaded from a single file specified by:
//   - HOLLOW_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. The config file is the
// single source of truth; environment variables never override values.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the master configuration for hollow.
type Config struct {
	// Paths configures directory locations.
	Paths PathsConfig `yaml:"paths"`

	// Mount configures filesystem projection behavior.
	Mount MountConfig `yaml:"mount"`

	// LogLevel sets the minimum log level: debug, info, warn, error.
	// Default: info.
	LogLevel string `yaml:"log_level"`
}

// PathsConfig configures directory locations.
type PathsConfig struct {
	// Root is the base directory for hollow data.
	Root string `yaml:"root"`

	// Store is the object store directory holding snapshot blobs,
	// trees, and commits.
	Store string `yaml:"store"`

	// Overlay is the directory holding materialized file content.
	Overlay string `yaml:"overlay"`
}

// MountConfig configures filesystem projection behavior.
type MountConfig struct {
	// Mountpoint is where the snapshot is projected. Created if it
	// does not exist.
	Mountpoint string `yaml:"mountpoint"`

	// AllowOther permits other users to access the mount. Requires
	// user_allow_other in /etc/fuse.conf.
	AllowOther bool `yaml:"allow_other"`
}

// Default returns the default configuration. These defaults exist so
// all fields have sensible zero-values before the config file is
// merged in, not as a substitute for the file.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultRoot := filepath.Join(homeDir, ".cache", "hollow")

	return &Config{
		Paths: PathsConfig{
			Root:    defaultRoot,
			Store:   filepath.Join(defaultRoot, "store"),
			Overlay: filepath.Join(defaultRoot, "overlay"),
		},
		Mount: MountConfig{
			Mountpoint: filepath.Join(defaultRoot, "mnt"),
		},
		LogLevel: "info",
	}
}

// Load loads configuration from the HOLLOW_CONFIG environment
// variable. Fails if it is not set; there is no search path.
func Load() (*Config, error) {
	configPath := os.Getenv("HOLLOW_CONFIG")
	if configPath == "" {
		return nil, fmt.Errorf("HOLLOW_CONFIG environment variable not set; " +
			"set it to the path of your hollow.yaml config file, or use --config flag")
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merging it
// over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Paths.Store == "" {
		return fmt.Errorf("paths.store is required")
	}
	if c.Paths.Overlay == "" {
		return fmt.Errorf("paths.overlay is required")
	}
	if c.Mount.Mountpoint == "" {
		return fmt.Errorf("mount.mountpoint is required")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel translates the configured log level string.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log_level %q (want debug, info, warn, or error)", c.LogLevel)
	}
}

// EnsurePaths creates the configured directories if they do not exist.
func (c *Config) EnsurePaths() error {
	for _, dir := range []string{c.Paths.Root, c.Paths.Store, c.Paths.Overlay} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return nil
}
