// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/hollowfs/hollow/lib/config"
)

// parseFlags parses args. The first return is true when a help flag
// was given: pflag already printed the usage and the command should
// exit successfully without running.
func parseFlags(flagSet *pflag.FlagSet, args []string) (bool, error) {
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// addConfigFlag registers the shared --config flag. An empty value
// falls back to the HOLLOW_CONFIG environment variable.
func addConfigFlag(flagSet *pflag.FlagSet, configPath *string) {
	flagSet.StringVar(configPath, "config", "", "path to hollow.yaml (default: $HOLLOW_CONFIG)")
}

// loadConfig loads configuration from the --config flag value or the
// environment, then makes sure the data directories exist.
func loadConfig(configPath string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.EnsurePaths(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the process logger at the configured level.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger, nil
}
