// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/hollowfs/hollow/lib/object"
	"github.com/hollowfs/hollow/lib/store"
)

func runImport(args []string) error {
	flagSet := pflag.NewFlagSet("import", pflag.ContinueOnError)
	var configPath, message string
	addConfigFlag(flagSet, &configPath)
	flagSet.StringVarP(&message, "message", "m", "", "commit message")
	flagSet.Usage = func() {
		fmt.Println("usage: hollow import [flags] <directory>")
		flagSet.PrintDefaults()
	}
	if helpShown, err := parseFlags(flagSet, args); helpShown || err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return fmt.Errorf("exactly one directory argument required")
	}
	directory := flagSet.Arg(0)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	objectStore, err := store.NewStore(cfg.Paths.Store)
	if err != nil {
		return err
	}

	treeHash, err := objectStore.ImportDirectory(directory)
	if err != nil {
		return fmt.Errorf("importing %s: %w", directory, err)
	}

	commitHash, err := objectStore.PutCommit(&object.Commit{
		Tree:    treeHash,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("writing commit: %w", err)
	}

	logger.Info("snapshot imported", "directory", directory, "tree", treeHash)
	fmt.Println(commitHash)
	return nil
}
