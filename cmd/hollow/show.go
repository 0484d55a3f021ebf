// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"path"

	"github.com/spf13/pflag"

	"github.com/hollowfs/hollow/lib/object"
	"github.com/hollowfs/hollow/lib/store"
)

func runShow(args []string) error {
	flagSet := pflag.NewFlagSet("show", pflag.ContinueOnError)
	var configPath string
	addConfigFlag(flagSet, &configPath)
	flagSet.Usage = func() {
		fmt.Println("usage: hollow show [flags] <commit-hash>")
		flagSet.PrintDefaults()
	}
	if helpShown, err := parseFlags(flagSet, args); helpShown || err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return fmt.Errorf("exactly one commit hash argument required")
	}

	commitHash, err := object.ParseHash(flagSet.Arg(0))
	if err != nil {
		return fmt.Errorf("parsing commit hash: %w", err)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	objectStore, err := store.NewStore(cfg.Paths.Store)
	if err != nil {
		return err
	}

	commit, err := objectStore.GetCommit(commitHash)
	if err != nil {
		return fmt.Errorf("loading commit: %w", err)
	}

	fmt.Printf("commit %s\n", commitHash)
	for _, parent := range commit.Parents {
		fmt.Printf("parent %s\n", parent)
	}
	if commit.Message != "" {
		fmt.Printf("\n    %s\n", commit.Message)
	}
	fmt.Println()

	return listTree(objectStore, commit.Tree, "")
}

// listTree prints a tree's entries depth-first with full paths, one
// per line in "hash kind path" form.
func listTree(objectStore *store.Store, hash object.Hash, prefix string) error {
	tree, err := objectStore.GetTree(hash)
	if err != nil {
		return fmt.Errorf("loading tree %s: %w", hash, err)
	}
	for _, entry := range tree.Entries {
		entryPath := path.Join(prefix, entry.Name)
		fmt.Printf("%s %-7s %s\n", entry.Hash, entry.Kind, entryPath)
		if entry.Kind == object.KindTree {
			if err := listTree(objectStore, entry.Hash, entryPath); err != nil {
				return err
			}
		}
	}
	return nil
}
