// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/hollowfs/hollow/lib/clock"
	"github.com/hollowfs/hollow/lib/inode/fuse"
	"github.com/hollowfs/hollow/lib/object"
	"github.com/hollowfs/hollow/lib/overlay"
	"github.com/hollowfs/hollow/lib/store"
)

func runMount(args []string) error {
	flagSet := pflag.NewFlagSet("mount", pflag.ContinueOnError)
	var configPath, mountpoint string
	var allowOther bool
	addConfigFlag(flagSet, &configPath)
	flagSet.StringVar(&mountpoint, "mountpoint", "", "override the configured mountpoint")
	flagSet.BoolVar(&allowOther, "allow-other", false, "allow other users to access the mount")
	flagSet.Usage = func() {
		fmt.Println("usage: hollow mount [flags] <commit-hash>")
		flagSet.PrintDefaults()
	}
	if helpShown, err := parseFlags(flagSet, args); helpShown || err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return fmt.Errorf("exactly one commit hash argument required")
	}

	commit, err := object.ParseHash(flagSet.Arg(0))
	if err != nil {
		return fmt.Errorf("parsing commit hash: %w", err)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	if mountpoint == "" {
		mountpoint = cfg.Mount.Mountpoint
	}
	if !allowOther {
		allowOther = cfg.Mount.AllowOther
	}

	objectStore, err := store.NewStore(cfg.Paths.Store)
	if err != nil {
		return err
	}
	overlayStorage, err := overlay.NewStorage(cfg.Paths.Overlay, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server, err := fuse.Mount(fuse.Options{
		Mountpoint: mountpoint,
		Source:     objectStore,
		Overlay:    overlayStorage,
		Commit:     commit,
		Clock:      clock.Real(),
		AllowOther: allowOther,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	<-ctx.Done()
	logger.Info("shutting down")
	if err := server.Unmount(); err != nil {
		return fmt.Errorf("unmounting %s: %w", mountpoint, err)
	}
	server.Wait()
	return nil
}
