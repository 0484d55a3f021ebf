// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

package fuse

import (
	"errors"
	"log/slog"
	"os"
	"syscall"

	"github.com/hollowfs/hollow/lib/inode"
	"github.com/hollowfs/hollow/lib/store"
)

// errnoFor translates inode-layer errors to FUSE errnos. Internal
// consistency failures are logged at Error level before collapsing to
// EIO so monitoring can tell a bug from a transient IO problem.
func errnoFor(logger *slog.Logger, operation string, err error) syscall.Errno {
	if err == nil {
		return 0
	}

	var internal *inode.InternalError
	if errors.As(err, &internal) {
		logger.Error("internal consistency failure", "op", operation, "error", err)
		return syscall.EIO
	}

	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, os.ErrNotExist):
		return syscall.ENOENT
	case errors.Is(err, inode.ErrNotWritable):
		return syscall.EINVAL
	case errors.Is(err, inode.ErrPermissionDenied):
		return syscall.EACCES
	case errors.Is(err, inode.ErrInvalidOperation):
		return syscall.EINVAL
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}

	logger.Error("filesystem operation failed", "op", operation, "error", err)
	return syscall.EIO
}
