// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

package inode

import (
	"errors"
	"fmt"
)

// Sentinel errors for caller-visible failure classes. Backing-store
// misses surface as store.ErrNotFound; IO failures wrap the
// originating syscall error so callers can inspect the errno.
var (
	// ErrNotWritable reports a write against a file that is still
	// virtual. The caller must open the file for write (which
	// materializes it) first; writes never materialize implicitly.
	ErrNotWritable = errors.New("file is not open for write")

	// ErrPermissionDenied reports an operation disallowed by policy,
	// such as changing file ownership.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidOperation reports a structurally nonsensical request,
	// such as opening a symlink for write.
	ErrInvalidOperation = errors.New("invalid operation")
)

// InternalError reports an internal-consistency failure: a state the
// code considers unreachable, such as an unknown file kind arriving
// through a path that upstream type checks should have filtered.
// Monitoring should flag these as bugs, not transient conditions, so
// they are a distinct type rather than a wrapped sentinel.
type InternalError struct {
	// Op names the operation that hit the inconsistency.
	Op string

	// Detail describes the impossible state.
	Detail string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal consistency failure in %s: %s", e.Op, e.Detail)
}
