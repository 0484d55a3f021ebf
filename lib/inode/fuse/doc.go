// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

// Package fuse projects a snapshot as a FUSE filesystem. Directory
// nodes serve tree objects straight from the backing store; file and
// symlink nodes delegate every operation to inode.FileObject, which
// owns the virtual/materialized state. The package maps between FUSE
// attribute conventions and the inode layer's types and translates
// the inode error taxonomy to errnos.
//
// File identifiers are derived deterministically from the parent tree
// hash and entry name, so a file materialized before a restart is
// found again in overlay storage under the same ID and recovered in
// the materialized state.
package fuse
