// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

// Package store provides hash-addressed access to immutable snapshot
// objects. The core filesystem logic depends only on the Source
// contract ("given a hash, return bytes, or fail not-found"); Store
// is the on-disk implementation and MemorySource the in-memory one
// used by tests.
package store

import (
	"errors"

	"github.com/hollowfs/hollow/lib/object"
)

// ErrNotFound reports that no object exists for the requested hash.
// Callers decide whether to retry; the store never retries.
var ErrNotFound = errors.New("object not found")

// Source is the read-only, hash-addressed accessor the filesystem
// core consumes. Implementations may fetch from local disk or a
// remote service; the core treats GetBlob as a blocking call.
type Source interface {
	// GetBlob returns the byte content of the blob with the given
	// hash, or an error wrapping ErrNotFound if the hash is unknown.
	GetBlob(hash object.Hash) ([]byte, error)
}
