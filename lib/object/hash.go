// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// Hash is a 20-byte SHA-1 digest. It is both the backing store's
// object identity (blobs, trees, commits) and the integrity tag
// recorded on materialized overlay files, so a single algorithm
// serves both roles.
type Hash [20]byte

// EmptyBlobHash is the hash of zero-length content. Truncating
// materialization records this without reading any bytes.
var EmptyBlobHash = HashBytes(nil)

// HashBytes computes the content hash of data.
func HashBytes(data []byte) Hash {
	return Hash(sha1.Sum(data))
}

// FormatHash returns the 40-character hex representation. This is the
// canonical format used in metadata, xattrs, logs, and CLI output.
func FormatHash(hash Hash) string {
	return hex.EncodeToString(hash[:])
}

// ParseHash parses a 40-character hex string into a Hash.
func ParseHash(hexString string) (Hash, error) {
	var hash Hash
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return hash, fmt.Errorf("parsing object hash: %w", err)
	}
	if len(decoded) != len(hash) {
		return hash, fmt.Errorf("object hash is %d bytes, want %d", len(decoded), len(hash))
	}
	copy(hash[:], decoded)
	return hash, nil
}

// String implements fmt.Stringer with the hex form.
func (h Hash) String() string { return FormatHash(h) }
