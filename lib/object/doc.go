// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

// Package object defines the content-addressed data model: the SHA-1
// content hash, and the tree and commit objects that describe a
// projected snapshot. Blobs are raw bytes and need no type here; trees
// and commits are CBOR-encoded with deterministic encoding so their
// hashes are stable across encode cycles.
package object
