// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/hollowfs/hollow/lib/object"
)

// MemorySource is an in-memory Source. It counts fetches so tests can
// verify the at-most-once load behavior of the filesystem core.
type MemorySource struct {
	mu      sync.RWMutex
	objects map[object.Hash][]byte
	fetches atomic.Int64
}

var _ Source = (*MemorySource)(nil)

// NewMemorySource returns an empty MemorySource.
func NewMemorySource() *MemorySource {
	return &MemorySource{objects: make(map[object.Hash][]byte)}
}

// AddBlob stores data and returns its hash.
func (m *MemorySource) AddBlob(data []byte) object.Hash {
	hash := object.HashBytes(data)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[hash] = append([]byte(nil), data...)
	return hash
}

// AddTree encodes and stores a tree, returning its hash. Panics on
// encoding failure; test fixtures are always well-formed.
func (m *MemorySource) AddTree(tree *object.Tree) object.Hash {
	data, err := object.EncodeTree(tree)
	if err != nil {
		panic(fmt.Sprintf("store: encoding fixture tree: %v", err))
	}
	return m.AddBlob(data)
}

// GetBlob returns a copy of the stored bytes and increments the
// fetch counter.
func (m *MemorySource) GetBlob(hash object.Hash) ([]byte, error) {
	m.fetches.Add(1)
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[hash]
	if !ok {
		return nil, fmt.Errorf("blob %s: %w", hash, ErrNotFound)
	}
	return append([]byte(nil), data...), nil
}

// Fetches returns the number of GetBlob calls made so far.
func (m *MemorySource) Fetches() int64 {
	return m.fetches.Load()
}
