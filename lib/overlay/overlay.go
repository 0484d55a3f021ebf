// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

// Package overlay owns the on-disk area where materialized file
// content lives. Each materialized file is stored under a stable
// FileID; the package provides raw handle operations (read, write,
// truncate, stat, sync, extended attributes) and an atomic create so
// a half-written file is never observable under its ID.
//
// A CBOR catalog records the kind and permission bits of every
// materialized file so the projection layer can reconstruct file
// objects after a restart. Overlay file permissions themselves are
// deliberately permissive (0600) and never carry the projected mode;
// projecting restrictive modes onto overlay files could block our own
// read/write access.
package overlay

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileID is the stable per-file identifier used as the overlay
// storage key and the lock-table key. It is assigned by the
// projection layer and never reused while the file object is live.
type FileID uint64

// String formats the ID the way it appears on disk.
func (id FileID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Directory names within the overlay root.
const (
	fileDir     = "files"
	tmpDir      = "tmp"
	catalogName = "catalog.cbor"
)

// fileRecord is the catalog entry for one materialized file.
type fileRecord struct {
	// Kind matches object.Kind but is stored as a raw byte so the
	// overlay does not depend on the object package.
	Kind uint8 `cbor:"kind"`

	// Mode holds the projected permission bits (no file-type bits).
	Mode uint32 `cbor:"mode"`
}

// Storage manages the overlay directory. Safe for concurrent use;
// per-file serialization is the caller's responsibility (the inode
// layer holds a per-object lock across overlay calls).
type Storage struct {
	root   string
	logger *slog.Logger

	// catalogMu guards records and catalog file rewrites.
	catalogMu sync.Mutex
	records   map[FileID]fileRecord
}

// NewStorage opens or creates an overlay rooted at the given
// directory, loading the catalog if one exists. A nil logger
// defaults to a discard-level stderr handler.
func NewStorage(root string, logger *slog.Logger) (*Storage, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelError,
		}))
	}
	for _, dir := range []string{
		root,
		filepath.Join(root, fileDir),
		filepath.Join(root, tmpDir),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating overlay directory %s: %w", dir, err)
		}
	}

	storage := &Storage{
		root:    root,
		logger:  logger,
		records: make(map[FileID]fileRecord),
	}
	if err := storage.loadCatalog(); err != nil {
		return nil, err
	}
	return storage, nil
}

// filePath returns the on-disk path for a FileID.
func (s *Storage) filePath(id FileID) string {
	return filepath.Join(s.root, fileDir, id.String())
}

// Open opens an existing overlay file for read/write. Returns an
// error wrapping os.ErrNotExist if the file has never been
// materialized.
func (s *Storage) Open(id FileID) (*Handle, error) {
	file, err := os.OpenFile(s.filePath(id), os.O_RDWR|unixNoFollow, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening overlay file %s: %w", id, err)
	}
	return &Handle{file: file, id: id}, nil
}

// Create atomically writes content as the overlay file for id and
// returns an open read/write handle to it. The content is fully
// visible under the ID or not at all: it is written to a temp file
// and renamed into place. The kind and mode are recorded in the
// catalog for restart recovery.
//
// Creating over an existing overlay file replaces its content. The
// caller (the inode layer) guarantees this only happens before any
// handle to the old content exists.
func (s *Storage) Create(id FileID, content []byte, kind uint8, mode uint32) (*Handle, error) {
	tmpFile, err := os.CreateTemp(filepath.Join(s.root, tmpDir), "materialize-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp overlay file: %w", err)
	}
	tmpPath := tmpFile.Name()
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if len(content) > 0 {
		if _, err := tmpFile.Write(content); err != nil {
			tmpFile.Close()
			return nil, fmt.Errorf("writing overlay content for %s: %w", id, err)
		}
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("closing temp overlay file: %w", err)
	}

	finalPath := s.filePath(id)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return nil, fmt.Errorf("renaming overlay file %s into place: %w", id, err)
	}
	success = true

	if err := s.remember(id, kind, mode); err != nil {
		// The content rename already succeeded; a catalog write
		// failure costs restart recovery for this file, not
		// correctness of the live mount.
		s.logger.Warn("overlay catalog update failed", "file_id", id, "error", err)
	}

	file, err := os.OpenFile(finalPath, os.O_RDWR|unixNoFollow, 0o600)
	if err != nil {
		return nil, fmt.Errorf("reopening overlay file %s: %w", id, err)
	}
	return &Handle{file: file, id: id}, nil
}

// Remove deletes the overlay file and its catalog entry. Used when
// the projection layer unlinks a materialized file.
func (s *Storage) Remove(id FileID) error {
	if err := os.Remove(s.filePath(id)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing overlay file %s: %w", id, err)
	}

	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()
	if _, ok := s.records[id]; ok {
		delete(s.records, id)
		if err := s.writeCatalogLocked(); err != nil {
			s.logger.Warn("overlay catalog update failed", "file_id", id, "error", err)
		}
	}
	return nil
}

// Materialized returns the IDs of all files recorded in the catalog,
// with their kind and mode. Used at mount time to reconstruct file
// objects that were materialized before a restart.
func (s *Storage) Materialized() map[FileID]struct {
	Kind uint8
	Mode uint32
} {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()

	result := make(map[FileID]struct {
		Kind uint8
		Mode uint32
	}, len(s.records))
	for id, record := range s.records {
		result[id] = struct {
			Kind uint8
			Mode uint32
		}{Kind: record.Kind, Mode: record.Mode}
	}
	return result
}

// remember records a file's kind and mode in the catalog and rewrites
// the catalog file atomically.
func (s *Storage) remember(id FileID, kind uint8, mode uint32) error {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()
	s.records[id] = fileRecord{Kind: kind, Mode: mode}
	return s.writeCatalogLocked()
}

func (s *Storage) writeCatalogLocked() error {
	data, err := cbor.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("encoding overlay catalog: %w", err)
	}

	tmpFile, err := os.CreateTemp(filepath.Join(s.root, tmpDir), "catalog-*.cbor")
	if err != nil {
		return fmt.Errorf("creating temp catalog file: %w", err)
	}
	tmpPath := tmpFile.Name()
	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing overlay catalog: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp catalog file: %w", err)
	}
	if err := os.Rename(tmpPath, filepath.Join(s.root, catalogName)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming overlay catalog into place: %w", err)
	}
	return nil
}

func (s *Storage) loadCatalog() error {
	data, err := os.ReadFile(filepath.Join(s.root, catalogName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading overlay catalog: %w", err)
	}
	if err := cbor.Unmarshal(data, &s.records); err != nil {
		// A corrupt catalog only loses restart recovery; the overlay
		// files themselves are intact. Start fresh rather than
		// refusing to mount.
		s.logger.Warn("overlay catalog is corrupt, ignoring", "error", err)
		s.records = make(map[FileID]fileRecord)
	}
	return nil
}
