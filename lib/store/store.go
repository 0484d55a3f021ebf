// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zlib"

	"github.com/hollowfs/hollow/lib/object"
)

// Directory names within the store root.
const (
	objectDir = "objects"
	tmpDir    = "tmp"
)

// Store is an on-disk loose-object store. Objects live under
// objects/<first two hex chars>/<remaining 38>, zlib-compressed, and
// are written via atomic rename through the tmp directory so a
// half-written object is never visible under its hash.
//
// The store is safe for concurrent use: objects are immutable once
// written, and a concurrent Put of the same content is idempotent.
type Store struct {
	root string
}

var _ Source = (*Store)(nil)

// NewStore creates a Store rooted at the given directory. The
// directory structure is created if it does not exist.
func NewStore(root string) (*Store, error) {
	for _, dir := range []string{
		root,
		filepath.Join(root, objectDir),
		filepath.Join(root, tmpDir),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory %s: %w", dir, err)
		}
	}
	return &Store{root: root}, nil
}

// objectPath returns the on-disk path for a hash.
func (s *Store) objectPath(hash object.Hash) string {
	hexDigest := object.FormatHash(hash)
	return filepath.Join(s.root, objectDir, hexDigest[:2], hexDigest[2:])
}

// Put stores data and returns its hash. Writing an object that
// already exists is a no-op (content addressing makes the bytes
// identical by construction).
func (s *Store) Put(data []byte) (object.Hash, error) {
	hash := object.HashBytes(data)
	finalPath := s.objectPath(hash)

	if _, err := os.Stat(finalPath); err == nil {
		return hash, nil
	}

	tmpFile, err := os.CreateTemp(filepath.Join(s.root, tmpDir), "object-*.z")
	if err != nil {
		return hash, fmt.Errorf("creating temp object file: %w", err)
	}
	tmpPath := tmpFile.Name()
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	compressor := zlib.NewWriter(tmpFile)
	if _, err := compressor.Write(data); err != nil {
		tmpFile.Close()
		return hash, fmt.Errorf("compressing object %s: %w", hash, err)
	}
	if err := compressor.Close(); err != nil {
		tmpFile.Close()
		return hash, fmt.Errorf("finishing compression for %s: %w", hash, err)
	}
	if err := tmpFile.Close(); err != nil {
		return hash, fmt.Errorf("closing temp object file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(finalPath), 0o755); err != nil {
		return hash, fmt.Errorf("creating object shard directory: %w", err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return hash, fmt.Errorf("renaming object %s into place: %w", hash, err)
	}

	success = true
	return hash, nil
}

// GetBlob reads and decompresses the object with the given hash.
func (s *Store) GetBlob(hash object.Hash) ([]byte, error) {
	file, err := os.Open(s.objectPath(hash))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("blob %s: %w", hash, ErrNotFound)
		}
		return nil, fmt.Errorf("opening object %s: %w", hash, err)
	}
	defer file.Close()

	decompressor, err := zlib.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("decompressing object %s: %w", hash, err)
	}
	defer decompressor.Close()

	data, err := io.ReadAll(decompressor)
	if err != nil {
		return nil, fmt.Errorf("reading object %s: %w", hash, err)
	}

	// Content addressing means the bytes must hash to the name they
	// were stored under. A mismatch is on-disk corruption.
	if actual := object.HashBytes(data); actual != hash {
		return nil, fmt.Errorf("object %s is corrupt: content hashes to %s", hash, actual)
	}
	return data, nil
}

// Has reports whether an object with the given hash exists.
func (s *Store) Has(hash object.Hash) bool {
	_, err := os.Stat(s.objectPath(hash))
	return err == nil
}

// PutTree encodes and stores a tree, returning its hash.
func (s *Store) PutTree(tree *object.Tree) (object.Hash, error) {
	data, err := object.EncodeTree(tree)
	if err != nil {
		return object.Hash{}, err
	}
	return s.Put(data)
}

// GetTree fetches and decodes a tree object.
func (s *Store) GetTree(hash object.Hash) (*object.Tree, error) {
	data, err := s.GetBlob(hash)
	if err != nil {
		return nil, err
	}
	return object.DecodeTree(data)
}

// PutCommit encodes and stores a commit, returning its hash.
func (s *Store) PutCommit(commit *object.Commit) (object.Hash, error) {
	data, err := object.EncodeCommit(commit)
	if err != nil {
		return object.Hash{}, err
	}
	return s.Put(data)
}

// GetCommit fetches and decodes a commit object.
func (s *Store) GetCommit(hash object.Hash) (*object.Commit, error) {
	data, err := s.GetBlob(hash)
	if err != nil {
		return nil, err
	}
	return object.DecodeCommit(data)
}

// ImportDirectory walks a local directory and stores its contents as
// blobs and trees, returning the root tree hash. Symlinks are stored
// as symlink entries whose blob holds the target path. Entry kinds
// other than regular files, symlinks, and directories are rejected.
func (s *Store) ImportDirectory(dir string) (object.Hash, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return object.Hash{}, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	tree := &object.Tree{}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			return object.Hash{}, fmt.Errorf("stat %s: %w", path, err)
		}

		var treeEntry object.TreeEntry
		treeEntry.Name = entry.Name()

		switch {
		case info.Mode().IsDir():
			subHash, err := s.ImportDirectory(path)
			if err != nil {
				return object.Hash{}, err
			}
			treeEntry.Kind = object.KindTree
			treeEntry.Hash = subHash

		case info.Mode()&os.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return object.Hash{}, fmt.Errorf("readlink %s: %w", path, err)
			}
			blobHash, err := s.Put([]byte(target))
			if err != nil {
				return object.Hash{}, err
			}
			treeEntry.Kind = object.KindSymlink
			treeEntry.Hash = blobHash

		case info.Mode().IsRegular():
			content, err := os.ReadFile(path)
			if err != nil {
				return object.Hash{}, fmt.Errorf("reading %s: %w", path, err)
			}
			blobHash, err := s.Put(content)
			if err != nil {
				return object.Hash{}, err
			}
			treeEntry.Kind = object.KindRegular
			treeEntry.Executable = info.Mode()&0o100 != 0
			treeEntry.Hash = blobHash

		default:
			return object.Hash{}, fmt.Errorf("cannot import %s: unsupported file type %s", path, info.Mode())
		}

		tree.Entries = append(tree.Entries, treeEntry)
	}

	// os.ReadDir returns entries sorted by name, which is the order
	// EncodeTree requires.
	return s.PutTree(tree)
}
