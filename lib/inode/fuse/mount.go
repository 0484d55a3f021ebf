// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

package fuse

import (
	"crypto/sha1"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	gofuse "github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"

	"github.com/hollowfs/hollow/lib/clock"
	"github.com/hollowfs/hollow/lib/inode"
	"github.com/hollowfs/hollow/lib/object"
	"github.com/hollowfs/hollow/lib/overlay"
	"github.com/hollowfs/hollow/lib/store"
)

// Options configures the FUSE mount.
type Options struct {
	// Mountpoint is the directory where the filesystem is mounted.
	Mountpoint string

	// Source serves snapshot objects (blobs, trees, the commit) by
	// hash.
	Source store.Source

	// Overlay owns materialized file content.
	Overlay *overlay.Storage

	// Commit is the hash of the commit object to project.
	Commit object.Hash

	// Clock provides time for file creation timestamps and
	// touch-to-now setattr requests. If nil, defaults to
	// clock.Real().
	Clock clock.Clock

	// AllowOther permits other users (including root) to access the
	// mount. Requires user_allow_other in /etc/fuse.conf.
	AllowOther bool

	// Logger receives diagnostic messages. If nil, a no-op logger
	// is used.
	Logger *slog.Logger
}

// Mount projects the configured commit at the mountpoint. The caller
// must call Unmount on the returned Server when done. The mountpoint
// directory is created if it does not exist.
func Mount(options Options) (*fuse.Server, error) {
	if options.Mountpoint == "" {
		return nil, fmt.Errorf("mountpoint is required")
	}
	if options.Source == nil {
		return nil, fmt.Errorf("source is required")
	}
	if options.Overlay == nil {
		return nil, fmt.Errorf("overlay storage is required")
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelError,
		}))
	}

	if err := os.MkdirAll(options.Mountpoint, 0o755); err != nil {
		return nil, fmt.Errorf("creating mountpoint %s: %w", options.Mountpoint, err)
	}

	projection, err := newProjection(&options)
	if err != nil {
		return nil, err
	}

	root := &treeNode{projection: projection, treeHash: projection.rootTree}

	entryTimeout := 1 * time.Second
	attrTimeout := 1 * time.Second
	negativeTimeout := 100 * time.Millisecond

	server, err := gofuse.Mount(options.Mountpoint, root, &gofuse.Options{
		EntryTimeout:    &entryTimeout,
		AttrTimeout:     &attrTimeout,
		NegativeTimeout: &negativeTimeout,
		MountOptions: fuse.MountOptions{
			FsName:     "hollow-" + object.FormatHash(options.Commit)[:12],
			Name:       "hollow",
			AllowOther: options.AllowOther,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("mounting FUSE filesystem at %s: %w", options.Mountpoint, err)
	}

	options.Logger.Info("snapshot mounted",
		"mountpoint", options.Mountpoint,
		"commit", object.FormatHash(options.Commit),
	)
	return server, nil
}

// projection is the shared state behind all nodes of one mount: the
// collaborators, the root tree, the catalog of files materialized
// before this process started, and the table of live file objects.
type projection struct {
	options  *Options
	rootTree object.Hash

	// recovered snapshots the overlay catalog at mount time. Files
	// materialized during this process's lifetime are already in the
	// table and never consult it.
	recovered map[overlay.FileID]struct {
		Kind uint8
		Mode uint32
	}

	// tableMu guards files. One FileObject per FileID, shared by
	// every lookup that resolves to the same entry.
	tableMu sync.Mutex
	files   map[overlay.FileID]*inode.FileObject
}

func newProjection(options *Options) (*projection, error) {
	commitData, err := options.Source.GetBlob(options.Commit)
	if err != nil {
		return nil, fmt.Errorf("loading commit %s: %w", options.Commit, err)
	}
	commit, err := object.DecodeCommit(commitData)
	if err != nil {
		return nil, fmt.Errorf("loading commit %s: %w", options.Commit, err)
	}

	return &projection{
		options:   options,
		rootTree:  commit.Tree,
		recovered: options.Overlay.Materialized(),
		files:     make(map[overlay.FileID]*inode.FileObject),
	}, nil
}

// loadTree fetches and decodes a tree object.
func (p *projection) loadTree(hash object.Hash) (*object.Tree, error) {
	data, err := p.options.Source.GetBlob(hash)
	if err != nil {
		return nil, err
	}
	return object.DecodeTree(data)
}

// fileIDFor derives the stable FileID for an entry from its parent
// tree hash and name. Deterministic derivation is what makes restart
// recovery work: the same path resolves to the same ID, so a file
// materialized in a previous run is found in overlay storage again.
func fileIDFor(parent object.Hash, name string) overlay.FileID {
	digest := sha1.New()
	digest.Write(parent[:])
	digest.Write([]byte{0})
	digest.Write([]byte(name))
	sum := digest.Sum(nil)
	return overlay.FileID(binary.BigEndian.Uint64(sum[:8]))
}

// fileFor returns the FileObject for a tree entry, creating it on
// first resolution. A file found in overlay storage is recovered in
// the materialized state with the kind and mode the catalog recorded;
// everything else starts virtual, backed by the entry's blob.
func (p *projection) fileFor(parent object.Hash, entry object.TreeEntry) (*inode.FileObject, error) {
	id := fileIDFor(parent, entry.Name)

	p.tableMu.Lock()
	defer p.tableMu.Unlock()

	if file, ok := p.files[id]; ok {
		return file, nil
	}

	deps := inode.Deps{
		Source:  p.options.Source,
		Overlay: p.options.Overlay,
		Clock:   p.options.Clock,
		Logger:  p.options.Logger,
	}

	var file *inode.FileObject
	if record, ok := p.recovered[id]; ok {
		handle, err := p.options.Overlay.Open(id)
		if err == nil {
			file = inode.NewMaterializedFile(deps, id, handle, object.Kind(record.Kind), record.Mode)
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("recovering materialized file %s: %w", id, err)
		}
		// A catalog entry without an overlay file can follow a
		// crashed removal; treat the file as never materialized.
	}
	if file == nil {
		file = inode.NewVirtualFile(deps, id, entry.Hash, entry.Kind, entry.Mode())
	}

	p.files[id] = file
	return file, nil
}
