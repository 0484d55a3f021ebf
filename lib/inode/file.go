// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

// Package inode implements the materialization core: per-file state
// tracking whether content is served from the immutable backing store
// ("virtual") or from a writable overlay copy ("materialized"), the
// one-way transition between those states, and the cached integrity
// hash that rides along as a best-effort extended attribute.
//
// Every FileObject owns one mutex guarding all of its mutable state.
// Operations hold it for their full duration, including the blocking
// backing-store fetch on first access. That serializes concurrent
// first readers behind a single fetch, which is the point: the blob
// is loaded at most once per object lifetime. A single-flight load
// that releases the lock during the fetch would allow more
// concurrency; the simpler policy is correct and the fetch is
// expected to be rare and short.
package inode

import (
	"crypto/sha1"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/hollowfs/hollow/lib/clock"
	"github.com/hollowfs/hollow/lib/object"
	"github.com/hollowfs/hollow/lib/overlay"
	"github.com/hollowfs/hollow/lib/store"
)

// XattrContentHash is the extended attribute holding the hex content
// hash of a materialized overlay file. It is a best-effort cache: a
// missing or unwritable attribute only forces recomputation, never
// a failure.
const XattrContentHash = "user.hollow.sha1"

// Deps carries the collaborators every file object needs. The zero
// values for Clock and Logger are replaced with clock.Real() and an
// error-level stderr handler.
type Deps struct {
	// Source serves backing blob content by hash.
	Source store.Source

	// Overlay owns materialized file content.
	Overlay *overlay.Storage

	// Clock provides creation timestamps and "set time to now"
	// resolution.
	Clock clock.Clock

	// Logger receives diagnostics (swallowed hash-store failures).
	Logger *slog.Logger
}

func (d *Deps) fillDefaults() {
	if d.Clock == nil {
		d.Clock = clock.Real()
	}
	if d.Logger == nil {
		d.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelError,
		}))
	}
}

// FileObject is one logical file known to the projection. It is
// either virtual (content of record is the backing blob named by
// backingHash) or materialized (content of record is the overlay
// file held open in handle). The transition is one-directional:
// virtual to materialized, never back.
type FileObject struct {
	deps Deps
	id   overlay.FileID

	// mu guards every field below. Operations hold it end to end;
	// see the package comment for the loading policy.
	mu sync.Mutex

	// backingHash is non-nil exactly while the object is virtual.
	backingHash *object.Hash

	// loadedContent caches the backing blob while virtual. Populated
	// at most once per object lifetime and cleared the instant the
	// object materializes.
	loadedContent []byte

	// handle is non-nil exactly while the object is materialized.
	// Exclusively owned; closed exactly once by Close.
	handle *overlay.Handle

	// cachedHash is the last known content hash of the overlay file,
	// meaningful only when hashValid is true.
	cachedHash object.Hash

	// hashValid is true only when cachedHash equals the durably
	// recorded extended attribute and no write has happened since.
	hashValid bool

	// trustStoredHash permits ContentHash to adopt the extended
	// attribute from the overlay file. True only while this process
	// has no knowledge that contradicts it: set for recovered files,
	// cleared by any write or truncate, restored when the attribute
	// is successfully rewritten.
	trustStoredHash bool

	kind object.Kind
	mode uint32 // permission bits only, no file-type bits

	// creationTime is when this object was instantiated. Virtual
	// files report it for all timestamps.
	creationTime time.Time

	// openHandles counts kernel-level file handles referencing this
	// object. Diagnostic; lifetime is the projection layer's concern.
	openHandles int

	closed bool
}

// NewVirtualFile constructs a FileObject backed by the blob with the
// given hash. kind must be KindRegular or KindSymlink; directories
// are projected by the tree layer and never reach this type.
func NewVirtualFile(deps Deps, id overlay.FileID, hash object.Hash, kind object.Kind, mode uint32) *FileObject {
	deps.fillDefaults()
	backing := hash
	return &FileObject{
		deps:         deps,
		id:           id,
		backingHash:  &backing,
		kind:         kind,
		mode:         mode & 0o7777,
		creationTime: deps.Clock.Now(),
	}
}

// NewMaterializedFile constructs a FileObject around an already
// materialized overlay file, taking ownership of the handle. Used at
// mount time to recover files materialized before a restart.
func NewMaterializedFile(deps Deps, id overlay.FileID, handle *overlay.Handle, kind object.Kind, mode uint32) *FileObject {
	deps.fillDefaults()
	f := &FileObject{
		deps:            deps,
		id:              id,
		handle:          handle,
		kind:            kind,
		mode:            mode & 0o7777,
		creationTime:    deps.Clock.Now(),
		trustStoredHash: true,
	}
	f.mu.Lock()
	f.assertConsistentLocked("NewMaterializedFile")
	f.mu.Unlock()
	return f
}

// ID returns the stable file identifier.
func (f *FileObject) ID() overlay.FileID { return f.id }

// Kind returns the file kind. Immutable after construction.
func (f *FileObject) Kind() object.Kind { return f.kind }

// IsMaterialized reports whether the overlay holds the content of
// record. Diagnostic snapshot; the answer can become stale the moment
// the lock is released (though only in the virtual-to-materialized
// direction).
func (f *FileObject) IsMaterialized() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.backingHash == nil
}

// assertConsistentLocked enforces the state-machine invariant: a
// handle is present exactly when no backing hash is, and loaded
// content exists only while virtual. Violations are programming
// errors, not runtime conditions.
func (f *FileObject) assertConsistentLocked(op string) {
	if (f.backingHash == nil) != (f.handle != nil) {
		panic(fmt.Sprintf("inode: %s left file %s with backingHash=%v handle=%v",
			op, f.id, f.backingHash != nil, f.handle != nil))
	}
	if f.backingHash == nil && f.loadedContent != nil {
		panic(fmt.Sprintf("inode: %s left materialized file %s with loaded content", op, f.id))
	}
}

// ensureLoadedLocked fetches the backing blob if this virtual object
// has not loaded it yet. Must not be called on a materialized object.
// The fetch blocks with the object lock held, which is what
// guarantees at-most-once loading.
func (f *FileObject) ensureLoadedLocked() error {
	if f.backingHash == nil {
		panic(fmt.Sprintf("inode: ensureLoadedLocked on materialized file %s", f.id))
	}
	if f.loadedContent != nil {
		return nil
	}
	content, err := f.deps.Source.GetBlob(*f.backingHash)
	if err != nil {
		return fmt.Errorf("loading backing content for file %s: %w", f.id, err)
	}
	f.loadedContent = content
	return nil
}

// Open prepares the object for a kernel open call. Opening a regular
// file for write materializes it first (honoring truncate-on-open);
// opening read-only leaves it virtual. Symlinks reject every mutating
// open: their targets are immutable content in this design. Any other
// kind here is an internal-consistency failure, since upstream type
// checks route directories away from file objects.
func (f *FileObject) Open(writable, truncate bool) error {
	switch f.kind {
	case object.KindRegular:
		if writable {
			if err := f.MaterializeForWrite(truncate); err != nil {
				return err
			}
		}
	case object.KindSymlink:
		if writable {
			return fmt.Errorf("opening symlink %s for write: %w", f.id, ErrInvalidOperation)
		}
	default:
		return &InternalError{
			Op:     "Open",
			Detail: fmt.Sprintf("file %s has kind %s", f.id, f.kind),
		}
	}

	f.mu.Lock()
	f.openHandles++
	f.mu.Unlock()
	return nil
}

// Release records that a kernel file handle was closed. The object
// itself stays alive; destruction is the projection layer's call.
func (f *FileObject) Release() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.openHandles > 0 {
		f.openHandles--
	}
}

// OpenHandles returns the current kernel handle count. Diagnostic.
func (f *FileObject) OpenHandles() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.openHandles
}

// Stat returns the file's attributes. Virtual files report the blob
// length (loading the blob on first call) and their creation time for
// every timestamp; materialized files report live overlay size and
// times with the in-memory mode overlaid.
func (f *FileObject) Stat() (Attributes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.handle != nil {
		overlayAttr, err := f.handle.Stat()
		if err != nil {
			return Attributes{}, err
		}
		return Attributes{
			Kind:  f.kind,
			Mode:  f.mode,
			Size:  overlayAttr.Size,
			Atime: overlayAttr.Atime,
			Mtime: overlayAttr.Mtime,
			Ctime: overlayAttr.Ctime,
		}, nil
	}

	if err := f.ensureLoadedLocked(); err != nil {
		return Attributes{}, err
	}
	return Attributes{
		Kind:  f.kind,
		Mode:  f.mode,
		Size:  int64(len(f.loadedContent)),
		Atime: f.creationTime,
		Mtime: f.creationTime,
		Ctime: f.creationTime,
	}, nil
}

// Read returns up to size bytes at the given offset. Reading past the
// end returns an empty slice, never an error.
func (f *FileObject) Read(size int, offset int64) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.handle != nil {
		dest := make([]byte, size)
		n, err := f.handle.ReadAt(dest, offset)
		if err != nil {
			return nil, err
		}
		return dest[:n], nil
	}

	if err := f.ensureLoadedLocked(); err != nil {
		return nil, err
	}
	if offset >= int64(len(f.loadedContent)) {
		return nil, nil
	}
	end := offset + int64(size)
	if end > int64(len(f.loadedContent)) {
		end = int64(len(f.loadedContent))
	}
	result := make([]byte, end-offset)
	copy(result, f.loadedContent[offset:end])
	return result, nil
}

// ReadAll returns the complete current content.
func (f *FileObject) ReadAll() ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.readAllLocked()
}

func (f *FileObject) readAllLocked() ([]byte, error) {
	if f.handle != nil {
		attr, err := f.handle.Stat()
		if err != nil {
			return nil, err
		}
		content := make([]byte, attr.Size)
		n, err := f.handle.ReadAt(content, 0)
		if err != nil {
			return nil, err
		}
		return content[:n], nil
	}

	if err := f.ensureLoadedLocked(); err != nil {
		return nil, err
	}
	return append([]byte(nil), f.loadedContent...), nil
}

// Readlink returns a symlink's target. Fails with ErrInvalidOperation
// on non-symlinks, matching readlink(2)'s EINVAL.
func (f *FileObject) Readlink() (string, error) {
	if f.kind != object.KindSymlink {
		return "", fmt.Errorf("readlink on %s file %s: %w", f.kind, f.id, ErrInvalidOperation)
	}
	target, err := f.ReadAll()
	if err != nil {
		return "", err
	}
	return string(target), nil
}

// Write writes data at the given offset. The file must already be
// materialized: writes never trigger materialization themselves, the
// open-for-write path does. Invalidates the cached content hash.
func (f *FileObject) Write(data []byte, offset int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.handle == nil {
		return 0, fmt.Errorf("writing to virtual file %s: %w", f.id, ErrNotWritable)
	}

	f.hashValid = false
	f.trustStoredHash = false
	return f.handle.WriteAt(data, offset)
}

// SetAttributes applies a setattr request and returns the resulting
// attributes. Ownership changes to any different value are rejected:
// this filesystem does not support chown. Mode changes touch only the
// in-memory permission bits, never the overlay file's own mode. Size
// and time changes need the overlay handle, so they fail on virtual
// files; callers materialize first (truncation arrives through the
// open-for-write path in practice).
func (f *FileObject) SetAttributes(req SetAttrRequest) (Attributes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if req.SetUID && req.UID != uint32(os.Getuid()) {
		return Attributes{}, fmt.Errorf("changing owner of file %s: %w", f.id, ErrPermissionDenied)
	}
	if req.SetGID && req.GID != uint32(os.Getgid()) {
		return Attributes{}, fmt.Errorf("changing group of file %s: %w", f.id, ErrPermissionDenied)
	}

	if f.handle == nil && req.touchesOverlay() {
		return Attributes{}, fmt.Errorf("setting size or times on virtual file %s: %w", f.id, ErrNotWritable)
	}

	if req.SetSize {
		if err := f.handle.Truncate(req.Size); err != nil {
			return Attributes{}, err
		}
		f.hashValid = false
		f.trustStoredHash = false
	}

	if req.SetMode {
		// Permission bits only; the kind carries the file-type bits
		// and the overlay file keeps its own permissive mode.
		f.mode = req.Mode & 0o7777
	}

	if req.SetAtime || req.SetMtime || req.AtimeNow || req.MtimeNow {
		current, err := f.handle.Stat()
		if err != nil {
			return Attributes{}, err
		}
		now := f.deps.Clock.Now()
		atime := resolveTime(req.SetAtime, req.AtimeNow, req.Atime, current.Atime, now)
		mtime := resolveTime(req.SetMtime, req.MtimeNow, req.Mtime, current.Mtime, now)
		if err := f.handle.SetTimes(atime, mtime); err != nil {
			return Attributes{}, err
		}
	}

	if f.handle != nil {
		overlayAttr, err := f.handle.Stat()
		if err != nil {
			return Attributes{}, err
		}
		return Attributes{
			Kind:  f.kind,
			Mode:  f.mode,
			Size:  overlayAttr.Size,
			Atime: overlayAttr.Atime,
			Mtime: overlayAttr.Mtime,
			Ctime: overlayAttr.Ctime,
		}, nil
	}

	if err := f.ensureLoadedLocked(); err != nil {
		return Attributes{}, err
	}
	return Attributes{
		Kind:  f.kind,
		Mode:  f.mode,
		Size:  int64(len(f.loadedContent)),
		Atime: f.creationTime,
		Mtime: f.creationTime,
		Ctime: f.creationTime,
	}, nil
}

// Flush is the close-time flush. There are no write buffers to drain,
// so it only takes the opportunity to refresh the integrity hash if a
// write invalidated it. Hash failures are logged, never propagated: a
// stale attribute just means recomputation on next demand.
func (f *FileObject) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.handle != nil && !f.hashValid {
		if _, err := f.recomputeAndStoreHashLocked(); err != nil {
			f.deps.Logger.Warn("content hash refresh failed during flush",
				"file_id", f.id, "error", err)
		}
	}
	return nil
}

// Fsync syncs overlay content to stable storage. A no-op for virtual
// files (nothing local to sync). The sync error propagates; the
// opportunistic hash refresh that follows does not.
func (f *FileObject) Fsync(durable bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.handle == nil {
		return nil
	}
	if err := f.handle.Sync(durable); err != nil {
		return err
	}
	if !f.hashValid {
		if _, err := f.recomputeAndStoreHashLocked(); err != nil {
			f.deps.Logger.Warn("content hash refresh failed during fsync",
				"file_id", f.id, "error", err)
		}
	}
	return nil
}

// ContentHash returns the hash of the current content of record.
// Virtual files answer from the backing hash itself — it is the
// identity key, no hashing needed. Materialized files answer from
// the cache when valid, then from the stored extended attribute
// (trusted and re-cached), and only then by digesting the full
// overlay content.
func (f *FileObject) ContentHash() (object.Hash, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.backingHash != nil {
		return *f.backingHash, nil
	}

	if f.hashValid {
		return f.cachedHash, nil
	}

	if f.trustStoredHash {
		value, present, err := f.handle.GetXattr(XattrContentHash)
		if err != nil {
			f.deps.Logger.Warn("reading stored content hash failed",
				"file_id", f.id, "error", err)
		} else if present {
			stored, parseErr := object.ParseHash(string(value))
			if parseErr == nil {
				f.cachedHash = stored
				f.hashValid = true
				return stored, nil
			}
			f.deps.Logger.Warn("stored content hash is corrupt, recomputing",
				"file_id", f.id, "value", string(value), "error", parseErr)
		}
	}

	return f.recomputeAndStoreHashLocked()
}

// MaterializeForWrite moves the object to the materialized state, or
// refreshes it when already there. Idempotent without truncate. With
// truncate, the overlay content becomes empty and the empty-content
// hash is recorded immediately — the fast path never reads or hashes
// data that is about to be discarded, and a truncating
// materialization never contacts the backing store at all.
//
// The non-truncating transition writes the backing content through
// the overlay's atomic create, so a half-written file is never
// observable under this ID, and records the backing hash as the
// integrity attribute: the backing store's identity hash is
// authoritative for exactly those bytes.
func (f *FileObject) MaterializeForWrite(truncate bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	defer f.assertConsistentLocked("MaterializeForWrite")

	if f.handle != nil {
		if truncate {
			f.hashValid = false
			f.trustStoredHash = false
			if err := f.handle.Truncate(0); err != nil {
				return err
			}
			f.storeHashLocked(object.EmptyBlobHash)
		}
		return nil
	}

	var handle *overlay.Handle
	var contentHash object.Hash
	var err error

	if truncate {
		handle, err = f.deps.Overlay.Create(f.id, nil, uint8(f.kind), f.mode)
		if err != nil {
			return fmt.Errorf("materializing file %s truncated: %w", f.id, err)
		}
		contentHash = object.EmptyBlobHash
	} else {
		if err := f.ensureLoadedLocked(); err != nil {
			return err
		}
		handle, err = f.deps.Overlay.Create(f.id, f.loadedContent, uint8(f.kind), f.mode)
		if err != nil {
			return fmt.Errorf("materializing file %s: %w", f.id, err)
		}
		contentHash = *f.backingHash
	}

	f.handle = handle
	f.backingHash = nil
	f.loadedContent = nil
	f.hashValid = false
	f.storeHashLocked(contentHash)
	return nil
}

// Close releases the overlay handle, exactly once. Virtual objects
// have nothing to close. The projection layer calls this when it
// drops its last reference; no operation can be in flight then.
func (f *FileObject) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || f.handle == nil {
		f.closed = true
		return nil
	}
	f.closed = true
	return f.handle.Close()
}

// recomputeAndStoreHashLocked digests the full overlay content and
// records the result as the integrity attribute. Reads are positioned
// so the shared descriptor's offset never moves.
func (f *FileObject) recomputeAndStoreHashLocked() (object.Hash, error) {
	digest := sha1.New()
	buf := make([]byte, 8192)
	var offset int64
	for {
		n, err := f.handle.ReadAt(buf, offset)
		if err != nil {
			return object.Hash{}, fmt.Errorf("rehashing file %s: %w", f.id, err)
		}
		if n == 0 {
			break
		}
		digest.Write(buf[:n])
		offset += int64(n)
	}

	var hash object.Hash
	copy(hash[:], digest.Sum(nil))
	f.storeHashLocked(hash)
	return hash, nil
}

// storeHashLocked writes the hash to the overlay extended attribute.
// On success the cache becomes valid; on failure the failure is
// logged and the cache stays invalid, forcing recomputation next time
// the hash is needed. The attribute is a best-effort side channel,
// never a dependency.
func (f *FileObject) storeHashLocked(hash object.Hash) {
	f.cachedHash = hash
	if err := f.handle.SetXattr(XattrContentHash, []byte(object.FormatHash(hash))); err != nil {
		f.deps.Logger.Warn("storing content hash attribute failed",
			"file_id", f.id, "error", err)
		f.hashValid = false
		f.trustStoredHash = false
		return
	}
	f.hashValid = true
	f.trustStoredHash = true
}
