// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

package inode

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hollowfs/hollow/lib/clock"
	"github.com/hollowfs/hollow/lib/object"
	"github.com/hollowfs/hollow/lib/overlay"
	"github.com/hollowfs/hollow/lib/store"
)

var testEpoch = time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	source  *store.MemorySource
	overlay *overlay.Storage
	clock   *clock.Fake
	deps    Deps
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	storage, err := overlay.NewStorage(filepath.Join(t.TempDir(), "overlay"), nil)
	if err != nil {
		t.Fatalf("NewStorage failed: %v", err)
	}
	env := &testEnv{
		source:  store.NewMemorySource(),
		overlay: storage,
		clock:   clock.NewFake(testEpoch),
	}
	env.deps = Deps{
		Source:  env.source,
		Overlay: env.overlay,
		Clock:   env.clock,
	}
	return env
}

// newVirtual stores content as a blob and returns a virtual regular
// file backed by it.
func (env *testEnv) newVirtual(t *testing.T, id overlay.FileID, content []byte) *FileObject {
	t.Helper()
	hash := env.source.AddBlob(content)
	return NewVirtualFile(env.deps, id, hash, object.KindRegular, 0o644)
}

func TestStatVirtual(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("hello"))

	attr, err := file.Stat()
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if attr.Size != 5 {
		t.Errorf("size = %d, want 5", attr.Size)
	}
	if attr.Kind != object.KindRegular || attr.Mode != 0o644 {
		t.Errorf("kind/mode = %s/%o", attr.Kind, attr.Mode)
	}
	// Virtual files report the creation time for every timestamp.
	for name, ts := range map[string]time.Time{"atime": attr.Atime, "mtime": attr.Mtime, "ctime": attr.Ctime} {
		if !ts.Equal(testEpoch) {
			t.Errorf("%s = %v, want creation time %v", name, ts, testEpoch)
		}
	}
}

func TestWriteVirtualFailsNotWritable(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("hello"))

	_, err := file.Write([]byte("x"), 0)
	if !errors.Is(err, ErrNotWritable) {
		t.Fatalf("Write on virtual file = %v, want ErrNotWritable", err)
	}
	if file.IsMaterialized() {
		t.Fatal("failed write materialized the file")
	}
}

// TestMaterializeScenario walks the full write lifecycle: stat a
// virtual "hello" file, fail a write, open for write without truncate,
// verify overlay content and hash, overwrite, verify the hash tracks
// the new content without any flush.
func TestMaterializeScenario(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("hello"))

	attr, err := file.Stat()
	if err != nil || attr.Size != 5 {
		t.Fatalf("Stat = %+v, %v", attr, err)
	}

	if _, err := file.Write([]byte("HELLO"), 0); !errors.Is(err, ErrNotWritable) {
		t.Fatalf("premature write = %v, want ErrNotWritable", err)
	}

	if err := file.Open(true, false); err != nil {
		t.Fatalf("Open for write failed: %v", err)
	}
	if !file.IsMaterialized() {
		t.Fatal("open for write did not materialize")
	}

	content, err := file.ReadAll()
	if err != nil || string(content) != "hello" {
		t.Fatalf("overlay content = %q, %v", content, err)
	}

	hash, err := file.ContentHash()
	if err != nil {
		t.Fatalf("ContentHash failed: %v", err)
	}
	if hash != object.HashBytes([]byte("hello")) {
		t.Fatalf("hash = %s, want sha1(hello)", hash)
	}

	if _, err := file.Write([]byte("HELLO"), 0); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	hash, err = file.ContentHash()
	if err != nil {
		t.Fatalf("ContentHash after write failed: %v", err)
	}
	if hash != object.HashBytes([]byte("HELLO")) {
		t.Fatalf("hash after write = %s, want sha1(HELLO)", hash)
	}
}

func TestMaterializeTruncateNeverFetches(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("backing content that must never be read"))

	if err := file.Open(true, true); err != nil {
		t.Fatalf("Open with truncate failed: %v", err)
	}

	if env.source.Fetches() != 0 {
		t.Fatalf("truncating materialization fetched the backing blob %d times", env.source.Fetches())
	}

	content, err := file.ReadAll()
	if err != nil || len(content) != 0 {
		t.Fatalf("content after truncate = %q, %v", content, err)
	}
	hash, err := file.ContentHash()
	if err != nil {
		t.Fatalf("ContentHash failed: %v", err)
	}
	if hash != object.EmptyBlobHash {
		t.Fatalf("hash = %s, want empty-content hash", hash)
	}
}

func TestMaterializeIdempotent(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("stable"))

	if err := file.MaterializeForWrite(false); err != nil {
		t.Fatalf("first materialization failed: %v", err)
	}
	firstContent, _ := file.ReadAll()
	firstHash, err := file.ContentHash()
	if err != nil {
		t.Fatalf("ContentHash failed: %v", err)
	}

	if err := file.MaterializeForWrite(false); err != nil {
		t.Fatalf("second materialization failed: %v", err)
	}
	secondContent, _ := file.ReadAll()
	secondHash, err := file.ContentHash()
	if err != nil {
		t.Fatalf("ContentHash failed: %v", err)
	}

	if !bytes.Equal(firstContent, secondContent) || firstHash != secondHash {
		t.Fatalf("repeated materialization changed state: %q/%s vs %q/%s",
			firstContent, firstHash, secondContent, secondHash)
	}
}

func TestTruncateOnOpenAlreadyMaterialized(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("original"))

	if err := file.Open(true, false); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := file.Write([]byte("modified content"), 0); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// Second open with truncate hits the already-materialized fast
	// path: content drops to zero without any rehashing of the data
	// being discarded.
	if err := file.Open(true, true); err != nil {
		t.Fatalf("truncating reopen failed: %v", err)
	}
	content, err := file.ReadAll()
	if err != nil || len(content) != 0 {
		t.Fatalf("content after truncating reopen = %q, %v", content, err)
	}
	hash, err := file.ContentHash()
	if err != nil || hash != object.EmptyBlobHash {
		t.Fatalf("hash = %s, %v, want empty-content hash", hash, err)
	}
}

func TestAtMostOnceLoad(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("fetched exactly once"))

	var group errgroup.Group
	for i := 0; i < 16; i++ {
		readerIndex := i
		group.Go(func() error {
			if readerIndex%2 == 0 {
				_, err := file.Stat()
				return err
			}
			_, err := file.Read(8, 0)
			return err
		})
	}
	if err := group.Wait(); err != nil {
		t.Fatalf("concurrent readers failed: %v", err)
	}

	if fetches := env.source.Fetches(); fetches != 1 {
		t.Fatalf("backing fetch count = %d, want 1", fetches)
	}
}

func TestContentHashVirtualNeedsNoFetch(t *testing.T) {
	env := newTestEnv(t)
	content := []byte("identity")
	file := env.newVirtual(t, 1, content)

	hash, err := file.ContentHash()
	if err != nil {
		t.Fatalf("ContentHash failed: %v", err)
	}
	if hash != object.HashBytes(content) {
		t.Fatalf("hash = %s, want identity hash", hash)
	}
	if env.source.Fetches() != 0 {
		t.Fatal("ContentHash on a virtual file fetched the blob")
	}
}

func TestOneDirectionalState(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("one way"))

	if err := file.Open(true, false); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	// No subsequent operation may bring the object back to virtual.
	if _, err := file.Stat(); err != nil {
		t.Fatal(err)
	}
	if _, err := file.Read(4, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := file.Write([]byte("w"), 0); err != nil {
		t.Fatal(err)
	}
	if err := file.Flush(); err != nil {
		t.Fatal(err)
	}
	if err := file.Fsync(true); err != nil {
		t.Fatal(err)
	}
	if _, err := file.SetAttributes(SetAttrRequest{SetMode: true, Mode: 0o600}); err != nil {
		t.Fatal(err)
	}
	if _, err := file.ContentHash(); err != nil {
		t.Fatal(err)
	}
	if err := file.MaterializeForWrite(false); err != nil {
		t.Fatal(err)
	}
	if !file.IsMaterialized() {
		t.Fatal("file reverted to virtual")
	}
}

func TestRoundTripWrite(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, nil)

	if err := file.Open(true, true); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	payload := []byte("round trip payload")
	n, err := file.Write(payload, 0)
	if err != nil || n != len(payload) {
		t.Fatalf("Write = %d, %v", n, err)
	}

	got, err := file.Read(len(payload), 0)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("Read returned %q, want %q", got, payload)
	}
}

func TestOverReadSafety(t *testing.T) {
	env := newTestEnv(t)

	virtual := env.newVirtual(t, 1, []byte("short"))
	got, err := virtual.Read(64, 1000)
	if err != nil {
		t.Fatalf("virtual over-read = %v, want nil error", err)
	}
	if len(got) != 0 {
		t.Fatalf("virtual over-read returned %d bytes", len(got))
	}

	materialized := env.newVirtual(t, 2, []byte("short"))
	if err := materialized.Open(true, false); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	got, err = materialized.Read(64, 1000)
	if err != nil {
		t.Fatalf("materialized over-read = %v, want nil error", err)
	}
	if len(got) != 0 {
		t.Fatalf("materialized over-read returned %d bytes", len(got))
	}
}

func TestReadVirtualSlicing(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("0123456789"))

	tests := []struct {
		size   int
		offset int64
		want   string
	}{
		{4, 0, "0123"},
		{4, 6, "6789"},
		{100, 8, "89"},
		{0, 0, ""},
		{4, 10, ""},
	}
	for _, tt := range tests {
		got, err := file.Read(tt.size, tt.offset)
		if err != nil {
			t.Fatalf("Read(%d, %d) failed: %v", tt.size, tt.offset, err)
		}
		if string(got) != tt.want {
			t.Errorf("Read(%d, %d) = %q, want %q", tt.size, tt.offset, got, tt.want)
		}
	}
}

func TestNotFoundPropagates(t *testing.T) {
	env := newTestEnv(t)
	unknown := object.HashBytes([]byte("never stored"))
	file := NewVirtualFile(env.deps, 1, unknown, object.KindRegular, 0o644)

	if _, err := file.Stat(); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Stat with missing blob = %v, want ErrNotFound", err)
	}
	if err := file.MaterializeForWrite(false); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("materialize with missing blob = %v, want ErrNotFound", err)
	}
	if file.IsMaterialized() {
		t.Fatal("failed materialization left the file materialized")
	}
}

func TestFlushAndFsyncVirtualNoop(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("untouched"))

	if err := file.Flush(); err != nil {
		t.Fatalf("Flush on virtual = %v", err)
	}
	if err := file.Fsync(true); err != nil {
		t.Fatalf("Fsync on virtual = %v", err)
	}
	if env.source.Fetches() != 0 {
		t.Fatal("flush/fsync on virtual file touched the backing store")
	}
}

func TestSetAttributesOwnershipRejected(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("owned"))

	otherUID := uint32(os.Getuid()) + 1
	if _, err := file.SetAttributes(SetAttrRequest{SetUID: true, UID: otherUID}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("chown to different uid = %v, want ErrPermissionDenied", err)
	}
	otherGID := uint32(os.Getgid()) + 1
	if _, err := file.SetAttributes(SetAttrRequest{SetGID: true, GID: otherGID}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("chgrp to different gid = %v, want ErrPermissionDenied", err)
	}

	// Setting ownership to the current values is a no-op, not an error.
	if _, err := file.SetAttributes(SetAttrRequest{
		SetUID: true, UID: uint32(os.Getuid()),
		SetGID: true, GID: uint32(os.Getgid()),
	}); err != nil {
		t.Fatalf("no-op chown = %v", err)
	}
}

func TestSetAttributesModeOnVirtual(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("mode me"))

	attr, err := file.SetAttributes(SetAttrRequest{SetMode: true, Mode: 0o100755})
	if err != nil {
		t.Fatalf("SetAttributes failed: %v", err)
	}
	// File-type bits are stripped; only permissions stick.
	if attr.Mode != 0o755 {
		t.Fatalf("mode = %o, want 755", attr.Mode)
	}
	if file.IsMaterialized() {
		t.Fatal("mode change materialized the file")
	}
}

func TestSetAttributesSizeOnVirtualFails(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("cannot truncate virtual"))

	if _, err := file.SetAttributes(SetAttrRequest{SetSize: true, Size: 0}); !errors.Is(err, ErrNotWritable) {
		t.Fatalf("truncate on virtual = %v, want ErrNotWritable", err)
	}
	if _, err := file.SetAttributes(SetAttrRequest{MtimeNow: true}); !errors.Is(err, ErrNotWritable) {
		t.Fatalf("touch on virtual = %v, want ErrNotWritable", err)
	}
}

func TestSetAttributesTruncateInvalidatesHash(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("0123456789"))

	if err := file.Open(true, false); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := file.ContentHash(); err != nil {
		t.Fatal(err)
	}

	attr, err := file.SetAttributes(SetAttrRequest{SetSize: true, Size: 4})
	if err != nil {
		t.Fatalf("truncate failed: %v", err)
	}
	if attr.Size != 4 {
		t.Fatalf("size after truncate = %d", attr.Size)
	}

	hash, err := file.ContentHash()
	if err != nil {
		t.Fatalf("ContentHash failed: %v", err)
	}
	if hash != object.HashBytes([]byte("0123")) {
		t.Fatalf("hash after truncate = %s, want sha1(0123)", hash)
	}
}

func TestSetAttributesTimesTriState(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("timed"))
	if err := file.Open(true, false); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	explicit := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)
	env.clock.Set(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))

	// Explicit mtime, atime set to "now", both in one request.
	attr, err := file.SetAttributes(SetAttrRequest{
		SetMtime: true, Mtime: explicit,
		AtimeNow: true,
	})
	if err != nil {
		t.Fatalf("SetAttributes failed: %v", err)
	}
	if !attr.Mtime.Equal(explicit) {
		t.Errorf("mtime = %v, want %v", attr.Mtime, explicit)
	}
	if !attr.Atime.Equal(env.clock.Now()) {
		t.Errorf("atime = %v, want clock now %v", attr.Atime, env.clock.Now())
	}

	// A request touching only atime preserves mtime.
	later := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	attr, err = file.SetAttributes(SetAttrRequest{SetAtime: true, Atime: later})
	if err != nil {
		t.Fatalf("SetAttributes failed: %v", err)
	}
	if !attr.Mtime.Equal(explicit) {
		t.Errorf("mtime changed to %v, want preserved %v", attr.Mtime, explicit)
	}
	if !attr.Atime.Equal(later) {
		t.Errorf("atime = %v, want %v", attr.Atime, later)
	}
}

func TestOpenReadKeepsVirtual(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("read only"))

	if err := file.Open(false, false); err != nil {
		t.Fatalf("read open failed: %v", err)
	}
	if file.IsMaterialized() {
		t.Fatal("read-only open materialized the file")
	}
	if file.OpenHandles() != 1 {
		t.Fatalf("open handle count = %d", file.OpenHandles())
	}
	file.Release()
	if file.OpenHandles() != 0 {
		t.Fatalf("handle count after release = %d", file.OpenHandles())
	}
}

func TestOpenSymlinkForWriteFails(t *testing.T) {
	env := newTestEnv(t)
	hash := env.source.AddBlob([]byte("target/path"))
	link := NewVirtualFile(env.deps, 1, hash, object.KindSymlink, 0o644)

	if err := link.Open(true, false); !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("symlink write open = %v, want ErrInvalidOperation", err)
	}
	if err := link.Open(false, false); err != nil {
		t.Fatalf("symlink read open = %v", err)
	}

	target, err := link.Readlink()
	if err != nil || target != "target/path" {
		t.Fatalf("Readlink = %q, %v", target, err)
	}
}

func TestReadlinkOnRegularFails(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("not a link"))
	if _, err := file.Readlink(); !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("Readlink on regular = %v, want ErrInvalidOperation", err)
	}
}

func TestOpenUnknownKindIsInternalError(t *testing.T) {
	env := newTestEnv(t)
	hash := env.source.AddBlob([]byte("dir?"))
	bogus := NewVirtualFile(env.deps, 1, hash, object.KindTree, 0o755)

	err := bogus.Open(true, false)
	var internal *InternalError
	if !errors.As(err, &internal) {
		t.Fatalf("open with tree kind = %v, want InternalError", err)
	}
}

func TestHashTrustedFromStoredAttribute(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("attribute source"))
	if err := file.Open(true, false); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	// Plant a different (well-formed) hash in the attribute, then
	// build a fresh object over the same overlay file. The fresh
	// object must trust the stored attribute rather than recompute.
	planted := object.HashBytes([]byte("planted value"))
	plantedHex := object.FormatHash(planted)

	handle, err := env.overlay.Open(1)
	if err != nil {
		t.Fatalf("reopening overlay file: %v", err)
	}
	if err := handle.SetXattr(XattrContentHash, []byte(plantedHex)); err != nil {
		if errors.Is(err, overlay.ErrXattrUnsupported) {
			handle.Close()
			t.Skip("filesystem does not support user xattrs")
		}
		t.Fatalf("SetXattr failed: %v", err)
	}

	recovered := NewMaterializedFile(env.deps, 1, handle, object.KindRegular, 0o644)
	hash, err := recovered.ContentHash()
	if err != nil {
		t.Fatalf("ContentHash failed: %v", err)
	}
	if hash != planted {
		t.Fatalf("hash = %s, want planted %s", hash, planted)
	}
	if err := recovered.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestHashRecomputedWhenAttributeAbsent(t *testing.T) {
	env := newTestEnv(t)

	// Create overlay content directly, bypassing the file object, so
	// no integrity attribute exists.
	content := []byte("no attribute recorded")
	handle, err := env.overlay.Create(7, content, uint8(object.KindRegular), 0o644)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	recovered := NewMaterializedFile(env.deps, 7, handle, object.KindRegular, 0o644)
	hash, err := recovered.ContentHash()
	if err != nil {
		t.Fatalf("ContentHash failed: %v", err)
	}
	if hash != object.HashBytes(content) {
		t.Fatalf("recomputed hash = %s, want sha1 of content", hash)
	}
}

func TestFlushRefreshesHashAttribute(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("before"))
	if err := file.Open(true, false); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := file.Write([]byte("after!"), 0); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := file.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	handle, err := env.overlay.Open(1)
	if err != nil {
		t.Fatalf("reopening overlay file: %v", err)
	}
	defer handle.Close()
	value, present, err := handle.GetXattr(XattrContentHash)
	if err != nil {
		t.Fatalf("GetXattr failed: %v", err)
	}
	if !present {
		t.Skip("filesystem does not support user xattrs")
	}
	want := object.FormatHash(object.HashBytes([]byte("after!")))
	if string(value) != want {
		t.Fatalf("stored attribute = %s, want %s", value, want)
	}
}

func TestCloseIdempotent(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, []byte("closing"))
	if err := file.Open(true, false); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}

func TestConcurrentWritersSerialize(t *testing.T) {
	env := newTestEnv(t)
	file := env.newVirtual(t, 1, nil)
	if err := file.Open(true, true); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	// Each writer owns a distinct byte range; after all finish, every
	// range must hold its writer's byte and the hash must match the
	// final content.
	const writers = 8
	const chunk = 64
	var group errgroup.Group
	for i := 0; i < writers; i++ {
		writerIndex := i
		group.Go(func() error {
			payload := bytes.Repeat([]byte{byte('a' + writerIndex)}, chunk)
			_, err := file.Write(payload, int64(writerIndex*chunk))
			return err
		})
	}
	if err := group.Wait(); err != nil {
		t.Fatalf("concurrent writes failed: %v", err)
	}

	content, err := file.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(content) != writers*chunk {
		t.Fatalf("content length = %d, want %d", len(content), writers*chunk)
	}
	for i := 0; i < writers; i++ {
		expected := bytes.Repeat([]byte{byte('a' + i)}, chunk)
		if !bytes.Equal(content[i*chunk:(i+1)*chunk], expected) {
			t.Fatalf("range %d corrupted", i)
		}
	}

	hash, err := file.ContentHash()
	if err != nil {
		t.Fatalf("ContentHash failed: %v", err)
	}
	if hash != object.HashBytes(content) {
		t.Fatal("hash does not match final content")
	}
}
