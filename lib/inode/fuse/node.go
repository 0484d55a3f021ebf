// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

package fuse

import (
	"context"
	"syscall"

	gofuse "github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"

	"github.com/hollowfs/hollow/lib/inode"
	"github.com/hollowfs/hollow/lib/object"
)

// treeNode is a directory backed by an immutable tree object. The
// tree itself never changes under a mount; only file content does,
// through materialization.
type treeNode struct {
	gofuse.Inode
	projection *projection
	treeHash   object.Hash
}

var _ gofuse.InodeEmbedder = (*treeNode)(nil)
var _ gofuse.NodeLookuper = (*treeNode)(nil)
var _ gofuse.NodeReaddirer = (*treeNode)(nil)
var _ gofuse.NodeGetattrer = (*treeNode)(nil)

func (t *treeNode) Getattr(_ context.Context, _ gofuse.FileHandle, out *fuse.AttrOut) syscall.Errno {
	out.Mode = syscall.S_IFDIR | 0o755
	return 0
}

func (t *treeNode) Lookup(ctx context.Context, name string, out *fuse.EntryOut) (*gofuse.Inode, syscall.Errno) {
	logger := t.projection.options.Logger

	tree, err := t.projection.loadTree(t.treeHash)
	if err != nil {
		return nil, errnoFor(logger, "lookup", err)
	}
	entry, ok := tree.Lookup(name)
	if !ok {
		return nil, syscall.ENOENT
	}

	if entry.Kind == object.KindTree {
		child := t.NewPersistentInode(ctx, &treeNode{
			projection: t.projection,
			treeHash:   entry.Hash,
		}, gofuse.StableAttr{Mode: syscall.S_IFDIR})
		out.Mode = syscall.S_IFDIR | 0o755
		return child, 0
	}

	file, err := t.projection.fileFor(t.treeHash, entry)
	if err != nil {
		return nil, errnoFor(logger, "lookup", err)
	}

	node := &fileNode{projection: t.projection, file: file}
	stableMode := uint32(syscall.S_IFREG)
	if entry.Kind == object.KindSymlink {
		stableMode = syscall.S_IFLNK
	}
	child := t.NewPersistentInode(ctx, node, gofuse.StableAttr{
		Mode: stableMode,
		Ino:  uint64(file.ID()),
	})

	attr, err := file.Stat()
	if err != nil {
		return nil, errnoFor(logger, "lookup", err)
	}
	fillAttr(&out.Attr, attr)
	return child, 0
}

func (t *treeNode) Readdir(_ context.Context) (gofuse.DirStream, syscall.Errno) {
	tree, err := t.projection.loadTree(t.treeHash)
	if err != nil {
		return nil, errnoFor(t.projection.options.Logger, "readdir", err)
	}

	entries := make([]fuse.DirEntry, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		mode := uint32(syscall.S_IFREG)
		switch entry.Kind {
		case object.KindTree:
			mode = syscall.S_IFDIR
		case object.KindSymlink:
			mode = syscall.S_IFLNK
		}
		entries = append(entries, fuse.DirEntry{Name: entry.Name, Mode: mode})
	}
	return gofuse.NewListDirStream(entries), 0
}

// fileNode is a regular file or symlink. All state lives in the
// shared FileObject; the node is a thin FUSE adapter around it.
type fileNode struct {
	gofuse.Inode
	projection *projection
	file       *inode.FileObject
}

var _ gofuse.InodeEmbedder = (*fileNode)(nil)
var _ gofuse.NodeGetattrer = (*fileNode)(nil)
var _ gofuse.NodeSetattrer = (*fileNode)(nil)
var _ gofuse.NodeOpener = (*fileNode)(nil)
var _ gofuse.NodeReader = (*fileNode)(nil)
var _ gofuse.NodeWriter = (*fileNode)(nil)
var _ gofuse.NodeFlusher = (*fileNode)(nil)
var _ gofuse.NodeFsyncer = (*fileNode)(nil)
var _ gofuse.NodeReleaser = (*fileNode)(nil)
var _ gofuse.NodeReadlinker = (*fileNode)(nil)
var _ gofuse.NodeGetxattrer = (*fileNode)(nil)
var _ gofuse.NodeListxattrer = (*fileNode)(nil)

// fillAttr copies inode attributes into a FUSE attr struct.
func fillAttr(out *fuse.Attr, attr inode.Attributes) {
	typeBits := uint32(syscall.S_IFREG)
	if attr.Kind == object.KindSymlink {
		typeBits = syscall.S_IFLNK
	}
	out.Mode = typeBits | attr.Mode
	out.Size = uint64(attr.Size)
	out.Blocks = (out.Size + 511) / 512
	out.Nlink = 1
	atime, mtime, ctime := attr.Atime, attr.Mtime, attr.Ctime
	out.SetTimes(&atime, &mtime, &ctime)
}

func (n *fileNode) Getattr(_ context.Context, _ gofuse.FileHandle, out *fuse.AttrOut) syscall.Errno {
	attr, err := n.file.Stat()
	if err != nil {
		return errnoFor(n.projection.options.Logger, "getattr", err)
	}
	fillAttr(&out.Attr, attr)
	return 0
}

func (n *fileNode) Setattr(_ context.Context, _ gofuse.FileHandle, in *fuse.SetAttrIn, out *fuse.AttrOut) syscall.Errno {
	request := inode.SetAttrRequest{
		AtimeNow: in.Valid&fuse.FATTR_ATIME_NOW != 0,
		MtimeNow: in.Valid&fuse.FATTR_MTIME_NOW != 0,
	}
	if size, ok := in.GetSize(); ok {
		request.SetSize = true
		request.Size = int64(size)
	}
	if mode, ok := in.GetMode(); ok {
		request.SetMode = true
		request.Mode = mode
	}
	if uid, ok := in.GetUID(); ok {
		request.SetUID = true
		request.UID = uid
	}
	if gid, ok := in.GetGID(); ok {
		request.SetGID = true
		request.GID = gid
	}
	if atime, ok := in.GetATime(); ok && !request.AtimeNow {
		request.SetAtime = true
		request.Atime = atime
	}
	if mtime, ok := in.GetMTime(); ok && !request.MtimeNow {
		request.SetMtime = true
		request.Mtime = mtime
	}

	attr, err := n.file.SetAttributes(request)
	if err != nil {
		return errnoFor(n.projection.options.Logger, "setattr", err)
	}
	fillAttr(&out.Attr, attr)
	return 0
}

func (n *fileNode) Open(_ context.Context, flags uint32) (gofuse.FileHandle, uint32, syscall.Errno) {
	writable := flags&(syscall.O_WRONLY|syscall.O_RDWR) != 0
	truncate := flags&syscall.O_TRUNC != 0

	if n.file.Kind() == object.KindSymlink && writable {
		// open(2) reports ELOOP for O_NOFOLLOW opens of a symlink;
		// there is no write path to a link target here.
		return nil, 0, syscall.ELOOP
	}

	if err := n.file.Open(writable, truncate); err != nil {
		return nil, 0, errnoFor(n.projection.options.Logger, "open", err)
	}

	if !writable {
		// Content only changes through this mount, so the kernel
		// page cache stays valid across opens.
		return nil, fuse.FOPEN_KEEP_CACHE, 0
	}
	return nil, 0, 0
}

func (n *fileNode) Read(_ context.Context, _ gofuse.FileHandle, dest []byte, off int64) (fuse.ReadResult, syscall.Errno) {
	data, err := n.file.Read(len(dest), off)
	if err != nil {
		return nil, errnoFor(n.projection.options.Logger, "read", err)
	}
	copy(dest, data)
	return fuse.ReadResultData(dest[:len(data)]), 0
}

func (n *fileNode) Write(_ context.Context, _ gofuse.FileHandle, data []byte, off int64) (uint32, syscall.Errno) {
	written, err := n.file.Write(data, off)
	if err != nil {
		return 0, errnoFor(n.projection.options.Logger, "write", err)
	}
	return uint32(written), 0
}

func (n *fileNode) Flush(_ context.Context, _ gofuse.FileHandle) syscall.Errno {
	if err := n.file.Flush(); err != nil {
		return errnoFor(n.projection.options.Logger, "flush", err)
	}
	return 0
}

func (n *fileNode) Fsync(_ context.Context, _ gofuse.FileHandle, flags uint32) syscall.Errno {
	// Bit 0 of the FUSE fsync flags is the datasync bit.
	durable := flags&1 == 0
	if err := n.file.Fsync(durable); err != nil {
		return errnoFor(n.projection.options.Logger, "fsync", err)
	}
	return 0
}

func (n *fileNode) Release(_ context.Context, _ gofuse.FileHandle) syscall.Errno {
	n.file.Release()
	return 0
}

func (n *fileNode) Readlink(_ context.Context) ([]byte, syscall.Errno) {
	target, err := n.file.Readlink()
	if err != nil {
		return nil, errnoFor(n.projection.options.Logger, "readlink", err)
	}
	return []byte(target), 0
}

// Getxattr serves the content hash attribute for regular files, the
// same integrity tag the inode layer caches on overlay files.
func (n *fileNode) Getxattr(_ context.Context, attr string, dest []byte) (uint32, syscall.Errno) {
	if attr != inode.XattrContentHash || n.file.Kind() != object.KindRegular {
		return 0, syscall.ENODATA
	}
	hash, err := n.file.ContentHash()
	if err != nil {
		return 0, errnoFor(n.projection.options.Logger, "getxattr", err)
	}
	hexDigest := object.FormatHash(hash)
	if len(dest) < len(hexDigest) {
		return uint32(len(hexDigest)), syscall.ERANGE
	}
	return uint32(copy(dest, hexDigest)), 0
}

func (n *fileNode) Listxattr(_ context.Context, dest []byte) (uint32, syscall.Errno) {
	if n.file.Kind() != object.KindRegular {
		return 0, 0
	}
	// One attribute, NUL-terminated per the listxattr convention.
	name := inode.XattrContentHash + "\x00"
	if len(dest) < len(name) {
		return uint32(len(name)), syscall.ERANGE
	}
	return uint32(copy(dest, name)), 0
}
