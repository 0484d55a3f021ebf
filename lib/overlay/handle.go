// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

package overlay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// unixNoFollow keeps overlay opens from traversing a symlink planted
// at an overlay path.
const unixNoFollow = syscall.O_NOFOLLOW

// ErrXattrUnsupported reports that the filesystem under the overlay
// root does not support user extended attributes. The integrity
// cache degrades to recompute-on-demand in that case.
var ErrXattrUnsupported = errors.New("extended attributes not supported")

// Attr is the overlay file metadata returned by Stat.
type Attr struct {
	Size  int64
	Atime time.Time
	Mtime time.Time
	Ctime time.Time
}

// Handle is an open read/write descriptor onto one overlay file. A
// Handle is exclusively owned by its file object and closed exactly
// once. Positioned reads and writes never move a shared file offset,
// so the descriptor can back multiple kernel file handles.
type Handle struct {
	file *os.File
	id   FileID
}

// ID returns the FileID this handle is bound to.
func (h *Handle) ID() FileID { return h.id }

// ReadAt reads up to len(dest) bytes at the given offset. Returns the
// number of bytes read; a read past end-of-file returns 0 bytes and
// no error.
func (h *Handle) ReadAt(dest []byte, offset int64) (int, error) {
	n, err := h.file.ReadAt(dest, offset)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("reading overlay file %s at %d: %w", h.id, offset, err)
	}
	return n, nil
}

// WriteAt writes data at the given offset, extending the file if
// needed.
func (h *Handle) WriteAt(data []byte, offset int64) (int, error) {
	n, err := h.file.WriteAt(data, offset)
	if err != nil {
		return n, fmt.Errorf("writing overlay file %s at %d: %w", h.id, offset, err)
	}
	return n, nil
}

// Truncate sets the file size.
func (h *Handle) Truncate(size int64) error {
	if err := h.file.Truncate(size); err != nil {
		return fmt.Errorf("truncating overlay file %s to %d: %w", h.id, size, err)
	}
	return nil
}

// Stat returns the current size and timestamps of the overlay file.
func (h *Handle) Stat() (Attr, error) {
	var stat unix.Stat_t
	if err := unix.Fstat(int(h.file.Fd()), &stat); err != nil {
		return Attr{}, fmt.Errorf("stat overlay file %s: %w", h.id, err)
	}
	return Attr{
		Size:  stat.Size,
		Atime: time.Unix(stat.Atim.Sec, stat.Atim.Nsec),
		Mtime: time.Unix(stat.Mtim.Sec, stat.Mtim.Nsec),
		Ctime: time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec),
	}, nil
}

// SetTimes updates the file's access and modification times.
func (h *Handle) SetTimes(atime, mtime time.Time) error {
	times := []unix.Timespec{
		unix.NsecToTimespec(atime.UnixNano()),
		unix.NsecToTimespec(mtime.UnixNano()),
	}
	if err := unix.UtimesNanoAt(int(h.file.Fd()), "", times, unix.AT_EMPTY_PATH); err != nil {
		return fmt.Errorf("setting times on overlay file %s: %w", h.id, err)
	}
	return nil
}

// Sync flushes the file to stable storage. With durable false, only
// data (not metadata) is required to reach disk.
func (h *Handle) Sync(durable bool) error {
	var err error
	if durable {
		err = h.file.Sync()
	} else {
		err = unix.Fdatasync(int(h.file.Fd()))
	}
	if err != nil {
		return fmt.Errorf("syncing overlay file %s: %w", h.id, err)
	}
	return nil
}

// SetXattr stores a user extended attribute on the overlay file.
// Returns ErrXattrUnsupported (wrapped) when the underlying
// filesystem has no xattr support; callers treat the attribute as a
// best-effort side channel.
func (h *Handle) SetXattr(name string, value []byte) error {
	err := unix.Fsetxattr(int(h.file.Fd()), name, value, 0)
	if err == nil {
		return nil
	}
	if errors.Is(err, unix.ENOTSUP) || errors.Is(err, unix.EOPNOTSUPP) {
		return fmt.Errorf("setting xattr %s on overlay file %s: %w", name, h.id, ErrXattrUnsupported)
	}
	return fmt.Errorf("setting xattr %s on overlay file %s: %w", name, h.id, err)
}

// GetXattr reads a user extended attribute. The second return value
// is false when the attribute is absent or the filesystem does not
// support xattrs; that is not an error.
func (h *Handle) GetXattr(name string) ([]byte, bool, error) {
	// Probe for the size first. 64 bytes covers the integrity hash,
	// but handle arbitrary sizes anyway.
	size, err := unix.Fgetxattr(int(h.file.Fd()), name, nil)
	if err != nil {
		if errors.Is(err, unix.ENODATA) || errors.Is(err, unix.ENOTSUP) || errors.Is(err, unix.EOPNOTSUPP) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading xattr %s on overlay file %s: %w", name, h.id, err)
	}

	value := make([]byte, size)
	n, err := unix.Fgetxattr(int(h.file.Fd()), name, value)
	if err != nil {
		if errors.Is(err, unix.ENODATA) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading xattr %s on overlay file %s: %w", name, h.id, err)
	}
	return value[:n], true, nil
}

// Close releases the descriptor. Safe to call once only; the owning
// file object enforces that.
func (h *Handle) Close() error {
	if err := h.file.Close(); err != nil {
		return fmt.Errorf("closing overlay file %s: %w", h.id, err)
	}
	return nil
}
