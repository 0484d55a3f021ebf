// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

package inode

import (
	"time"

	"github.com/hollowfs/hollow/lib/object"
)

// Attributes is the stat result for a file object. For virtual files
// all three timestamps equal the object's creation time (an immutable
// blob has no timestamp history of its own); for materialized files
// they come from the overlay file, with the mode and kind overlaid
// from the object's in-memory record.
type Attributes struct {
	Kind  object.Kind
	Mode  uint32
	Size  int64
	Atime time.Time
	Mtime time.Time
	Ctime time.Time
}

// SetAttrRequest describes a setattr call. Each component has a
// validity flag mirroring FUSE SETATTR semantics; times additionally
// support the "set to current time" mode. Components with no flag set
// are preserved.
type SetAttrRequest struct {
	SetSize bool
	Size    int64

	SetMode bool
	Mode    uint32

	SetUID bool
	UID    uint32

	SetGID bool
	GID    uint32

	SetAtime bool
	Atime    time.Time
	AtimeNow bool

	SetMtime bool
	Mtime    time.Time
	MtimeNow bool
}

// touchesOverlay reports whether the request needs an open overlay
// handle: size and time changes apply to overlay state, while mode
// and (rejected) ownership changes do not.
func (r *SetAttrRequest) touchesOverlay() bool {
	return r.SetSize || r.SetAtime || r.SetMtime || r.AtimeNow || r.MtimeNow
}

// resolveTime applies the requested/now/preserve tri-state for one
// time component. wanted is the caller-supplied value, current the
// preserved fallback.
func resolveTime(useWanted, useNow bool, wanted, current, now time.Time) time.Time {
	if useWanted {
		return wanted
	}
	if useNow {
		return now
	}
	return current
}
