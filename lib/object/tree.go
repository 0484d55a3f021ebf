// Copyright 2026 The Hollow Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/fxamacker/cbor/v2"
)

// Kind classifies a tree entry. Only regular files, symlinks, and
// subtrees exist in a snapshot; device nodes, sockets, and FIFOs are
// never committed.
type Kind uint8

const (
	// KindRegular is an ordinary file backed by a blob.
	KindRegular Kind = iota
	// KindSymlink is a symbolic link whose blob holds the target path.
	KindSymlink
	// KindTree is a directory backed by a tree object.
	KindTree
)

// String returns the kind name for logs and errors.
func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindSymlink:
		return "symlink"
	case KindTree:
		return "tree"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// TreeEntry is one name in a directory tree.
type TreeEntry struct {
	// Name is the entry's name within its parent directory. Never
	// contains a slash.
	Name string `cbor:"name"`

	// Kind is the entry type.
	Kind Kind `cbor:"kind"`

	// Executable marks a regular file as executable. Ignored for
	// other kinds. The snapshot model tracks only this one permission
	// bit; full modes are synthesized at projection time (0755 for
	// executable, 0644 otherwise).
	Executable bool `cbor:"executable,omitempty"`

	// Hash identifies the blob (regular, symlink) or tree (tree)
	// object holding the entry's content.
	Hash Hash `cbor:"hash"`
}

// Mode returns the permission bits projected for this entry.
func (e TreeEntry) Mode() uint32 {
	if e.Kind == KindRegular && e.Executable {
		return 0o755
	}
	return 0o644
}

// Tree is a directory object: a list of entries sorted by name.
type Tree struct {
	Entries []TreeEntry `cbor:"entries"`
}

// Lookup returns the entry with the given name, or false.
func (t *Tree) Lookup(name string) (TreeEntry, bool) {
	index := sort.Search(len(t.Entries), func(i int) bool {
		return t.Entries[i].Name >= name
	})
	if index < len(t.Entries) && t.Entries[index].Name == name {
		return t.Entries[index], true
	}
	return TreeEntry{}, false
}

// Commit names a root tree. It is the unit the CLI mounts.
type Commit struct {
	// Tree is the root tree hash.
	Tree Hash `cbor:"tree"`

	// Parents are the parent commit hashes, oldest first.
	Parents []Hash `cbor:"parents,omitempty"`

	// Message is the human-readable commit description.
	Message string `cbor:"message,omitempty"`
}

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2) so the
// same logical tree always produces identical bytes, and therefore an
// identical hash. decMode accepts standard CBOR and ignores unknown
// fields for forward compatibility.
var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("object: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("object: CBOR decoder initialization failed: " + err.Error())
	}
}

// EncodeTree serializes a tree. Entries must already be sorted by
// name; Lookup relies on the order and encoding preserves it.
func EncodeTree(tree *Tree) ([]byte, error) {
	for i := 1; i < len(tree.Entries); i++ {
		if tree.Entries[i-1].Name >= tree.Entries[i].Name {
			return nil, fmt.Errorf("tree entries not sorted: %q before %q",
				tree.Entries[i-1].Name, tree.Entries[i].Name)
		}
	}
	data, err := encMode.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("encoding tree: %w", err)
	}
	return data, nil
}

// DecodeTree deserializes a tree object.
func DecodeTree(data []byte) (*Tree, error) {
	var tree Tree
	if err := decMode.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("decoding tree: %w", err)
	}
	return &tree, nil
}

// EncodeCommit serializes a commit object.
func EncodeCommit(commit *Commit) ([]byte, error) {
	data, err := encMode.Marshal(commit)
	if err != nil {
		return nil, fmt.Errorf("encoding commit: %w", err)
	}
	return data, nil
}

// DecodeCommit deserializes a commit object.
func DecodeCommit(data []byte) (*Commit, error) {
	var commit Commit
	if err := decMode.Unmarshal(data, &commit); err != nil {
		return nil, fmt.Errorf("decoding commit: %w", err)
	}
	return &commit, nil
}
