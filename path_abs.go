// Package pathabs provides absolute, serializable path types.
//
// The package provides the following types:
//   - PathAbs: an absolute (canonicalized) path that is guaranteed (when
//     created) to exist.
//   - PathFile: a PathAbs that is guaranteed to be a regular file, with
//     associated read/write methods.
//   - PathDir: a PathAbs that is guaranteed to be a directory, with
//     associated creation and listing methods.
//   - PathType: a path known to be either a file or a directory, produced by
//     PathDir.List.
//
// Every guarantee reflects the state of the filesystem at construction time
// only; the filesystem may diverge afterwards. Constructors re-hit the
// filesystem on every call and nothing is cached.
//
// All types serialize to a single text field through the pathenc encoding,
// which round-trips arbitrary path bytes, including byte sequences that are
// not valid UTF-8.
package pathabs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// PathAbs is an absolute (canonicalized) path that is guaranteed (when
// created) to exist.
//
// PathAbs is a comparable value type; two values are equal when they hold the
// same canonical path and the same provenance (a Mock value never equals a
// checked one, see Mock).
type PathAbs struct {
	path string
	mock bool
}

// New canonicalizes path, resolving relative components and symlinks against
// the current working directory, and returns it as a PathAbs. The path must
// exist or an error wrapping ErrNotFound is returned.
func New(path string) (PathAbs, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return PathAbs{}, newNotFoundError(fmt.Sprintf("failed to resolve path '%s'", path), err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return PathAbs{}, newNotFoundError(fmt.Sprintf("failed to canonicalize path '%s'", path), err)
	}
	return PathAbs{path: canonical}, nil
}

// Mock constructs a PathAbs without any validation, for test fixtures.
//
// The returned value is NOT checked for existence and is NOT canonicalized in
// any way; every guarantee the type normally carries is void. A Mock value
// never compares equal to a checked value, even when both hold identical
// text. No production constructor produces a Mock value.
func Mock(path string) PathAbs {
	return PathAbs{path: path, mock: true}
}

// IntoFile resolves the PathAbs as a PathFile. Returns an error wrapping
// ErrKindMismatch if it is not a regular file.
func (p PathAbs) IntoFile() (PathFile, error) {
	return FileFromAbs(p)
}

// IntoDir resolves the PathAbs as a PathDir. Returns an error wrapping
// ErrKindMismatch if it is not a directory.
func (p PathAbs) IntoDir() (PathDir, error) {
	return DirFromAbs(p)
}

// ParentDir returns the parent directory of this path as a PathDir, or false
// for a root path with no parent.
//
// This makes no filesystem calls: the parent of an existing absolute path is,
// by construction, itself an existing directory.
func (p PathAbs) ParentDir() (PathDir, bool) {
	parent := filepath.Dir(p.path)
	if parent == p.path {
		return PathDir{}, false
	}
	return PathDir{abs: PathAbs{path: parent, mock: p.mock}}, true
}

// String returns the canonical path text.
func (p PathAbs) String() string {
	return p.path
}

// Join appends elem to the path and returns the result as a plain string,
// suitable for feeding to the checked constructors.
func (p PathAbs) Join(elem ...string) string {
	return filepath.Join(append([]string{p.path}, elem...)...)
}

// Compare orders paths by their canonical text; a Mock value sorts after a
// checked value of the same text.
func (p PathAbs) Compare(other PathAbs) int {
	if c := strings.Compare(p.path, other.path); c != 0 {
		return c
	}
	switch {
	case p.mock == other.mock:
		return 0
	case p.mock:
		return 1
	default:
		return -1
	}
}

// IsMock reports whether the value was constructed by Mock.
func (p PathAbs) IsMock() bool {
	return p.mock
}

// Exists re-probes the filesystem and reports whether the path currently
// exists. The result is advisory: the filesystem may change again before the
// caller acts on it.
func (p PathAbs) Exists() bool {
	_, err := os.Stat(p.path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// IsFile re-probes the filesystem and reports whether the path is currently a
// regular file.
func (p PathAbs) IsFile() bool {
	info, err := os.Stat(p.path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir re-probes the filesystem and reports whether the path is currently a
// directory.
func (p PathAbs) IsDir() bool {
	info, err := os.Stat(p.path)
	return err == nil && info.IsDir()
}
