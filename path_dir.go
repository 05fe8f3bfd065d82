package pathabs

import (
	"fmt"
	"io"
	"iter"
	"os"
)

// PathDir is a PathAbs that is guaranteed (when created) to be a directory.
type PathDir struct {
	abs PathAbs
}

// NewDir canonicalizes path and narrows it to a PathDir. The path must exist
// and be a directory.
func NewDir(path string) (PathDir, error) {
	abs, err := New(path)
	if err != nil {
		return PathDir{}, err
	}
	return DirFromAbs(abs)
}

// DirFromAbs narrows an existing PathAbs to a PathDir. Returns an error
// wrapping ErrKindMismatch if the entry is not a directory.
func DirFromAbs(abs PathAbs) (PathDir, error) {
	info, err := os.Stat(abs.path)
	if err != nil {
		return PathDir{}, newNotFoundError(fmt.Sprintf("failed to stat '%s'", abs), err)
	}
	if !info.IsDir() {
		return PathDir{}, newKindMismatchError(fmt.Sprintf("path '%s' is not a directory", abs))
	}
	return PathDir{abs: abs}, nil
}

// CreateDir creates exactly one new directory level at path, then
// canonicalizes and narrows it. The parent directory must already exist, and
// the directory itself must not.
func CreateDir(path string) (PathDir, error) {
	if err := os.Mkdir(path, 0777); err != nil {
		return PathDir{}, newIOError(fmt.Sprintf("failed to create directory '%s'", path), err)
	}
	return NewDir(path)
}

// CreateDirAll creates the directory at path along with all missing
// intermediate directories. It succeeds if the full path already exists as a
// directory.
func CreateDirAll(path string) (PathDir, error) {
	if err := os.MkdirAll(path, 0777); err != nil {
		return PathDir{}, newIOError(fmt.Sprintf("failed to create directory '%s'", path), err)
	}
	return NewDir(path)
}

// ReadDir batch size; children are statted as the caller advances, not up
// front.
const listBatchSize = 64

// List returns a lazy, single-pass sequence over the direct children of the
// directory, in the order the filesystem reports them (not sorted). Each
// child arrives already narrowed into a file or directory PathType.
//
// A failure to narrow one entry (for example, the entry was removed between
// the directory read and the stat, or it is a socket or device) yields an
// error for that entry only; the rest of the sequence continues. Failing to
// open or read the directory itself yields a single error and ends the
// sequence. Re-listing requires a fresh range over the sequence.
func (d PathDir) List() iter.Seq2[PathType, error] {
	return func(yield func(PathType, error) bool) {
		dir, err := os.Open(d.abs.path)
		if err != nil {
			yield(PathType{}, newIOError(fmt.Sprintf("failed to open directory '%s'", d.abs), err))
			return
		}
		defer dir.Close()
		for {
			entries, err := dir.ReadDir(listBatchSize)
			for _, entry := range entries {
				if !yield(NewType(d.Join(entry.Name()))) {
					return
				}
			}
			if err != nil {
				if err != io.EOF {
					yield(PathType{}, newIOError(fmt.Sprintf("failed to read directory '%s'", d.abs), err))
				}
				return
			}
		}
	}
}

// Remove deletes the directory, which must be empty. The handle is stale
// afterwards.
func (d PathDir) Remove() error {
	if err := os.Remove(d.abs.path); err != nil {
		return newIOError(fmt.Sprintf("failed to remove directory '%s'", d.abs), err)
	}
	return nil
}

// RemoveAll deletes the directory and everything it contains. The handle is
// stale afterwards.
func (d PathDir) RemoveAll() error {
	if err := os.RemoveAll(d.abs.path); err != nil {
		return newIOError(fmt.Sprintf("failed to remove directory '%s'", d.abs), err)
	}
	return nil
}

// Abs returns the underlying PathAbs.
func (d PathDir) Abs() PathAbs {
	return d.abs
}

// String returns the canonical path text.
func (d PathDir) String() string {
	return d.abs.path
}

// Join appends elem to the directory path and returns the result as a plain
// string, suitable for feeding to the checked constructors.
func (d PathDir) Join(elem ...string) string {
	return d.abs.Join(elem...)
}

// ParentDir returns the parent directory, or false at a filesystem root. No
// filesystem call is made.
func (d PathDir) ParentDir() (PathDir, bool) {
	return d.abs.ParentDir()
}
