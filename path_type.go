package pathabs

import (
	"fmt"
	"os"
)

type pathKind int

const (
	kindFile pathKind = iota + 1
	kindDir
)

// PathType is a path known to be either a regular file or a directory. It is
// produced by PathDir.List, one value per child, so callers can branch on the
// kind without a second filesystem probe.
//
// PathType is a comparable value type.
type PathType struct {
	kind pathKind
	abs  PathAbs
}

// NewType canonicalizes path and classifies it as a file or a directory.
// Entries that are neither (sockets, device files, pipes) return an error
// wrapping ErrUnsupportedKind.
func NewType(path string) (PathType, error) {
	abs, err := New(path)
	if err != nil {
		return PathType{}, err
	}
	info, err := os.Stat(abs.path)
	if err != nil {
		return PathType{}, newNotFoundError(fmt.Sprintf("failed to stat '%s'", abs), err)
	}
	switch {
	case info.IsDir():
		return PathType{kind: kindDir, abs: abs}, nil
	case info.Mode().IsRegular():
		return PathType{kind: kindFile, abs: abs}, nil
	default:
		return PathType{}, newUnsupportedKindError(fmt.Sprintf("path '%s' is neither a file nor a directory", abs))
	}
}

// TypeOfFile wraps an existing PathFile as a PathType.
func TypeOfFile(f PathFile) PathType {
	return PathType{kind: kindFile, abs: f.abs}
}

// TypeOfDir wraps an existing PathDir as a PathType.
func TypeOfDir(d PathDir) PathType {
	return PathType{kind: kindDir, abs: d.abs}
}

// IsFile reports whether the entry is a regular file.
func (t PathType) IsFile() bool {
	return t.kind == kindFile
}

// IsDir reports whether the entry is a directory.
func (t PathType) IsDir() bool {
	return t.kind == kindDir
}

// Abs returns the underlying PathAbs.
func (t PathType) Abs() PathAbs {
	return t.abs
}

// String returns the canonical path text.
func (t PathType) String() string {
	return t.abs.path
}

// File unwraps the entry as a PathFile. Returns an error wrapping
// ErrKindMismatch if the entry is a directory.
func (t PathType) File() (PathFile, error) {
	if t.kind != kindFile {
		return PathFile{}, newKindMismatchError(fmt.Sprintf("path '%s' is not a file", t.abs))
	}
	return PathFile{abs: t.abs}, nil
}

// Dir unwraps the entry as a PathDir. Returns an error wrapping
// ErrKindMismatch if the entry is a file.
func (t PathType) Dir() (PathDir, error) {
	if t.kind != kindDir {
		return PathDir{}, newKindMismatchError(fmt.Sprintf("path '%s' is not a directory", t.abs))
	}
	return PathDir{abs: t.abs}, nil
}
