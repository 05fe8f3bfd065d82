package pathabs

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// PathFile is a PathAbs that is guaranteed (when created) to be a regular
// file.
type PathFile struct {
	abs PathAbs
}

// NewFile canonicalizes path and narrows it to a PathFile. The path must
// exist and be a regular file.
func NewFile(path string) (PathFile, error) {
	abs, err := New(path)
	if err != nil {
		return PathFile{}, err
	}
	return FileFromAbs(abs)
}

// FileFromAbs narrows an existing PathAbs to a PathFile. Returns an error
// wrapping ErrKindMismatch if the entry is a directory or any other non-file
// kind.
func FileFromAbs(abs PathAbs) (PathFile, error) {
	info, err := os.Stat(abs.path)
	if err != nil {
		return PathFile{}, newNotFoundError(fmt.Sprintf("failed to stat '%s'", abs), err)
	}
	if !info.Mode().IsRegular() {
		return PathFile{}, newKindMismatchError(fmt.Sprintf("path '%s' is not a file", abs))
	}
	return PathFile{abs: abs}, nil
}

// CreateFile creates the file at path, truncating it if it already exists,
// then canonicalizes and narrows it. All intermediate directories must
// already exist.
func CreateFile(path string) (PathFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return PathFile{}, newIOError(fmt.Sprintf("failed to create file '%s'", path), err)
	}
	if err := f.Close(); err != nil {
		return PathFile{}, newIOError(fmt.Sprintf("failed to close file '%s'", path), err)
	}
	return NewFile(path)
}

// Abs returns the underlying PathAbs.
func (f PathFile) Abs() PathAbs {
	return f.abs
}

// String returns the canonical path text.
func (f PathFile) String() string {
	return f.abs.path
}

// ParentDir returns the parent directory of the file. A file is never a
// filesystem root, so the parent always exists; no filesystem call is made.
func (f PathFile) ParentDir() PathDir {
	d, _ := f.abs.ParentDir()
	return d
}

// Read returns the entire contents of the file.
func (f PathFile) Read() ([]byte, error) {
	data, err := os.ReadFile(f.abs.path)
	if err != nil {
		return nil, newIOError(fmt.Sprintf("failed to read file '%s'", f.abs), err)
	}
	return data, nil
}

// ReadString returns the entire contents of the file as a string.
func (f PathFile) ReadString() (string, error) {
	data, err := f.Read()
	return string(data), err
}

// Write replaces the contents of the file with data. No partial-write
// recovery is attempted; the underlying error is surfaced as-is.
func (f PathFile) Write(data []byte) error {
	if err := os.WriteFile(f.abs.path, data, 0666); err != nil {
		return newIOError(fmt.Sprintf("failed to write file '%s'", f.abs), err)
	}
	return nil
}

// WriteString replaces the contents of the file with s.
func (f PathFile) WriteString(s string) error {
	return f.Write([]byte(s))
}

// Append appends data to the end of the file.
func (f PathFile) Append(data []byte) error {
	file, err := os.OpenFile(f.abs.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return newIOError(fmt.Sprintf("failed to open file '%s'", f.abs), err)
	}
	_, writeErr := file.Write(data)
	closeErr := file.Close()
	if writeErr != nil {
		return newIOError(fmt.Sprintf("failed to append to file '%s'", f.abs), writeErr)
	}
	if closeErr != nil {
		return newIOError(fmt.Sprintf("failed to close file '%s'", f.abs), closeErr)
	}
	return nil
}

// AppendString appends s to the end of the file.
func (f PathFile) AppendString(s string) error {
	return f.Append([]byte(s))
}

// Remove deletes the file. The handle is stale afterwards.
func (f PathFile) Remove() error {
	if err := os.Remove(f.abs.path); err != nil {
		return newIOError(fmt.Sprintf("failed to remove file '%s'", f.abs), err)
	}
	return nil
}

// Rename moves the file to the path named by to and returns a handle for the
// new location. The receiver is stale afterwards.
func (f PathFile) Rename(to string) (PathFile, error) {
	if err := os.Rename(f.abs.path, to); err != nil {
		return PathFile{}, newIOError(fmt.Sprintf("failed to rename '%s' to '%s'", f.abs, to), err)
	}
	return NewFile(to)
}

// CopyTo copies the contents of the file to the path named by to, creating or
// truncating it, and returns a handle for the copy.
func (f PathFile) CopyTo(to string) (copied PathFile, err error) {
	src, err := os.Open(f.abs.path)
	if err != nil {
		return PathFile{}, newIOError(fmt.Sprintf("failed to open file '%s'", f.abs), err)
	}
	defer func() {
		closeErr := src.Close()
		if closeErr != nil {
			err = errors.Join(err, newIOError(fmt.Sprintf("failed to close file '%s'", f.abs), closeErr))
		}
	}()

	dst, err := os.Create(to)
	if err != nil {
		return PathFile{}, newIOError(fmt.Sprintf("failed to create file '%s'", to), err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return PathFile{}, newIOError(fmt.Sprintf("failed to copy '%s' to '%s'", f.abs, to), err)
	}
	if err := dst.Close(); err != nil {
		return PathFile{}, newIOError(fmt.Sprintf("failed to close file '%s'", to), err)
	}
	return NewFile(to)
}
