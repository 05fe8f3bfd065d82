// Package pathabsmust wraps the pathabs package with panic-based error
// handling.
//
// It provides the same constructors and operations as the root-level pathabs
// package, but instead of returning errors, all exported functions panic on
// failure. It is intended for tests, examples, and setup code where an error
// is unrecoverable anyway.
package pathabsmust

import (
	pathabs "github.com/Jumpaku/go-pathabs"
)

// New canonicalizes path into a PathAbs.
//
// It panics if the path does not exist or cannot be canonicalized.
func New(path string) pathabs.PathAbs {
	return must1(pathabs.New(path))
}

// NewFile canonicalizes path and narrows it to a PathFile.
//
// It panics if the path does not exist or is not a regular file.
func NewFile(path string) pathabs.PathFile {
	return must1(pathabs.NewFile(path))
}

// NewDir canonicalizes path and narrows it to a PathDir.
//
// It panics if the path does not exist or is not a directory.
func NewDir(path string) pathabs.PathDir {
	return must1(pathabs.NewDir(path))
}

// NewType canonicalizes path and classifies it as a file or a directory.
//
// It panics if the path does not exist or is neither kind.
func NewType(path string) pathabs.PathType {
	return must1(pathabs.NewType(path))
}

// FileFromAbs narrows an existing PathAbs to a PathFile.
//
// It panics if the entry is not a regular file.
func FileFromAbs(abs pathabs.PathAbs) pathabs.PathFile {
	return must1(pathabs.FileFromAbs(abs))
}

// DirFromAbs narrows an existing PathAbs to a PathDir.
//
// It panics if the entry is not a directory.
func DirFromAbs(abs pathabs.PathAbs) pathabs.PathDir {
	return must1(pathabs.DirFromAbs(abs))
}

// CreateFile creates or truncates the file at path and returns its handle.
//
// It panics if the file cannot be created.
func CreateFile(path string) pathabs.PathFile {
	return must1(pathabs.CreateFile(path))
}

// CreateDir creates one directory level at path and returns its handle.
//
// It panics if the directory cannot be created.
func CreateDir(path string) pathabs.PathDir {
	return must1(pathabs.CreateDir(path))
}

// CreateDirAll creates the directory at path with all missing intermediate
// levels and returns its handle.
//
// It panics if the directory cannot be created.
func CreateDirAll(path string) pathabs.PathDir {
	return must1(pathabs.CreateDirAll(path))
}

// Read returns the entire contents of the file.
//
// It panics if reading fails.
func Read(f pathabs.PathFile) []byte {
	return must1(f.Read())
}

// ReadString returns the entire contents of the file as a string.
//
// It panics if reading fails.
func ReadString(f pathabs.PathFile) string {
	return must1(f.ReadString())
}

// Write replaces the contents of the file with data.
//
// It panics if writing fails.
func Write(f pathabs.PathFile, data []byte) {
	must0(f.Write(data))
}

// WriteString replaces the contents of the file with s.
//
// It panics if writing fails.
func WriteString(f pathabs.PathFile, s string) {
	must0(f.WriteString(s))
}

// Append appends data to the end of the file.
//
// It panics if appending fails.
func Append(f pathabs.PathFile, data []byte) {
	must0(f.Append(data))
}

// AppendString appends s to the end of the file.
//
// It panics if appending fails.
func AppendString(f pathabs.PathFile, s string) {
	must0(f.AppendString(s))
}

// List materializes the children of the directory.
//
// It panics on the first listing or narrowing error.
func List(d pathabs.PathDir) []pathabs.PathType {
	var children []pathabs.PathType
	for child, err := range d.List() {
		must0(err)
		children = append(children, child)
	}
	return children
}

// File unwraps the entry as a PathFile.
//
// It panics if the entry is a directory.
func File(t pathabs.PathType) pathabs.PathFile {
	return must1(t.File())
}

// Dir unwraps the entry as a PathDir.
//
// It panics if the entry is a file.
func Dir(t pathabs.PathType) pathabs.PathDir {
	return must1(t.Dir())
}

// DecodeAbs decodes text and re-runs the checked PathAbs constructor.
//
// It panics if decoding or re-validation fails.
func DecodeAbs(text string) pathabs.PathAbs {
	return must1(pathabs.DecodeAbs(text))
}

// DecodeFile decodes text and re-runs the checked PathFile constructor.
//
// It panics if decoding or re-validation fails.
func DecodeFile(text string) pathabs.PathFile {
	return must1(pathabs.DecodeFile(text))
}

// DecodeDir decodes text and re-runs the checked PathDir constructor.
//
// It panics if decoding or re-validation fails.
func DecodeDir(text string) pathabs.PathDir {
	return must1(pathabs.DecodeDir(text))
}

// DecodeType decodes text and re-classifies it via the checked PathType
// constructor.
//
// It panics if decoding or re-validation fails.
func DecodeType(text string) pathabs.PathType {
	return must1(pathabs.DecodeType(text))
}

// DecodeMock decodes text into a Mock value without filesystem validation.
//
// It panics only on malformed escapes.
func DecodeMock(text string) pathabs.PathAbs {
	return must1(pathabs.DecodeMock(text))
}
