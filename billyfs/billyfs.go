// Package billyfs bridges pathabs directory handles to the go-billy
// filesystem interface, so a typed directory can be handed to go-git and
// other billy consumers.
package billyfs

import (
	"errors"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	pathabs "github.com/Jumpaku/go-pathabs"
)

// ErrJoin is wrapped when a relative path cannot be resolved inside the root.
var ErrJoin = errors.New("failed to join path inside root")

// DirFS is a billy filesystem rooted at a pathabs directory.
type DirFS struct {
	dir pathabs.PathDir
	bfs billy.Filesystem
}

// Chroot returns a billy filesystem rooted at dir. Paths passed to the billy
// side are relative to dir; billy's chroot semantics prevent escaping the
// root.
func Chroot(dir pathabs.PathDir) *DirFS {
	return &DirFS{dir: dir, bfs: osfs.New(dir.String())}
}

// Dir returns the directory handle the filesystem is rooted at.
func (f *DirFS) Dir() pathabs.PathDir {
	return f.dir
}

// Unwrap returns the underlying billy.Filesystem for go-git integration.
func (f *DirFS) Unwrap() billy.Filesystem {
	return f.bfs
}

// File resolves rel against the root and returns a checked file handle for
// it. Relative components that would escape the root are clamped to the
// root, matching billy's chroot behavior.
func (f *DirFS) File(rel string) (pathabs.PathFile, error) {
	path, err := f.join(rel)
	if err != nil {
		return pathabs.PathFile{}, err
	}
	return pathabs.NewFile(path)
}

// SubDir resolves rel against the root and returns a checked directory handle
// for it.
func (f *DirFS) SubDir(rel string) (pathabs.PathDir, error) {
	path, err := f.join(rel)
	if err != nil {
		return pathabs.PathDir{}, err
	}
	return pathabs.NewDir(path)
}

func (f *DirFS) join(rel string) (string, error) {
	path, err := securejoin.SecureJoin(f.dir.String(), rel)
	if err != nil {
		return "", errors.Join(ErrJoin, err)
	}
	return path, nil
}
