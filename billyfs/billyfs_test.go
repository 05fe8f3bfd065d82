package billyfs_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pathabs "github.com/Jumpaku/go-pathabs"
	"github.com/Jumpaku/go-pathabs/billyfs"
)

func TestChroot_BillySideAndTypedSideAgree(t *testing.T) {
	root, err := pathabs.NewDir(t.TempDir())
	require.NoError(t, err)

	fsys := billyfs.Chroot(root)
	assert.Equal(t, root, fsys.Dir())

	// Write through the billy side.
	bf, err := fsys.Unwrap().Create("sub/a.txt")
	require.NoError(t, err)
	_, err = bf.Write([]byte("content"))
	require.NoError(t, err)
	require.NoError(t, bf.Close())

	// Read through the typed side.
	file, err := fsys.File("sub/a.txt")
	require.NoError(t, err)
	got, err := file.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "content", got)

	sub, err := fsys.SubDir("sub")
	require.NoError(t, err)
	wantSub, err := pathabs.NewDir(root.Join("sub"))
	require.NoError(t, err)
	assert.Equal(t, wantSub, sub)
	assert.Equal(t, sub, file.ParentDir())
}

func TestChroot_TypedSideVisibleThroughBilly(t *testing.T) {
	root, err := pathabs.NewDir(t.TempDir())
	require.NoError(t, err)

	file, err := pathabs.CreateFile(root.Join("a.txt"))
	require.NoError(t, err)
	require.NoError(t, file.WriteString("typed"))

	fsys := billyfs.Chroot(root)
	bf, err := fsys.Unwrap().Open("a.txt")
	require.NoError(t, err)
	defer bf.Close()

	got, err := io.ReadAll(bf)
	require.NoError(t, err)
	assert.Equal(t, "typed", string(got))
}

func TestChroot_EscapingPathsAreClamped(t *testing.T) {
	root, err := pathabs.NewDir(t.TempDir())
	require.NoError(t, err)

	fsys := billyfs.Chroot(root)

	// "../../etc/passwd" is clamped to the root, where no such entry exists.
	_, err = fsys.File("../../etc/passwd")
	require.Error(t, err)
	assert.ErrorIs(t, err, pathabs.ErrNotFound)
}
