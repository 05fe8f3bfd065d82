package pathabs_test

import (
	"net"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pathabs "github.com/Jumpaku/go-pathabs"
)

func TestNewType_ClassifiesFileAndDir(t *testing.T) {
	base, err := pathabs.NewDir(t.TempDir())
	require.NoError(t, err)
	file, err := pathabs.CreateFile(base.Join("a.txt"))
	require.NoError(t, err)

	fileType, err := pathabs.NewType(file.String())
	require.NoError(t, err)
	assert.True(t, fileType.IsFile())
	assert.False(t, fileType.IsDir())
	assert.Equal(t, pathabs.TypeOfFile(file), fileType)

	dirType, err := pathabs.NewType(base.String())
	require.NoError(t, err)
	assert.True(t, dirType.IsDir())
	assert.Equal(t, pathabs.TypeOfDir(base), dirType)
}

func TestNewType_NotFound(t *testing.T) {
	_, err := pathabs.NewType(filepath.Join(t.TempDir(), "dne"))
	assert.ErrorIs(t, err, pathabs.ErrNotFound)
}

func TestNewType_UnsupportedKind(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "s")
	ln, err := net.Listen("unix", sock)
	require.NoError(t, err)
	defer ln.Close()

	_, err = pathabs.NewType(sock)
	assert.ErrorIs(t, err, pathabs.ErrUnsupportedKind)
}

func TestPathType_Unwrap(t *testing.T) {
	base, err := pathabs.NewDir(t.TempDir())
	require.NoError(t, err)
	file, err := pathabs.CreateFile(base.Join("a.txt"))
	require.NoError(t, err)

	fileType := pathabs.TypeOfFile(file)
	gotFile, err := fileType.File()
	require.NoError(t, err)
	assert.Equal(t, file, gotFile)
	_, err = fileType.Dir()
	assert.ErrorIs(t, err, pathabs.ErrKindMismatch)

	dirType := pathabs.TypeOfDir(base)
	gotDir, err := dirType.Dir()
	require.NoError(t, err)
	assert.Equal(t, base, gotDir)
	_, err = dirType.File()
	assert.ErrorIs(t, err, pathabs.ErrKindMismatch)
}

func TestPathType_MatchesListing(t *testing.T) {
	base, err := pathabs.NewDir(t.TempDir())
	require.NoError(t, err)
	file, err := pathabs.CreateFile(base.Join("a.txt"))
	require.NoError(t, err)

	for entry, err := range base.List() {
		require.NoError(t, err)
		viaNew, err := pathabs.NewType(entry.String())
		require.NoError(t, err)
		assert.Equal(t, entry, viaNew)
		assert.Equal(t, pathabs.TypeOfFile(file), entry)
	}
}
