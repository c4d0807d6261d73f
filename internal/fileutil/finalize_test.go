package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/hillc/internal/fileutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.hill")

	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))
	require.NoError(t, fileutil.WriteAtomic(path, []byte("ID5S\n"), 0o640))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ID5S\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestWriteAtomicMissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "out.hill")

	require.Error(t, fileutil.WriteAtomic(path, []byte("x"), 0o600))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestCleanupOnErrorRemovesTemp(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tc, err := fileutil.NewTempContext(filepath.Join(dir, "out"))
	require.NoError(t, err)

	failed := assert.AnError
	tc.CleanupOnError(&failed)

	_, err = os.Stat(tc.TmpName)
	assert.True(t, os.IsNotExist(err))
}

func TestFinalizeOutput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0o600))

	modTime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	size, err := fileutil.FinalizeOutput(path, true, modTime)
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(modTime))
}
