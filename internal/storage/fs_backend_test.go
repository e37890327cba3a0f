package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileBackend_ReadEmptyIsNotError(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(filepath.Join(dir, "session.state"))
	require.NoError(t, err)
	defer b.Close()

	data, err := b.Read()
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestFileBackend_WriteThenRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.state")
	b, err := NewFileBackend(path)
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.Write([]byte("hello")))

	data, err := b.Read()
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), data)

	// The blob must actually have landed on disk via the atomic path, not
	// just be cached in the backend.
	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), onDisk)
}

func TestFileBackend_WriteOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.state")
	b, err := NewFileBackend(path)
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.Write([]byte("first")))
	require.NoError(t, b.Write([]byte("second, longer payload")))

	data, err := b.Read()
	require.NoError(t, err)
	require.Equal(t, []byte("second, longer payload"), data)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	// No leftover temp files from the atomic rename.
	for _, e := range entries {
		require.NotContains(t, e.Name(), ".tmp-calcstate-")
	}
}

func TestFileBackend_LockIsExclusive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.state")

	b1, err := NewFileBackend(path)
	require.NoError(t, err)
	defer b1.Close()

	_, err = NewFileBackend(path)
	require.Error(t, err)
}

func TestFileBackend_EmptyPathRejected(t *testing.T) {
	_, err := NewFileBackend("")
	require.Error(t, err)
}

func TestFileBackend_CloseReleasesLock(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.state")

	b1, err := NewFileBackend(path)
	require.NoError(t, err)
	require.NoError(t, b1.Close())

	b2, err := NewFileBackend(path)
	require.NoError(t, err)
	defer b2.Close()
}
