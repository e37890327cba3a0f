package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryBackend_ReadEmptyIsNotError(t *testing.T) {
	b := NewMemoryBackend()
	data, err := b.Read()
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestMemoryBackend_WriteThenRead(t *testing.T) {
	b := NewMemoryBackend()
	require.NoError(t, b.Write([]byte("payload")))

	data, err := b.Read()
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), data)
}

func TestMemoryBackend_ReadReturnsIndependentCopy(t *testing.T) {
	b := NewMemoryBackend()
	require.NoError(t, b.Write([]byte("payload")))

	data, err := b.Read()
	require.NoError(t, err)
	data[0] = 'X'

	data2, err := b.Read()
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), data2)
}

func TestMemoryBackend_WriteCopiesInput(t *testing.T) {
	b := NewMemoryBackend()
	buf := []byte("payload")
	require.NoError(t, b.Write(buf))
	buf[0] = 'X'

	data, err := b.Read()
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), data)
}

func TestMemoryBackend_Close(t *testing.T) {
	b := NewMemoryBackend()
	require.NoError(t, b.Close())
}
