package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	content := []byte("snapshot payload")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	m, err := Open(path)
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, content, m.Bytes())
	assert.Equal(t, int64(len(content)), m.Size())
}

func TestOpenEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	m, err := Open(path)
	require.NoError(t, err)
	defer m.Close()

	assert.Empty(t, m.Bytes())
}

func TestCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	m, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
	assert.Nil(t, m.Bytes())
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}
