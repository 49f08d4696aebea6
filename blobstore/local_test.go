package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewLocalStore(tmpDir)
	require.NoError(t, err)

	ctx := context.Background()

	// 1. Create a blob
	blobName := "runs/heat/basis.pod"
	data := []byte("hello world, this is a test blob for romgo")

	w, err := store.Create(ctx, blobName)
	require.NoError(t, err)

	n, err := w.Write(data)
	require.NoError(t, err)
	require.Equal(t, len(data), n)

	err = w.Close()
	require.NoError(t, err)

	// Verify file exists on disk
	expectedPath := filepath.Join(tmpDir, "runs", "heat", "basis.pod")
	_, err = os.Stat(expectedPath)
	require.NoError(t, err)

	// 2. Open and ReadAt
	blob, err := store.Open(ctx, blobName)
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 5)
	n, err = blob.ReadAt(buf, 6) // "world"
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "world", string(buf))

	// 3. Mappable access
	m, ok := blob.(Mappable)
	require.True(t, ok)
	raw, err := m.Bytes()
	require.NoError(t, err)
	require.Equal(t, data, raw)

	// 4. List
	err = store.Put(ctx, "runs/heat/snapshots.pod", []byte("x"))
	require.NoError(t, err)
	err = store.Put(ctx, "runs/flow/basis.pod", []byte("y"))
	require.NoError(t, err)

	names, err := store.List(ctx, "runs/heat/")
	require.NoError(t, err)
	require.Equal(t, []string{"runs/heat/basis.pod", "runs/heat/snapshots.pod"}, names)

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)

	// 5. Delete
	err = store.Delete(ctx, blobName)
	require.NoError(t, err)

	_, err = store.Open(ctx, blobName)
	require.ErrorIs(t, err, ErrNotFound)

	// Deleting again is not an error
	err = store.Delete(ctx, blobName)
	require.NoError(t, err)
}

func TestLocalStore_OpenMissing(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open(context.Background(), "nope.bin")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_RejectsEscapingNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	_, err = store.Open(ctx, "../outside.bin")
	require.Error(t, err)

	err = store.Put(ctx, "/etc/passwd", []byte("x"))
	require.Error(t, err)
}

func TestLocalStore_CreateIsAtomic(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewLocalStore(tmpDir)
	require.NoError(t, err)

	ctx := context.Background()

	w, err := store.Create(ctx, "partial.bin")
	require.NoError(t, err)

	_, err = w.Write([]byte("half written"))
	require.NoError(t, err)

	// Not visible before Close
	_, err = store.Open(ctx, "partial.bin")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, w.Close())

	blob, err := store.Open(ctx, "partial.bin")
	require.NoError(t, err)
	defer blob.Close()
	require.Equal(t, int64(len("half written")), blob.Size())
}
