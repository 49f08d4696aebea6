package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for storing immutable data blobs (persisted
// snapshot sets, reduced bases, run manifests).
type BlobStore interface {
	// Open opens an existing blob for reading.
	Open(ctx context.Context, name string) (Blob, error)

	// Create creates a new blob for streaming writes.
	Create(ctx context.Context, name string) (WritableBlob, error)

	// Put writes a blob atomically.
	Put(ctx context.Context, name string, data []byte) error

	// Delete removes a blob.
	Delete(ctx context.Context, name string) error

	// List returns the names of all blobs matching the prefix,
	// sorted ascending.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.ReaderAt
	io.Closer

	// Size returns the size of the blob in bytes.
	Size() int64
}

// WritableBlob is a write-only handle to a blob under construction.
// The blob becomes visible when Close returns without error.
type WritableBlob interface {
	io.Writer
	io.Closer

	// Sync flushes buffered data to durable storage where supported.
	Sync() error
}

// Mappable is an optional interface for Blobs that support zero-copy access
// to the underlying bytes.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	Bytes() ([]byte, error)
}
