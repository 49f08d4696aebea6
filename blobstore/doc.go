// Package blobstore provides storage abstraction for persisted romgo
// artifacts (snapshot sets, reduced bases, run manifests).
//
// BlobStore is the interface for reading and writing data blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-memory, for tests
//   - LocalStore: local filesystem with mmap reads
//   - minio.Store: MinIO and S3-compatible object storage
//   - s3.Store: Amazon S3 with range reads and multipart uploads
package blobstore
