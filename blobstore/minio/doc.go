// Package minio provides a BlobStore implementation using the MinIO client.
//
// MinIO is a high-performance, S3-compatible object storage system. This
// package uses the official MinIO Go client library and works with any
// S3-compatible storage system like Ceph, SeaweedFS, and Garage.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "pod-runs/")
//	arc := archive.New(store)
//	err = arc.PutBasis(ctx, "heat-transfer/basis", result)
//
// # Features
//
//   - Native MinIO client with streaming uploads for large bases
//   - Works with any S3-compatible storage (Ceph, Garage, SeaweedFS)
//   - Air-gap friendly (no AWS dependencies required)
package minio
