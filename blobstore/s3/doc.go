// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("pod-runs/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	arc := archive.New(store)
//	err = arc.PutBasis(ctx, "heat-transfer/basis", result)
//
// # Features
//
//   - Range reads for efficient partial fetches
//   - Multipart uploads for large bases
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
