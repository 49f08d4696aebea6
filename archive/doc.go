// Package archive ships persisted snapshot and basis files to a
// blobstore.BlobStore under a run prefix.
//
// Uploads and downloads are bounded by a worker semaphore and an
// optional byte-rate limit so that archiving large decompositions does
// not starve the process of IO bandwidth.
//
//	store, _ := blobstore.NewLocalStore("/var/lib/romgo")
//	arc := archive.New(store,
//	    archive.WithWorkers(4),
//	    archive.WithByteRate(64<<20), // 64 MiB/s
//	)
//
//	err := arc.PutBasis(ctx, "heat-transfer/run-042", result)
package archive
