package s3

import (
	"bytes"
	"context"
	"encoding/base64"
	"hash/crc32"
	"io"
	"sync"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// UploadConfig configures the S3 uploader.
type UploadConfig struct {
	// PartSize is the minimum part size for multipart uploads.
	// Default: 8MB (larger than the SDK default of 5MB for better throughput
	// on large basis files)
	PartSize int64

	// Concurrency is the number of concurrent part uploads.
	// Default: 5 (matches SDK default)
	Concurrency int

	// EnableChecksum enables CRC32C integrity validation.
	// Default: true
	EnableChecksum bool

	// LeavePartsOnError controls whether failed multipart uploads
	// are automatically aborted.
	// Default: false (abort on error)
	LeavePartsOnError bool
}

// DefaultUploadConfig returns production upload settings.
func DefaultUploadConfig() UploadConfig {
	return UploadConfig{
		PartSize:          8 * 1024 * 1024,
		Concurrency:       5,
		EnableChecksum:    true,
		LeavePartsOnError: false,
	}
}

// newUploader creates a configured S3 uploader.
func newUploader(client *s3.Client, cfg UploadConfig) *manager.Uploader {
	return manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = cfg.PartSize
		u.Concurrency = cfg.Concurrency
		u.LeavePartsOnError = cfg.LeavePartsOnError
	})
}

// computeCRC32C computes the CRC32C checksum as base64 (the S3 header format).
func computeCRC32C(data []byte) string {
	sum := crc32.Checksum(data, crc32.MakeTable(crc32.Castagnoli))
	// S3 expects base64-encoded big-endian bytes
	b := []byte{byte(sum >> 24), byte(sum >> 16), byte(sum >> 8), byte(sum)}
	return base64.StdEncoding.EncodeToString(b)
}

// putWithChecksum uploads a small blob, with optional CRC32C validation.
func putWithChecksum(ctx context.Context, client *s3.Client, bucket, key string, data []byte, checksum bool) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if checksum {
		input.ChecksumCRC32C = aws.String(computeCRC32C(data))
	}

	_, err := client.PutObject(ctx, input)
	return err
}

// streamingWritableBlob streams writes through an io.Pipe into a
// multipart upload. Data is only committed on Close.
type streamingWritableBlob struct {
	pw       *io.PipeWriter
	pr       *io.PipeReader
	uploader *manager.Uploader
	bucket   string
	key      string

	done     chan error
	closed   atomic.Bool
	closeErr error
	closeMu  sync.Mutex
}

func newStreamingWritableBlob(
	ctx context.Context,
	uploader *manager.Uploader,
	bucket, key string,
	enableChecksum bool,
) *streamingWritableBlob {
	pr, pw := io.Pipe()

	blob := &streamingWritableBlob{
		pw:       pw,
		pr:       pr,
		uploader: uploader,
		bucket:   bucket,
		key:      key,
		done:     make(chan error, 1),
	}

	go blob.uploadLoop(ctx, enableChecksum)

	return blob
}

func (b *streamingWritableBlob) uploadLoop(ctx context.Context, enableChecksum bool) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key),
		Body:   b.pr,
	}

	if enableChecksum {
		input.ChecksumAlgorithm = types.ChecksumAlgorithmCrc32c
	}

	_, err := b.uploader.Upload(ctx, input)

	_ = b.pr.CloseWithError(err)
	b.done <- err
}

func (b *streamingWritableBlob) Write(p []byte) (int, error) {
	if b.closed.Load() {
		return 0, io.ErrClosedPipe
	}
	return b.pw.Write(p)
}

func (b *streamingWritableBlob) Close() error {
	b.closeMu.Lock()
	defer b.closeMu.Unlock()

	if !b.closed.CompareAndSwap(false, true) {
		return b.closeErr
	}

	// Closing the write end signals EOF to the uploader
	if err := b.pw.Close(); err != nil {
		b.closeErr = err
		return err
	}

	b.closeErr = <-b.done
	return b.closeErr
}

// Sync is a no-op for S3 uploads. Data is only committed on Close.
func (b *streamingWritableBlob) Sync() error {
	return nil
}
