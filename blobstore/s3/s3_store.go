package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/romgo/blobstore"
)

// Store implements blobstore.BlobStore for S3.
type Store struct {
	client *s3.Client
	bucket string
	prefix string
	upload UploadConfig
}

// Option configures a Store created with New.
type Option func(*storeOptions)

type storeOptions struct {
	prefix string
	region string
	upload UploadConfig
}

// WithPrefix prepends the given prefix to all keys (e.g. "pod-runs/").
func WithPrefix(prefix string) Option {
	return func(o *storeOptions) { o.prefix = prefix }
}

// WithRegion overrides the AWS region from the default config chain.
func WithRegion(region string) Option {
	return func(o *storeOptions) { o.region = region }
}

// WithUploadConfig overrides the multipart upload settings.
func WithUploadConfig(cfg UploadConfig) Option {
	return func(o *storeOptions) { o.upload = cfg }
}

// New creates an S3 blob store using the default AWS config chain.
func New(ctx context.Context, bucket string, opts ...Option) (*Store, error) {
	o := storeOptions{upload: DefaultUploadConfig()}
	for _, opt := range opts {
		opt(&o)
	}

	var loadOpts []func(*config.LoadOptions) error
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Store{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: o.prefix,
		upload: o.upload,
	}, nil
}

// NewStore creates an S3 blob store from an existing client.
// rootPrefix is prepended to all keys (e.g. "pod-runs/").
func NewStore(client *s3.Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
		upload: DefaultUploadConfig(),
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open opens an existing blob for reading.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.key(name)

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, blobstore.ErrNotFound
		}
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}

	return &s3Blob{
		client: s.client,
		bucket: s.bucket,
		key:    key,
		size:   *head.ContentLength,
	}, nil
}

// Put writes a blob with CRC32C integrity validation.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	return putWithChecksum(ctx, s.client, s.bucket, s.key(name), data, s.upload.EnableChecksum)
}

// Create creates a new blob for streaming multipart writes.
func (s *Store) Create(ctx context.Context, name string) (blobstore.WritableBlob, error) {
	key := s.key(name)
	uploader := newUploader(s.client, s.upload)
	return newStreamingWritableBlob(ctx, uploader, s.bucket, key, s.upload.EnableChecksum), nil
}

// Delete removes a blob. S3 deletes are idempotent.
func (s *Store) Delete(ctx context.Context, name string) error {
	key := s.key(name)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

// List returns all blob names with the given prefix, sorted.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	fullPrefix := s.key(prefix)
	var keys []string

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(fullPrefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			relPath := *obj.Key
			if len(s.prefix) > 0 {
				if len(relPath) > len(s.prefix) && relPath[:len(s.prefix)] == s.prefix {
					relPath = relPath[len(s.prefix):]
					if len(relPath) > 0 && relPath[0] == '/' {
						relPath = relPath[1:]
					}
				}
			}
			keys = append(keys, relPath)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// s3Blob implements blobstore.Blob via ranged GETs.
type s3Blob struct {
	client *s3.Client
	bucket string
	key    string
	size   int64
}

func (b *s3Blob) Close() error {
	return nil
}

func (b *s3Blob) Size() int64 {
	return b.size
}

func (b *s3Blob) ReadAt(p []byte, off int64) (int, error) {
	if off >= b.size {
		return 0, io.EOF
	}

	end := off + int64(len(p)) - 1
	if end >= b.size {
		end = b.size - 1
	}

	rangeHeader := fmt.Sprintf("bytes=%d-%d", off, end)

	resp, err := b.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key),
		Range:  aws.String(rangeHeader),
	})
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	n, err := io.ReadFull(resp.Body, p)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		if off+int64(n) == b.size {
			return n, io.EOF
		}
		return n, io.EOF
	}

	expected := end - off + 1
	if int64(n) == expected && int64(n) < int64(len(p)) {
		return n, io.EOF
	}

	return n, err
}
