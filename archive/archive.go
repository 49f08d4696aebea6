package archive

import (
	"context"
	"fmt"
	"io"
	"path"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/hupe1980/romgo/blobstore"
	"github.com/hupe1980/romgo/persistence"
	"github.com/hupe1980/romgo/pod"
	"github.com/hupe1980/romgo/snapshot"
)

const (
	snapshotsBlob = "snapshots.pod"
	basisBlob     = "basis.pod"
)

// Archive stores decomposition artifacts in a blob store.
type Archive struct {
	store       blobstore.BlobStore
	sem         *semaphore.Weighted
	limiter     *rate.Limiter // nil if unlimited
	compression persistence.Compression
}

// Option configures an Archive.
type Option func(*Archive)

// WithWorkers bounds the number of concurrent transfers. Default 1.
func WithWorkers(n int64) Option {
	return func(a *Archive) {
		if n > 0 {
			a.sem = semaphore.NewWeighted(n)
		}
	}
}

// WithByteRate limits transfer throughput in bytes per second.
// Zero means unlimited.
func WithByteRate(bytesPerSec int64) Option {
	return func(a *Archive) {
		if bytesPerSec > 0 {
			a.limiter = rate.NewLimiter(rate.Limit(bytesPerSec), int(bytesPerSec))
		}
	}
}

// WithCompression sets the payload compression for stored files.
// Default is ZSTD.
func WithCompression(c persistence.Compression) Option {
	return func(a *Archive) { a.compression = c }
}

// New creates an archive on top of the given blob store.
func New(store blobstore.BlobStore, opts ...Option) *Archive {
	a := &Archive{
		store:       store,
		sem:         semaphore.NewWeighted(1),
		compression: persistence.CompressionZSTD,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// PutSnapshots uploads a snapshot list under the run prefix.
func (a *Archive) PutSnapshots(ctx context.Context, run string, list *snapshot.List) error {
	return a.put(ctx, path.Join(run, snapshotsBlob), func(w io.Writer) error {
		return persistence.WriteList(w, list, a.compression)
	})
}

// GetSnapshots downloads a snapshot list stored under the run prefix.
func (a *Archive) GetSnapshots(ctx context.Context, run string) (*snapshot.List, error) {
	var list *snapshot.List
	err := a.get(ctx, path.Join(run, snapshotsBlob), func(r io.Reader) error {
		var err error
		list, err = persistence.ReadList(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// PutBasis uploads a decomposition result under the run prefix.
func (a *Archive) PutBasis(ctx context.Context, run string, res *pod.Result) error {
	return a.put(ctx, path.Join(run, basisBlob), func(w io.Writer) error {
		return persistence.WriteBasis(w, res, a.compression)
	})
}

// GetBasis downloads a decomposition result stored under the run prefix.
func (a *Archive) GetBasis(ctx context.Context, run string) (*pod.Result, error) {
	var res *pod.Result
	err := a.get(ctx, path.Join(run, basisBlob), func(r io.Reader) error {
		var err error
		res, err = persistence.ReadBasis(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Runs lists the run prefixes stored under the given prefix.
func (a *Archive) Runs(ctx context.Context, prefix string) ([]string, error) {
	names, err := a.store.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var runs []string
	for _, name := range names {
		base := path.Base(name)
		if base != snapshotsBlob && base != basisBlob {
			continue
		}
		run := path.Dir(name)
		if _, ok := seen[run]; ok {
			continue
		}
		seen[run] = struct{}{}
		runs = append(runs, run)
	}
	return runs, nil
}

// Delete removes all artifacts stored under the run prefix.
func (a *Archive) Delete(ctx context.Context, run string) error {
	for _, blob := range []string{snapshotsBlob, basisBlob} {
		if err := a.store.Delete(ctx, path.Join(run, blob)); err != nil {
			return fmt.Errorf("delete %s: %w", blob, err)
		}
	}
	return nil
}

func (a *Archive) put(ctx context.Context, name string, write func(io.Writer) error) error {
	if err := a.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer a.sem.Release(1)

	w, err := a.store.Create(ctx, name)
	if err != nil {
		return fmt.Errorf("create blob %s: %w", name, err)
	}

	if err := write(a.limitWriter(ctx, w)); err != nil {
		w.Close()
		return fmt.Errorf("write blob %s: %w", name, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize blob %s: %w", name, err)
	}
	return nil
}

func (a *Archive) get(ctx context.Context, name string, read func(io.Reader) error) error {
	if err := a.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer a.sem.Release(1)

	blob, err := a.store.Open(ctx, name)
	if err != nil {
		return fmt.Errorf("open blob %s: %w", name, err)
	}
	defer blob.Close()

	r := io.NewSectionReader(blob, 0, blob.Size())
	if err := read(a.limitReader(ctx, r)); err != nil {
		return fmt.Errorf("read blob %s: %w", name, err)
	}
	return nil
}

func (a *Archive) limitWriter(ctx context.Context, w io.Writer) io.Writer {
	if a.limiter == nil {
		return w
	}
	return &rateLimitedWriter{w: w, limiter: a.limiter, ctx: ctx}
}

func (a *Archive) limitReader(ctx context.Context, r io.Reader) io.Reader {
	if a.limiter == nil {
		return r
	}
	return &rateLimitedReader{r: r, limiter: a.limiter, ctx: ctx}
}

// rateLimitedWriter waits for limiter tokens before each write.
type rateLimitedWriter struct {
	w       io.Writer
	limiter *rate.Limiter
	ctx     context.Context
}

func (w *rateLimitedWriter) Write(p []byte) (int, error) {
	if err := waitN(w.ctx, w.limiter, len(p)); err != nil {
		return 0, err
	}
	return w.w.Write(p)
}

// rateLimitedReader waits for limiter tokens before each read.
// The wait covers the buffer size, the maximum possible read.
type rateLimitedReader struct {
	r       io.Reader
	limiter *rate.Limiter
	ctx     context.Context
}

func (r *rateLimitedReader) Read(p []byte) (int, error) {
	if err := waitN(r.ctx, r.limiter, len(p)); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}

// waitN splits requests larger than the limiter burst so a single big
// buffer cannot exceed WaitN's burst constraint.
func waitN(ctx context.Context, l *rate.Limiter, n int) error {
	burst := l.Burst()
	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}
		if err := l.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
