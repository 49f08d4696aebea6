package blobstore

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hupe1980/romgo/internal/mmap"
)

// LocalStore is a filesystem-backed BlobStore rooted at a directory.
// Reads are served through memory-mapped files; writes go through a
// temp file followed by an atomic rename.
type LocalStore struct {
	root string
}

// NewLocalStore creates a local blob store rooted at dir. The directory
// is created if it does not exist.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create root dir: %w", err)
	}
	return &LocalStore{root: dir}, nil
}

// Root returns the store's root directory.
func (s *LocalStore) Root() string {
	return s.root
}

// Open opens a blob for reading via mmap.
func (s *LocalStore) Open(_ context.Context, name string) (Blob, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	m, err := mmap.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mmap %s: %w", name, err)
	}

	return &localBlob{mapping: m}, nil
}

// Create creates a writable blob. The data becomes visible under name
// only after Close succeeds.
func (s *LocalStore) Create(_ context.Context, name string) (WritableBlob, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create parent dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	return &localWritableBlob{file: tmp, dest: path}, nil
}

// Put writes a blob atomically.
func (s *LocalStore) Put(ctx context.Context, name string, data []byte) error {
	w, err := s.Create(ctx, name)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// Delete removes a blob. Deleting a missing blob is not an error.
func (s *LocalStore) Delete(_ context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}

// List returns all blobs under the prefix, sorted by name.
func (s *LocalStore) List(_ context.Context, prefix string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", s.root, err)
	}
	sort.Strings(names)
	return names, nil
}

func (s *LocalStore) path(name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid blob name %q", name)
	}
	return filepath.Join(s.root, clean), nil
}

// localBlob serves reads from a memory-mapped file.
type localBlob struct {
	mapping *mmap.Mapping
}

func (b *localBlob) ReadAt(p []byte, off int64) (int, error) {
	return b.mapping.ReadAt(p, off)
}

func (b *localBlob) Close() error {
	return b.mapping.Close()
}

func (b *localBlob) Size() int64 {
	return b.mapping.Size()
}

func (b *localBlob) Bytes() ([]byte, error) {
	data := b.mapping.Bytes()
	if data == nil && b.mapping.Size() > 0 {
		return nil, mmap.ErrClosed
	}
	return data, nil
}

// localWritableBlob buffers into a temp file and renames on Close.
type localWritableBlob struct {
	file *os.File
	dest string
}

func (w *localWritableBlob) Write(p []byte) (int, error) {
	return w.file.Write(p)
}

func (w *localWritableBlob) Sync() error {
	return w.file.Sync()
}

func (w *localWritableBlob) Close() error {
	tmp := w.file.Name()
	if err := w.file.Sync(); err != nil {
		w.file.Close()
		os.Remove(tmp)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := w.file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, w.dest); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
