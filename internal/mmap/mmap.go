// Package mmap provides read-only memory-mapped file access for zero-copy
// reads of persisted snapshot and basis files.
//
// Mapping is safe for concurrent read access. Close is idempotent; callers
// must ensure no goroutine touches Bytes() after Close returns.
package mmap

import (
	"errors"
	"io"
	"os"
	"sync/atomic"
)

// ErrClosed is returned when accessing a closed mapping.
var ErrClosed = errors.New("mmap: mapping is closed")

// Mapping represents a read-only memory-mapped file.
// It owns the underlying byte slice and is responsible for unmapping it.
type Mapping struct {
	data   []byte
	closed atomic.Bool
}

// Open maps the file at path into memory as read-only.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size := fi.Size()
	if size == 0 {
		return &Mapping{}, nil
	}

	data, err := mapFile(f, int(size))
	if err != nil {
		return nil, err
	}
	return &Mapping{data: data}, nil
}

// Bytes returns the mapped contents. The slice is valid until Close.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// ReadAt implements io.ReaderAt over the mapped contents.
func (m *Mapping) ReadAt(p []byte, off int64) (int, error) {
	if m.closed.Load() {
		return 0, ErrClosed
	}
	if off < 0 || off > int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int64 {
	return int64(len(m.data))
}

// Close unmaps the file. It is safe to call multiple times.
func (m *Mapping) Close() error {
	if !m.closed.CompareAndSwap(false, true) {
		return nil
	}
	if m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	return unmapFile(data)
}
