package persistence

// Float64 sections are written as raw little-endian bytes via unsafe slice
// casts; decoding copies into freshly allocated (and therefore aligned)
// float64 slices.

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/hupe1980/romgo/pod"
	"github.com/hupe1980/romgo/snapshot"
)

var byteOrder = binary.LittleEndian // Native on x86/ARM

func float64sToBytes(v []float64) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*8)
}

func bytesToFloat64s(raw []byte) ([]float64, error) {
	if len(raw)%8 != 0 {
		return nil, fmt.Errorf("float64 section has odd length %d", len(raw))
	}
	n := len(raw) / 8
	if n == 0 {
		return nil, nil
	}
	dst := make([]float64, n)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&dst[0])), len(raw)), raw)
	return dst, nil
}

func writeFile(w io.Writer, kind uint8, count, dim int, payload []byte, c Compression) error {
	compressed, applied, err := compressPayload(payload, c)
	if err != nil {
		return err
	}

	header := FileHeader{
		Magic:       MagicNumber,
		Version:     Version,
		Kind:        kind,
		Compression: uint8(applied),
		Count:       uint64(count),
		Dimension:   uint64(dim),
		PayloadSize: uint64(len(payload)),
		Checksum:    ComputeChecksum(compressed),
	}
	if err := binary.Write(w, byteOrder, &header); err != nil {
		return err
	}
	_, err = w.Write(compressed)
	return err
}

func readFile(r io.Reader, kind uint8) (*FileHeader, []byte, error) {
	var header FileHeader
	if err := binary.Read(r, byteOrder, &header); err != nil {
		return nil, nil, err
	}
	if header.Magic != MagicNumber {
		return nil, nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return nil, nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}
	if header.Kind != kind {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKind, header.Kind, kind)
	}

	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	if actual := ComputeChecksum(compressed); actual != header.Checksum {
		return nil, nil, &ChecksumMismatchError{Expected: header.Checksum, Actual: actual}
	}

	payload, err := decompressPayload(compressed, Compression(header.Compression), int(header.PayloadSize))
	if err != nil {
		return nil, nil, err
	}
	if uint64(len(payload)) != header.PayloadSize {
		return nil, nil, fmt.Errorf("payload size mismatch: got %d, want %d", len(payload), header.PayloadSize)
	}
	return &header, payload, nil
}

// WriteList writes a snapshot list to w.
func WriteList(w io.Writer, list *snapshot.List, c Compression) error {
	n := list.Len()
	dim := list.Dimension()
	payload := make([]byte, 0, n*dim*8)
	for i := 0; i < n; i++ {
		payload = append(payload, float64sToBytes(list.At(i))...)
	}
	return writeFile(w, KindSnapshots, n, dim, payload, c)
}

// ReadList reads a snapshot list written by WriteList.
func ReadList(r io.Reader) (*snapshot.List, error) {
	header, payload, err := readFile(r, KindSnapshots)
	if err != nil {
		return nil, err
	}

	n := int(header.Count)
	dim := int(header.Dimension)
	if len(payload) != n*dim*8 {
		return nil, fmt.Errorf("snapshot payload has %d bytes, want %d", len(payload), n*dim*8)
	}

	fields, err := bytesToFloat64s(payload)
	if err != nil {
		return nil, err
	}

	list := snapshot.NewList()
	for i := 0; i < n; i++ {
		if err := list.Append(fields[i*dim : (i+1)*dim : (i+1)*dim]); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// WriteBasis writes a decomposition result to w: the full eigenvalue
// spectrum, the retained modes and the retained eigenvectors.
func WriteBasis(w io.Writer, res *pod.Result, c Compression) error {
	count := res.Modes.Len()
	dim := res.Modes.Dimension()

	vecLen := 0
	if count > 0 {
		vecLen = len(res.Eigenvectors[0])
	}

	// Payload layout: [numEigenvalues u64][eigenvalues...]
	//                 [vecLen u64][modes...][eigenvectors...]
	var sizes [16]byte
	byteOrder.PutUint64(sizes[0:8], uint64(len(res.Eigenvalues)))
	byteOrder.PutUint64(sizes[8:16], uint64(vecLen))

	payload := make([]byte, 0, 16+(len(res.Eigenvalues)+count*dim+count*vecLen)*8)
	payload = append(payload, sizes[:]...)
	payload = append(payload, float64sToBytes(res.Eigenvalues)...)
	for i := 0; i < count; i++ {
		payload = append(payload, float64sToBytes(res.Modes.At(i))...)
	}
	for i := 0; i < count; i++ {
		payload = append(payload, float64sToBytes(res.Eigenvectors[i])...)
	}
	return writeFile(w, KindBasis, count, dim, payload, c)
}

// ReadBasis reads a decomposition result written by WriteBasis.
func ReadBasis(r io.Reader) (*pod.Result, error) {
	header, payload, err := readFile(r, KindBasis)
	if err != nil {
		return nil, err
	}

	count := int(header.Count)
	dim := int(header.Dimension)

	if len(payload) < 16 {
		return nil, fmt.Errorf("basis payload truncated: %d bytes", len(payload))
	}
	numValues := int(byteOrder.Uint64(payload[0:8]))
	vecLen := int(byteOrder.Uint64(payload[8:16]))
	payload = payload[16:]

	want := (numValues + count*dim + count*vecLen) * 8
	if len(payload) != want {
		return nil, fmt.Errorf("basis payload has %d bytes, want %d", len(payload), want)
	}

	data, err := bytesToFloat64s(payload)
	if err != nil {
		return nil, err
	}

	res := &pod.Result{
		Eigenvalues:  append([]float64{}, data[:numValues]...),
		Modes:        snapshot.NewList(),
		Eigenvectors: make([][]float64, 0, count),
	}
	off := numValues
	for ci := 0; ci < count; ci++ {
		mode := append([]float64(nil), data[off:off+dim]...)
		if err := res.Modes.Append(mode); err != nil {
			return nil, err
		}
		off += dim
	}
	for ci := 0; ci < count; ci++ {
		res.Eigenvectors = append(res.Eigenvectors, append([]float64(nil), data[off:off+vecLen]...))
		off += vecLen
	}
	return res, nil
}

// SaveListFile writes a snapshot list to path, creating parent directories.
func SaveListFile(path string, list *snapshot.List, c Compression) error {
	return saveFile(path, func(w io.Writer) error {
		return WriteList(w, list, c)
	})
}

// LoadListFile reads a snapshot list from path.
func LoadListFile(path string) (*snapshot.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadList(f)
}

// SaveBasisFile writes a decomposition result to path, creating parent
// directories.
func SaveBasisFile(path string, res *pod.Result, c Compression) error {
	return saveFile(path, func(w io.Writer) error {
		return WriteBasis(w, res, c)
	})
}

// LoadBasisFile reads a decomposition result from path.
func LoadBasisFile(path string) (*pod.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadBasis(f)
}

// saveFile writes via a temp file and renames it into place, so readers
// never observe a partially written file.
func saveFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".romgo-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
