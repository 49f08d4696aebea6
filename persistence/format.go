package persistence

import "errors"

const (
	// MagicNumber identifies romgo binary files (ASCII: "ROM0")
	MagicNumber = 0x524F4D30
	// Version is the current file format version (v1.0.0)
	Version = 0x00010000

	// File kinds
	KindSnapshots = 1
	KindBasis     = 2
)

var (
	ErrInvalidMagic   = errors.New("invalid magic number")
	ErrInvalidVersion = errors.New("unsupported version")
	ErrInvalidKind    = errors.New("invalid file kind")
)

// FileHeader is the 64-byte header at the start of every romgo binary file.
type FileHeader struct {
	Magic       uint32 // 0x524F4D30 ("ROM0")
	Version     uint32 // File format version
	Kind        uint8  // 1=Snapshots, 2=Basis
	Compression uint8  // Compression of the payload section
	Padding1    [2]byte
	Count       uint64 // Number of snapshots / retained modes
	Dimension   uint64 // Field dimension
	PayloadSize uint64 // Uncompressed payload size in bytes
	Checksum    uint32 // CRC32 of the (compressed) payload
	Padding2    [4]byte
	Reserved    [20]byte // Future use
}
