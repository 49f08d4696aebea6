package persistence

import (
	"fmt"
	"hash/crc32"
)

// Checksum utilities for file integrity verification.
//
// Uses CRC32 (IEEE polynomial): fast, hardware-accelerated on modern CPUs
// and adequate for detecting accidental storage corruption. It is NOT
// cryptographically secure; do not use it for tamper detection.

// ComputeChecksum computes the CRC32 checksum of data.
func ComputeChecksum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// ChecksumMismatchError is returned when checksum verification fails.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// IsChecksumMismatch returns true if err is a checksum mismatch error.
func IsChecksumMismatch(err error) bool {
	_, ok := err.(*ChecksumMismatchError)
	return ok
}
