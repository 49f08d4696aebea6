// Package persistence provides binary serialization for snapshot sets and
// reduced bases.
//
// Files carry a fixed 64-byte header (magic, version, kind, compression,
// CRC32 of the payload) followed by a single payload section of raw
// little-endian float64 data, optionally block-compressed with LZ4 or ZSTD.
package persistence
