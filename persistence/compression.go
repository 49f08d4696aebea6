package persistence

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression defines the payload compression algorithm.
type Compression uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD compression (better ratio).
	CompressionZSTD Compression = 2
)

var errUnknownCompression = errors.New("unknown compression type")

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// compressPayload compresses data with the requested algorithm. It returns
// the payload bytes and the compression actually applied: an incompressible
// LZ4 payload falls back to being stored raw.
func compressPayload(data []byte, c Compression) ([]byte, Compression, error) {
	switch c {
	case CompressionNone:
		return data, CompressionNone, nil
	case CompressionLZ4:
		bound := lz4.CompressBlockBound(len(data))
		dst := make([]byte, bound)
		n, err := lz4.CompressBlock(data, dst, nil)
		if err != nil {
			return nil, 0, fmt.Errorf("lz4 compress: %w", err)
		}
		if n == 0 {
			// Incompressible; lz4 signals this with n == 0.
			return data, CompressionNone, nil
		}
		return dst[:n], CompressionLZ4, nil
	case CompressionZSTD:
		enc := getZstdEncoder()
		defer zstdEncoderPool.Put(enc)
		return enc.EncodeAll(data, nil), CompressionZSTD, nil
	default:
		return nil, 0, errUnknownCompression
	}
}

// decompressPayload reverses compressPayload. uncompressedSize is the size
// of the original payload, known from the file header.
func decompressPayload(data []byte, c Compression, uncompressedSize int) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionLZ4:
		dst := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(data, dst)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		return dst[:n], nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)
		return dec.DecodeAll(data, nil)
	default:
		return nil, errUnknownCompression
	}
}
