package compression

import (
	"fmt"
	"strings"

	"github.com/dargueta/packbits"
)

// CompressionType identifies the codec applied on top of PackBits in a
// compressed image. The values are stored in image headers and must not change.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the PackBits data as-is.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents gzip (DEFLATE) compression.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x4 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x5 // CompressionLZ4 represents LZ4 block compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType converts a name such as "zstd" (case-insensitive) into a
// [CompressionType].
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "none":
		return CompressionNone, nil
	case "gzip":
		return CompressionGzip, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, packbits.ErrNotSupported.WithMessage(
			fmt.Sprintf("unknown compression %q", name),
		)
	}
}

// Compressor compresses an already PackBits-encoded payload.
type Compressor interface {
	// Compress returns the compressed form of data in a new slice. data is not
	// modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a [Compressor].
type Decompressor interface {
	// Decompress returns the original form of data. It fails if data is
	// corrupted or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// SizedDecompressor is implemented by decompressors that can use the exact
// decompressed size instead of guessing it.
type SizedDecompressor interface {
	// DecompressSized is Decompress for data known to expand to exactly
	// `size` bytes. Any other size is an error.
	DecompressSized(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
//
// All codecs returned by [CreateCodec] are safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns the [Codec] for the given compression type.
func CreateCodec(compressionType CompressionType) (Codec, error) {
	switch compressionType {
	case CompressionNone:
		return NewNoOpCompressor(), nil
	case CompressionGzip:
		return NewGzipCompressor(), nil
	case CompressionZstd:
		return NewZstdCompressor(), nil
	case CompressionS2:
		return NewS2Compressor(), nil
	case CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, packbits.ErrNotSupported.WithMessage(
			fmt.Sprintf("invalid compression type: %d", uint8(compressionType)),
		)
	}
}
