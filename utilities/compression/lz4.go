package compression

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4MaxDecompressedSize caps the buffer [LZ4Compressor.Decompress] will grow
// to before giving up on a block.
const lz4MaxDecompressedSize = 256 * 1024 * 1024

// lz4MaxRatio is the most a single byte of an LZ4 block can expand to: every
// 0xff byte in a match length extension adds 255 bytes of output.
const lz4MaxRatio = 255

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)
var _ SizedDecompressor = (*LZ4Compressor)(nil)

func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input as a single LZ4 block.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// Decompress expands a single LZ4 block. The block doesn't record its original
// size, so the output buffer starts at four times the input size and doubles
// until the block fits, the buffer reaches 256 MiB, or the buffer is larger
// than any block of this size could expand to.
//
// Use [LZ4Compressor.DecompressSized] when the size is known.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	limit := min(len(data)*lz4MaxRatio, lz4MaxDecompressedSize)
	for bufSize := len(data) * 4; ; bufSize *= 2 {
		bufSize = min(bufSize, limit)
		buf := make([]byte, bufSize)

		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) || bufSize == limit {
			return nil, err
		}
	}
}

// DecompressSized expands a single LZ4 block that must decompress to exactly
// `size` bytes. Sizes the block can't possibly reach are rejected before
// anything is allocated.
func (c LZ4Compressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if size < 0 || size > len(data)*lz4MaxRatio {
		return nil, fmt.Errorf(
			"lz4: %d-byte block can't expand to %d bytes", len(data), size)
	}
	if size == 0 {
		if len(data) != 0 {
			return nil, fmt.Errorf("lz4: expected empty block, got %d bytes", len(data))
		}
		return nil, nil
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, fmt.Errorf("lz4: block expanded to %d bytes, expected %d", n, size)
	}
	return buf, nil
}
