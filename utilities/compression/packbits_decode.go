package compression

import (
	"fmt"
	"slices"

	"github.com/dargueta/packbits"
)

// DecodedLen returns the number of bytes src expands to, without decoding it.
func DecodedLen(src []byte) (int, error) {
	total := 0
	for offset := 0; offset < len(src); {
		chunk, err := readChunk(src, offset, total)
		if err != nil {
			return total, err
		}
		offset += chunk.EncodedLen()
		total += chunk.Length
	}
	return total, nil
}

// Decode expands the PackBits stream in src into dst and returns the number of
// bytes written.
//
// If dst is too small to hold the output, Decode stops at the first chunk that
// doesn't fit and returns [packbits.ErrBufferTooSmall]. Use [DecodedLen] to size
// the buffer ahead of time.
func Decode(dst, src []byte) (int, error) {
	written := 0
	for offset := 0; offset < len(src); {
		chunk, err := readChunk(src, offset, written)
		if err != nil {
			return written, err
		}

		if written+chunk.Length > len(dst) {
			return written, packbits.ErrBufferTooSmall.WithMessage(
				fmt.Sprintf(
					"%s chunk at offset %d expands to %d bytes, only %d left in output",
					chunk.Kind,
					offset,
					chunk.Length,
					len(dst)-written,
				),
			)
		}

		chunk.expandInto(dst[written:])
		written += chunk.Length
		offset += chunk.EncodedLen()
	}
	return written, nil
}

// AppendDecode appends the decoded form of src to dst and returns the extended
// slice. On error, dst is returned unchanged.
func AppendDecode(dst, src []byte) ([]byte, error) {
	size, err := DecodedLen(src)
	if err != nil {
		return dst, err
	}

	offset := len(dst)
	grown := slices.Grow(dst, size)[:offset+size]
	_, err = Decode(grown[offset:], src)
	if err != nil {
		return dst, err
	}
	return grown, nil
}

// DecodeToBytes decodes src into a newly allocated slice.
func DecodeToBytes(src []byte) ([]byte, error) {
	return AppendDecode([]byte{}, src)
}
