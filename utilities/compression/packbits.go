package compression

import (
	"fmt"
	"slices"

	"github.com/dargueta/packbits"
)

const (
	// MaxLiteralLength is the largest number of bytes a single literal chunk
	// can hold.
	MaxLiteralLength = 128
	// MaxRepeatLength is the largest number of bytes a single run chunk can
	// expand to.
	MaxRepeatLength = 129
	// MinRepeatLength is the smallest run a chunk can represent. A lone byte
	// is always stored in a literal.
	MinRepeatLength = 2
)

// MaxEncodedLen returns the largest number of bytes [Encode] can produce for an
// input of n bytes: n + ceil(n / 128).
func MaxEncodedLen(n int) int {
	return n + (n+MaxLiteralLength-1)/MaxLiteralLength
}

// runQualifies decides whether a run of `runLength` identical bytes is emitted
// as its own chunk. With a literal pending we need at least three bytes,
// otherwise two.
func runQualifies(runLength int, literalPending bool) bool {
	if literalPending {
		return runLength >= MinRepeatLength+1
	}
	return runLength >= MinRepeatLength
}

// runLengthAt returns the length of the run of identical bytes beginning at
// src[pos]. pos must be a valid index.
func runLengthAt(src []byte, pos int) int {
	runLength := 1
	for pos+runLength < len(src) && src[pos+runLength] == src[pos] {
		runLength++
	}
	return runLength
}

// Encode writes the PackBits encoding of src into dst and returns the number
// of bytes written.
//
// dst must be at least [MaxEncodedLen](len(src)) bytes long. If it isn't, Encode
// returns [packbits.ErrBufferTooSmall] and leaves dst untouched.
func Encode(dst, src []byte) (int, error) {
	required := MaxEncodedLen(len(src))
	if len(dst) < required {
		return 0, packbits.ErrBufferTooSmall.WithMessage(
			fmt.Sprintf(
				"encoding %d bytes needs a %d-byte buffer, got %d",
				len(src),
				required,
				len(dst),
			),
		)
	}
	return EncodeTrusted(dst, src), nil
}

// EncodeTrusted is [Encode] without the capacity check. The caller guarantees
// that dst can hold [MaxEncodedLen](len(src)) bytes; if it can't, EncodeTrusted
// panics with an index out of range.
func EncodeTrusted(dst, src []byte) int {
	// Spare capacity past len(dst) is not ours to write into.
	dst = dst[:len(dst):len(dst)]
	written := 0
	start := 0 // beginning of the pending literal
	pos := 0

	for start < len(src) {
		runLength := 0

		for pos < len(src) {
			runLength = runLengthAt(src, pos)
			if runQualifies(runLength, start != pos) {
				break
			}

			// Not worth a run of its own; fold it into the literal and keep
			// going as long as nothing repeats.
			pos += runLength
			runLength = 0
			for pos+1 < len(src) && src[pos] != src[pos+1] {
				pos++
			}
		}

		written += putLiteral(dst[written:], src[start:pos])

		for runLength >= MinRepeatLength {
			chunkLength := min(runLength, MaxRepeatLength)
			dst[written] = byte(1 - chunkLength)
			dst[written+1] = src[pos]
			written += 2
			pos += chunkLength
			runLength -= chunkLength
		}

		// A single byte left over from splitting a run starts the next literal.
		start = pos
		pos += runLength
	}
	return written
}

// putLiteral writes `literal` to dst as one or more literal chunks and returns
// the number of bytes written.
func putLiteral(dst, literal []byte) int {
	written := 0
	for len(literal) > 0 {
		chunkLength := min(len(literal), MaxLiteralLength)
		dst[written] = byte(chunkLength - 1)
		written += 1 + copy(dst[written+1:written+1+chunkLength], literal[:chunkLength])
		literal = literal[chunkLength:]
	}
	return written
}

// AppendEncode appends the PackBits encoding of src to dst and returns the
// extended slice.
func AppendEncode(dst, src []byte) []byte {
	offset := len(dst)
	bound := MaxEncodedLen(len(src))
	dst = slices.Grow(dst, bound)

	n := EncodeTrusted(dst[offset:offset+bound], src)
	return dst[:offset+n]
}

// EncodeToBytes returns the PackBits encoding of src in a newly allocated
// slice. The result is never nil.
func EncodeToBytes(src []byte) []byte {
	return AppendEncode(make([]byte, 0, MaxEncodedLen(len(src))), src)
}
