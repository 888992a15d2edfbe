package compression

import (
	"fmt"
	"io"

	"github.com/dargueta/packbits"
)

// ChunkKind distinguishes the two kinds of chunk in a PackBits stream.
type ChunkKind int

const (
	LiteralChunk ChunkKind = iota
	RepeatChunk
)

func (k ChunkKind) String() string {
	switch k {
	case LiteralChunk:
		return "literal"
	case RepeatChunk:
		return "repeat"
	default:
		return fmt.Sprintf("ChunkKind(%d)", int(k))
	}
}

// Chunk describes a single control byte and the data following it.
type Chunk struct {
	Kind ChunkKind
	// Control is the raw control byte, reinterpreted as signed.
	Control int8
	// Offset is where the control byte sits in the encoded stream.
	Offset int
	// DecodedOffset is where the chunk's first byte lands in the decoded data.
	DecodedOffset int
	// Length is the number of bytes the chunk expands to.
	Length int
	// Data holds the literal bytes for a literal chunk, or the single repeated
	// byte for a run. It aliases the encoded stream.
	Data []byte
}

// EncodedLen returns the size of the chunk in the encoded stream, including the
// control byte.
func (c Chunk) EncodedLen() int {
	return 1 + len(c.Data)
}

// expandInto writes the decoded bytes of the chunk to the start of dst, which
// must be at least c.Length bytes long.
func (c Chunk) expandInto(dst []byte) {
	if c.Kind == LiteralChunk {
		copy(dst, c.Data)
		return
	}

	value := c.Data[0]
	for i := 0; i < c.Length; i++ {
		dst[i] = value
	}
}

// readChunk parses the chunk whose control byte is at src[offset].
func readChunk(src []byte, offset, decodedOffset int) (Chunk, error) {
	control := int8(src[offset])
	chunk := Chunk{
		Control:       control,
		Offset:        offset,
		DecodedOffset: decodedOffset,
	}

	var dataLength int
	if control >= 0 {
		chunk.Kind = LiteralChunk
		chunk.Length = int(control) + 1
		dataLength = chunk.Length
	} else {
		chunk.Kind = RepeatChunk
		chunk.Length = 1 - int(control)
		dataLength = 1
	}

	end := offset + 1 + dataLength
	if end > len(src) {
		return chunk, packbits.ErrCorrupted.
			WithMessage(
				fmt.Sprintf(
					"%s chunk at offset %d needs %d bytes, %d left",
					chunk.Kind,
					offset,
					dataLength,
					len(src)-offset-1,
				),
			).
			Wrap(io.ErrUnexpectedEOF)
	}
	chunk.Data = src[offset+1 : end]
	return chunk, nil
}

// ParseChunks splits an encoded stream into its chunks without decoding it.
//
// If the stream is truncated, ParseChunks returns the chunks parsed so far and
// an error wrapping both [packbits.ErrCorrupted] and [io.ErrUnexpectedEOF].
func ParseChunks(src []byte) ([]Chunk, error) {
	chunks := []Chunk{}
	decodedOffset := 0

	for offset := 0; offset < len(src); {
		chunk, err := readChunk(src, offset, decodedOffset)
		if err != nil {
			return chunks, err
		}

		chunks = append(chunks, chunk)
		offset += chunk.EncodedLen()
		decodedOffset += chunk.Length
	}
	return chunks, nil
}
