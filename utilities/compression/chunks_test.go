package compression_test

import (
	"io"
	"testing"

	"github.com/dargueta/packbits"
	c "github.com/dargueta/packbits/utilities/compression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChunks(t *testing.T) {
	encoded := c.EncodeToBytes([]byte("abbbbc"))

	chunks, err := c.ParseChunks(encoded)
	require.NoError(t, err)

	expected := []c.Chunk{
		{
			Kind:          c.LiteralChunk,
			Control:       0,
			Offset:        0,
			DecodedOffset: 0,
			Length:        1,
			Data:          []byte("a"),
		},
		{
			Kind:          c.RepeatChunk,
			Control:       -3,
			Offset:        2,
			DecodedOffset: 1,
			Length:        4,
			Data:          []byte("b"),
		},
		{
			Kind:          c.LiteralChunk,
			Control:       0,
			Offset:        4,
			DecodedOffset: 5,
			Length:        1,
			Data:          []byte("c"),
		},
	}
	assert.Equal(t, expected, chunks)

	for _, chunk := range chunks {
		assert.Equal(t, 2, chunk.EncodedLen())
	}
}

func TestParseChunks__Empty(t *testing.T) {
	chunks, err := c.ParseChunks(nil)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestParseChunks__TruncatedKeepsPrefix(t *testing.T) {
	chunks, err := c.ParseChunks([]byte{ctl(-3), 'q', 5, 'a'})
	assert.ErrorIs(t, err, packbits.ErrCorrupted)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Len(t, chunks, 1)
	assert.Equal(t, c.RepeatChunk, chunks[0].Kind)
}

func TestChunkKindString(t *testing.T) {
	assert.Equal(t, "literal", c.LiteralChunk.String())
	assert.Equal(t, "repeat", c.RepeatChunk.String())
	assert.Equal(t, "ChunkKind(7)", c.ChunkKind(7).String())
}
