package compression_test

import (
	"bytes"
	"testing"

	"github.com/dargueta/packbits"
	c "github.com/dargueta/packbits/utilities/compression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRows__RunsStopAtRowBoundary(t *testing.T) {
	// Two rows of four identical bytes: one run per row instead of one run
	// spanning both.
	encoded, err := c.EncodeRows(bytes.Repeat([]byte{7}, 8), 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{ctl(-3), 7, ctl(-3), 7}, encoded)
}

func TestEncodeRows__ShortLastRow(t *testing.T) {
	encoded, err := c.EncodeRows([]byte("aaaabbbbc"), 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{ctl(-3), 'a', ctl(-3), 'b', 0, 'c'}, encoded)
	assert.LessOrEqual(t, len(encoded), c.MaxEncodedRowsLen(9, 4))
}

func TestEncodeRows__InvalidRowSize(t *testing.T) {
	for _, rowSize := range []int{0, -1} {
		_, err := c.EncodeRows([]byte("abc"), rowSize)
		assert.ErrorIs(t, err, packbits.ErrInvalidArgument)

		_, err = c.DecodeRows([]byte{0, 'a'}, rowSize)
		assert.ErrorIs(t, err, packbits.ErrInvalidArgument)
	}
}

func TestRowsRoundTrip(t *testing.T) {
	image := make([]byte, 0, 64*10)
	for row := 0; row < 10; row++ {
		line := bytes.Repeat([]byte{byte(row)}, 64)
		copy(line[row*3:], []byte("scanline"))
		image = append(image, line...)
	}

	for _, rowSize := range []int{1, 7, 64, 100, 1000} {
		encoded, err := c.EncodeRows(image, rowSize)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(encoded), c.MaxEncodedRowsLen(len(image), rowSize))

		decoded, err := c.DecodeRows(encoded, rowSize)
		require.NoError(t, err)
		assert.Equal(t, image, decoded, "row size %d", rowSize)
	}
}

func TestDecodeRows__ChunkCrossesRow(t *testing.T) {
	encoded := c.EncodeToBytes(bytes.Repeat([]byte{7}, 8))

	_, err := c.DecodeRows(encoded, 4)
	assert.ErrorIs(t, err, packbits.ErrCorrupted)

	decoded, err := c.DecodeRows(encoded, 8)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{7}, 8), decoded)
}

func TestMaxEncodedRowsLen(t *testing.T) {
	assert.Equal(t, 0, c.MaxEncodedRowsLen(0, 4))
	assert.Equal(t, 10, c.MaxEncodedRowsLen(8, 4))
	assert.Equal(t, 12, c.MaxEncodedRowsLen(9, 4))
	assert.Equal(t, c.MaxEncodedLen(300), c.MaxEncodedRowsLen(300, 0))
}
