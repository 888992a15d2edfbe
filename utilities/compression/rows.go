package compression

import (
	"fmt"

	"github.com/dargueta/packbits"
)

func checkRowSize(rowSize int) error {
	if rowSize <= 0 {
		return packbits.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("row size must be positive, got %d", rowSize),
		)
	}
	return nil
}

// MaxEncodedRowsLen returns the largest number of bytes [EncodeRows] can produce
// for `n` bytes split into rows of `rowSize` bytes.
func MaxEncodedRowsLen(n, rowSize int) int {
	if rowSize <= 0 || n == 0 {
		return MaxEncodedLen(n)
	}
	fullRows := n / rowSize
	return fullRows*MaxEncodedLen(rowSize) + MaxEncodedLen(n%rowSize)
}

// EncodeRows encodes src one row at a time, the way TIFF applies PackBits to
// image data: no chunk spans two rows. The last row may be shorter than
// `rowSize`.
func EncodeRows(src []byte, rowSize int) ([]byte, error) {
	err := checkRowSize(rowSize)
	if err != nil {
		return nil, err
	}

	output := make([]byte, 0, MaxEncodedRowsLen(len(src), rowSize))
	for start := 0; start < len(src); start += rowSize {
		end := min(start+rowSize, len(src))
		output = AppendEncode(output, src[start:end])
	}
	return output, nil
}

// DecodeRows decodes data produced by [EncodeRows]. It fails with
// [packbits.ErrCorrupted] if any chunk crosses a row boundary.
func DecodeRows(src []byte, rowSize int) ([]byte, error) {
	err := checkRowSize(rowSize)
	if err != nil {
		return nil, err
	}

	chunks, err := ParseChunks(src)
	if err != nil {
		return nil, err
	}

	totalSize := 0
	for _, chunk := range chunks {
		firstRow := chunk.DecodedOffset / rowSize
		lastRow := (chunk.DecodedOffset + chunk.Length - 1) / rowSize
		if firstRow != lastRow {
			return nil, packbits.ErrCorrupted.WithMessage(
				fmt.Sprintf(
					"%s chunk at offset %d spans rows %d through %d",
					chunk.Kind,
					chunk.Offset,
					firstRow,
					lastRow,
				),
			)
		}
		totalSize += chunk.Length
	}

	output := make([]byte, totalSize)
	for _, chunk := range chunks {
		chunk.expandInto(output[chunk.DecodedOffset:])
	}
	return output, nil
}
