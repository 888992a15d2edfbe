package compression

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCompressor wraps PackBits data in a gzip stream.
type GzipCompressor struct {
	level int
}

var _ Codec = (*GzipCompressor)(nil)

// NewGzipCompressor creates a gzip codec using the highest compression level.
// Images aren't large enough for the speed difference between the default and
// highest levels to matter.
func NewGzipCompressor() GzipCompressor {
	return GzipCompressor{level: gzip.BestCompression}
}

func (c GzipCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buffer bytes.Buffer
	gzWriter, err := gzip.NewWriterLevel(&buffer, c.level)
	if err != nil {
		return nil, err
	}

	_, err = gzWriter.Write(data)
	if err != nil {
		gzWriter.Close()
		return nil, err
	}

	err = gzWriter.Close()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func (c GzipCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	gzReader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}
	defer gzReader.Close()

	decompressed, err := io.ReadAll(gzReader)
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}
	return decompressed, nil
}
