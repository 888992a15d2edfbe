package compression

import (
	"fmt"

	"github.com/dargueta/packbits"
)

type imageConfig struct {
	compression CompressionType
	rowSize     int
}

func defaultImageConfig() imageConfig {
	return imageConfig{compression: CompressionGzip}
}

// ImageOption configures [CompressImage].
type ImageOption func(*imageConfig) error

// WithCompression selects the codec applied on top of PackBits. The default is
// [CompressionGzip].
func WithCompression(compressionType CompressionType) ImageOption {
	return func(config *imageConfig) error {
		_, err := CreateCodec(compressionType)
		if err != nil {
			return err
		}
		config.compression = compressionType
		return nil
	}
}

// WithRowSize makes PackBits restart at every `rowSize` bytes, as TIFF does for
// each row of an image. 0 (the default) encodes the image as a single row.
func WithRowSize(rowSize int) ImageOption {
	return func(config *imageConfig) error {
		if rowSize < 0 || uint64(rowSize) > maxImageRowSize {
			return packbits.ErrInvalidArgument.WithMessage(
				fmt.Sprintf("row size %d not in [0, %d]", rowSize, uint64(maxImageRowSize)),
			)
		}
		config.rowSize = rowSize
		return nil
	}
}
