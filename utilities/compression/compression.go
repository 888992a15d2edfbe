package compression

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/dargueta/packbits"
)

const imageMagic = "PKBI"
const imageFormatVersion = 1
const imageHeaderSize = 40
const maxImageRowSize = math.MaxUint32

// imageHeader is the fixed-size, little-endian header at the start of every
// compressed image:
//
//	0   magic "PKBI"
//	4   format version (1)
//	5   compression type
//	6   reserved, must be 0 (2 bytes)
//	8   row size in bytes, 0 for the whole image (4 bytes)
//	12  raw image size (8 bytes)
//	20  PackBits payload size, before the outer codec (8 bytes)
//	28  xxHash64 of the raw image (8 bytes)
//	36  reserved, must be 0 (4 bytes)
type imageHeader struct {
	Compression CompressionType
	RowSize     uint32
	RawSize     uint64
	PackedSize  uint64
	Checksum    uint64
}

func (h imageHeader) MarshalBinary() ([]byte, error) {
	buffer := make([]byte, imageHeaderSize)
	copy(buffer, imageMagic)
	buffer[4] = imageFormatVersion
	buffer[5] = byte(h.Compression)
	binary.LittleEndian.PutUint32(buffer[8:], h.RowSize)
	binary.LittleEndian.PutUint64(buffer[12:], h.RawSize)
	binary.LittleEndian.PutUint64(buffer[20:], h.PackedSize)
	binary.LittleEndian.PutUint64(buffer[28:], h.Checksum)
	return buffer, nil
}

func (h *imageHeader) UnmarshalBinary(data []byte) error {
	if len(data) != imageHeaderSize {
		return packbits.ErrBadFormat.WithMessage(
			fmt.Sprintf("image header must be %d bytes, got %d", imageHeaderSize, len(data)),
		)
	}
	if string(data[:4]) != imageMagic {
		return packbits.ErrBadFormat.WithMessage(
			fmt.Sprintf("bad magic number %q", data[:4]),
		)
	}
	if data[4] != imageFormatVersion {
		return packbits.ErrNotSupported.WithMessage(
			fmt.Sprintf("image format version %d", data[4]),
		)
	}
	if binary.LittleEndian.Uint16(data[6:]) != 0 || binary.LittleEndian.Uint32(data[36:]) != 0 {
		return packbits.ErrBadFormat.WithMessage("reserved header fields are not zero")
	}

	h.Compression = CompressionType(data[5])
	h.RowSize = binary.LittleEndian.Uint32(data[8:])
	h.RawSize = binary.LittleEndian.Uint64(data[12:])
	h.PackedSize = binary.LittleEndian.Uint64(data[20:])
	h.Checksum = binary.LittleEndian.Uint64(data[28:])
	return nil
}

// CompressImage compresses a raw image using PackBits followed by a second codec
// (gzip unless [WithCompression] says otherwise).
//
// The returned int64 gives the number of bytes written to the output stream. If
// an error occurred, the value is undefined and should not be used.
func CompressImage(input io.Reader, output io.Writer, opts ...ImageOption) (int64, error) {
	config := defaultImageConfig()
	for _, opt := range opts {
		err := opt(&config)
		if err != nil {
			return 0, err
		}
	}

	codec, err := CreateCodec(config.compression)
	if err != nil {
		return 0, err
	}

	rawImage, err := io.ReadAll(input)
	if err != nil {
		return 0, packbits.ErrIOFailed.Wrap(err)
	}

	var packed []byte
	if config.rowSize > 0 {
		packed, err = EncodeRows(rawImage, config.rowSize)
		if err != nil {
			return 0, err
		}
	} else {
		packed = EncodeToBytes(rawImage)
	}

	payload, err := codec.Compress(packed)
	if err != nil {
		return 0, fmt.Errorf("%s compression failed: %w", config.compression, err)
	}

	header := imageHeader{
		Compression: config.compression,
		RowSize:     uint32(config.rowSize),
		RawSize:     uint64(len(rawImage)),
		PackedSize:  uint64(len(packed)),
		Checksum:    xxhash.Sum64(rawImage),
	}
	headerBytes, _ := header.MarshalBinary()

	totalWritten := int64(0)
	for _, section := range [][]byte{headerBytes, payload} {
		n, err := output.Write(section)
		totalWritten += int64(n)
		if err != nil {
			return totalWritten, packbits.ErrIOFailed.Wrap(err)
		}
	}
	return totalWritten, nil
}

// DecompressImage takes an image written by [CompressImage] and writes the
// original raw bytes to the output. The checksum is verified before anything
// is written.
//
// The returned int64 gives the number of bytes written to the output (i.e. the
// decompressed size of the image). If an error occurred, the value is undefined
// and should not be used.
func DecompressImage(input io.Reader, output io.Writer) (int64, error) {
	rawImage, err := DecompressImageToBytes(input)
	if err != nil {
		return 0, err
	}

	if len(rawImage) == 0 {
		return 0, nil
	}

	n, err := output.Write(rawImage)
	if err != nil {
		return int64(n), packbits.ErrIOFailed.Wrap(err)
	}
	return int64(n), nil
}

// DecompressImageToBytes is [DecompressImage] returning the raw image in a new
// slice instead of writing it to an [io.Writer].
func DecompressImageToBytes(input io.Reader) ([]byte, error) {
	headerBytes := make([]byte, imageHeaderSize)
	_, err := io.ReadFull(input, headerBytes)
	if err != nil {
		return nil, packbits.ErrBadFormat.WithMessage("can't read image header").Wrap(err)
	}

	var header imageHeader
	err = header.UnmarshalBinary(headerBytes)
	if err != nil {
		return nil, err
	}

	codec, err := CreateCodec(header.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := io.ReadAll(input)
	if err != nil {
		return nil, packbits.ErrIOFailed.Wrap(err)
	}

	if header.PackedSize > math.MaxInt {
		return nil, packbits.ErrCorrupted.WithMessage(
			fmt.Sprintf("PackBits payload size %d is too large", header.PackedSize),
		)
	}

	var packed []byte
	if sized, ok := codec.(SizedDecompressor); ok {
		packed, err = sized.DecompressSized(payload, int(header.PackedSize))
	} else {
		packed, err = codec.Decompress(payload)
	}
	if err != nil {
		return nil, packbits.ErrCorrupted.Wrap(err)
	}
	if uint64(len(packed)) != header.PackedSize {
		return nil, packbits.ErrCorrupted.WithMessage(
			fmt.Sprintf(
				"PackBits payload should be %d bytes, got %d",
				header.PackedSize,
				len(packed),
			),
		)
	}

	var rawImage []byte
	if header.RowSize > 0 {
		rawImage, err = DecodeRows(packed, int(header.RowSize))
	} else {
		rawImage, err = DecodeToBytes(packed)
	}
	if err != nil {
		return nil, err
	}

	if uint64(len(rawImage)) != header.RawSize {
		return nil, packbits.ErrCorrupted.WithMessage(
			fmt.Sprintf(
				"image should be %d bytes, decompressed to %d",
				header.RawSize,
				len(rawImage),
			),
		)
	}
	if checksum := xxhash.Sum64(rawImage); checksum != header.Checksum {
		return nil, packbits.ErrChecksumMismatch.WithMessage(
			fmt.Sprintf("expected %016x, got %016x", header.Checksum, checksum),
		)
	}
	return rawImage, nil
}
