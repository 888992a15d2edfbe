package testing

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"

	"github.com/dargueta/packbits/utilities/compression"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// CreateRandomImage returns `bytesPerBlock * totalBlocks` random bytes. It is
// guaranteed to either return a valid slice or fail the test and abort.
func CreateRandomImage(bytesPerBlock, totalBlocks uint, t *testing.T) []byte {
	backingData := make([]byte, bytesPerBlock*totalBlocks)

	_, err := rand.Read(backingData)
	require.NoErrorf(
		t,
		err,
		"failed to initialize %d blocks of size %d with random bytes",
		totalBlocks,
		bytesPerBlock,
	)
	return backingData
}

// CreateSparseImage returns an image of `totalBlocks` blocks where only every
// `stride`-th block holds random data and the rest are zeroed, which is what a
// freshly formatted disk or a mostly blank raster looks like.
func CreateSparseImage(bytesPerBlock, totalBlocks, stride uint, t *testing.T) []byte {
	require.NotZero(t, stride, "stride must be positive")

	image := make([]byte, bytesPerBlock*totalBlocks)
	for block := uint(0); block < totalBlocks; block += stride {
		start := block * bytesPerBlock
		_, err := rand.Read(image[start : start+bytesPerBlock])
		require.NoErrorf(t, err, "failed to fill block %d", block)
	}
	return image
}

// CompressImage compresses `rawImage` with [compression.CompressImage] and
// returns the result, failing the test on error.
func CompressImage(t *testing.T, rawImage []byte, opts ...compression.ImageOption) []byte {
	var buffer bytes.Buffer
	n, err := compression.CompressImage(bytes.NewReader(rawImage), &buffer, opts...)
	require.NoError(t, err, "failed to compress image")
	require.EqualValues(t, buffer.Len(), n, "reported compressed size is wrong")
	return buffer.Bytes()
}

// LoadDiskImage takes a compressed image and returns a stream to access the
// uncompressed data.
//
//   - Writes to the stream do not affect `compressedImageBytes`.
//   - While the stream can be written to, its size is fixed to `sectorSize * totalSectors`.
//     Attempting to write past the end of this buffer will trigger an error.
func LoadDiskImage(
	t *testing.T, compressedImageBytes []byte, sectorSize, totalSectors uint,
) io.ReadWriteSeeker {
	compressedBuf := bytes.NewBuffer(compressedImageBytes)
	require.Greater(t, len(compressedImageBytes), 0, "compressed image is empty")

	imageBytes, err := compression.DecompressImageToBytes(compressedBuf)
	require.NoError(t, err)

	require.Equal(
		t,
		totalSectors*sectorSize,
		uint(len(imageBytes)),
		"uncompressed image is wrong size",
	)
	return bytesextra.NewReadWriteSeeker(imageBytes)
}
