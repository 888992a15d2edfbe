package compression_test

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	c "github.com/dargueta/packbits/utilities/compression"
)

// generateBenchmarkData creates test data of the given size. "sparse" is mostly
// zeros like an empty disk image, "raster" has short runs like a scanned
// page, and anything else has no runs at all.
func generateBenchmarkData(size int, kind string) []byte {
	data := make([]byte, size)

	switch kind {
	case "sparse":
		for i := 0; i < size; i += 4096 {
			copy(data[i:], "occasional data in a sea of zeros")
		}
	case "raster":
		for i := range data {
			data[i] = byte((i / 5) % 3)
		}
	default:
		for i := range data {
			data[i] = byte((i*31 + i*i*7) % 251)
		}
	}
	return data
}

var benchSizes = []int{1024, 16384, 262144}
var benchKinds = []string{"sparse", "raster", "incompressible"}

func BenchmarkEncode(b *testing.B) {
	for _, kind := range benchKinds {
		for _, size := range benchSizes {
			data := generateBenchmarkData(size, kind)
			dst := make([]byte, c.MaxEncodedLen(size))

			b.Run(fmt.Sprintf("%s/%dKB", kind, size/1024), func(b *testing.B) {
				b.SetBytes(int64(size))
				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					c.EncodeTrusted(dst, data)
				}
			})
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, kind := range benchKinds {
		for _, size := range benchSizes {
			encoded := c.EncodeToBytes(generateBenchmarkData(size, kind))
			dst := make([]byte, size)

			b.Run(fmt.Sprintf("%s/%dKB", kind, size/1024), func(b *testing.B) {
				b.SetBytes(int64(size))
				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					_, err := c.Decode(dst, encoded)
					if err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkCompressPackBits(b *testing.B) {
	for _, kind := range benchKinds {
		data := generateBenchmarkData(262144, kind)

		b.Run(kind, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, err := c.CompressPackBits(bytes.NewReader(data), io.Discard)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
