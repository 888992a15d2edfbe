package compression_test

import (
	"fmt"

	c "github.com/dargueta/packbits/utilities/compression"
)

func signed(data []byte) []int8 {
	result := make([]int8, len(data))
	for i, b := range data {
		result[i] = int8(b)
	}
	return result
}

func ExampleEncodeToBytes() {
	for _, input := range []string{"abcdef", "abbbbc", "aabbcc", "abbccd"} {
		encoded := c.EncodeToBytes([]byte(input))
		fmt.Printf("%s => %v (%d bytes)\n", input, signed(encoded), len(encoded))
	}

	// Output:
	// abcdef => [5 97 98 99 100 101 102] (7 bytes)
	// abbbbc => [0 97 -3 98 0 99] (6 bytes)
	// aabbcc => [-1 97 -1 98 -1 99] (6 bytes)
	// abbccd => [5 97 98 98 99 99 100] (7 bytes)
}

func ExampleParseChunks() {
	chunks, err := c.ParseChunks(c.EncodeToBytes([]byte("xyzzzzzzzzw")))
	if err != nil {
		panic(err)
	}

	for _, chunk := range chunks {
		fmt.Printf("%-7s control=%-3d decoded=[%d, %d)\n",
			chunk.Kind, chunk.Control, chunk.DecodedOffset, chunk.DecodedOffset+chunk.Length)
	}

	// Output:
	// literal control=1   decoded=[0, 2)
	// repeat  control=-7  decoded=[2, 10)
	// literal control=0   decoded=[10, 11)
}
