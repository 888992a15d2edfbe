package main

import (
	"bytes"
	"testing"

	"github.com/dargueta/packbits"
	"github.com/dargueta/packbits/utilities/compression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteChunkTable(t *testing.T) {
	var output bytes.Buffer
	err := writeChunkTable(compression.EncodeToBytes([]byte("abbbbc")), &output)
	require.NoError(t, err)

	expected := "index,kind,control,offset,encoded_length,decoded_offset,decoded_length\n" +
		"0,literal,0,0,2,0,1\n" +
		"1,repeat,-3,2,2,1,4\n" +
		"2,literal,0,4,2,5,1\n"
	assert.Equal(t, expected, output.String())
}

func TestWriteChunkTable__Truncated(t *testing.T) {
	var output bytes.Buffer
	err := writeChunkTable([]byte{0xfe, 'q', 5, 'a'}, &output)
	assert.ErrorIs(t, err, packbits.ErrCorrupted)
	assert.Equal(
		t,
		"index,kind,control,offset,encoded_length,decoded_offset,decoded_length\n"+
			"0,repeat,-2,0,2,0,3\n",
		output.String(),
	)
}
