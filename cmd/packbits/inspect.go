package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dargueta/packbits/utilities/compression"
	"github.com/gocarina/gocsv"
	"github.com/urfave/cli/v2"
)

// chunkRow is one line of `inspect` output.
type chunkRow struct {
	Index         int    `csv:"index"`
	Kind          string `csv:"kind"`
	Control       int8   `csv:"control"`
	Offset        int    `csv:"offset"`
	EncodedLength int    `csv:"encoded_length"`
	DecodedOffset int    `csv:"decoded_offset"`
	DecodedLength int    `csv:"decoded_length"`
}

func chunkRows(chunks []compression.Chunk) []*chunkRow {
	rows := make([]*chunkRow, len(chunks))
	for i, chunk := range chunks {
		rows[i] = &chunkRow{
			Index:         i,
			Kind:          chunk.Kind.String(),
			Control:       chunk.Control,
			Offset:        chunk.Offset,
			EncodedLength: chunk.EncodedLen(),
			DecodedOffset: chunk.DecodedOffset,
			DecodedLength: chunk.Length,
		}
	}
	return rows
}

// writeChunkTable parses `encoded` and writes its chunk table as CSV. Chunks
// parsed before an error are still written.
func writeChunkTable(encoded []byte, output io.Writer) error {
	chunks, parseErr := compression.ParseChunks(encoded)
	err := gocsv.Marshal(chunkRows(chunks), output)
	if err != nil {
		return err
	}
	return parseErr
}

func inspectFile(context *cli.Context) error {
	if context.NArg() != 1 {
		return cli.Exit(
			fmt.Sprintf("expected 1 argument, got %d", context.NArg()), 1)
	}

	input, err := openInput(context.Args().First())
	if err != nil {
		return err
	}
	defer input.Close()

	encoded, err := io.ReadAll(input)
	if err != nil {
		return err
	}
	return writeChunkTable(encoded, os.Stdout)
}
