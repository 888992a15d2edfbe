package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dargueta/packbits/utilities/compression"
	"github.com/urfave/cli/v2"
)

// openInput opens the named file for reading. "-" is stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open `%s` for reading: %w", path, err)
	}
	return file, nil
}

// createOutput creates or truncates the named file. "-" is stdout.
func createOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open `%s` for writing: %w", path, err)
	}
	return file, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// transformFunc reads everything it needs from the input and returns the
// number of bytes written to the output.
type transformFunc func(input io.Reader, output io.Writer) (int64, error)

func runTransform(context *cli.Context, verb string, transform transformFunc) error {
	if context.NArg() != 2 {
		return cli.Exit(
			fmt.Sprintf("expected 2 arguments, got %d", context.NArg()), 1)
	}
	inputPath := context.Args().Get(0)
	outputPath := context.Args().Get(1)

	input, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer input.Close()

	output, err := createOutput(outputPath)
	if err != nil {
		return err
	}

	nWritten, err := transform(input, output)
	if closeErr := output.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("%s `%s` failed: %w", verb, inputPath, err)
	}

	if outputPath != "-" {
		log.Printf("%s `%s`: wrote %d bytes to `%s`", verb, inputPath, nWritten, outputPath)
	}
	return nil
}

// rowTransform adapts a whole-buffer row codec to a transformFunc.
func rowTransform(
	rowSize int, codec func(src []byte, rowSize int) ([]byte, error),
) transformFunc {
	return func(input io.Reader, output io.Writer) (int64, error) {
		data, err := io.ReadAll(input)
		if err != nil {
			return 0, err
		}
		result, err := codec(data, rowSize)
		if err != nil {
			return 0, err
		}
		n, err := output.Write(result)
		return int64(n), err
	}
}

func encodeFile(context *cli.Context) error {
	rowSize := context.Int(rowSizeFlag.Name)
	if rowSize > 0 {
		return runTransform(context, "encode", rowTransform(rowSize, compression.EncodeRows))
	}
	return runTransform(context, "encode", compression.CompressPackBits)
}

func decodeFile(context *cli.Context) error {
	rowSize := context.Int(rowSizeFlag.Name)
	if rowSize > 0 {
		return runTransform(context, "decode", rowTransform(rowSize, compression.DecodeRows))
	}
	return runTransform(context, "decode", compression.DecompressPackBits)
}

func compressFile(context *cli.Context) error {
	compressionType, err := compression.ParseCompressionType(context.String("compression"))
	if err != nil {
		return err
	}
	opts := []compression.ImageOption{
		compression.WithCompression(compressionType),
		compression.WithRowSize(context.Int(rowSizeFlag.Name)),
	}

	return runTransform(
		context,
		"compress",
		func(input io.Reader, output io.Writer) (int64, error) {
			return compression.CompressImage(input, output, opts...)
		},
	)
}

func decompressFile(context *cli.Context) error {
	return runTransform(context, "decompress", compression.DecompressImage)
}
