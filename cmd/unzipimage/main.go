package main

import (
	"fmt"
	"os"

	"github.com/dargueta/packbits/utilities/compression"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(
			os.Stderr,
			"Expand a PackBits image file.\nUsage: %s input-file output-file\n",
			os.Args[0])
		os.Exit(1)
	}

	sourceFilePath := os.Args[1]
	outputFilePath := os.Args[2]

	sourceFile, errSrc := os.Open(sourceFilePath)
	if errSrc != nil {
		fmt.Fprintf(
			os.Stderr, "Failed to open file for reading: `%v`: %s\n", sourceFilePath, errSrc)
		os.Exit(1)
	}
	defer sourceFile.Close()

	// Decode fully before touching the output so a corrupt image doesn't
	// leave a truncated file behind.
	expanded, err := compression.DecompressImageToBytes(sourceFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error expanding file: %s\n", err)
		os.Exit(2)
	}

	err = os.WriteFile(outputFilePath, expanded, 0o644)
	if err != nil {
		fmt.Fprintf(
			os.Stderr, "Failed to write file: `%v`: %s\n", outputFilePath, err)
		os.Exit(1)
	}

	fmt.Printf("Expanded input file to %d bytes.\n", len(expanded))
}
