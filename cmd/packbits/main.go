package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

var rowSizeFlag = &cli.IntFlag{
	Name:  "row-size",
	Usage: "encode each `BYTES`-long row separately; 0 treats the input as one row",
	Value: 0,
}

func main() {
	app := cli.App{
		Name:  "packbits",
		Usage: "Encode, decode and inspect PackBits data",
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Encode a raw file with PackBits",
				Action:    encodeFile,
				ArgsUsage: "INPUT_FILE  OUTPUT_FILE",
				Flags:     []cli.Flag{rowSizeFlag},
			},
			{
				Name:      "decode",
				Usage:     "Decode a raw PackBits file",
				Action:    decodeFile,
				ArgsUsage: "INPUT_FILE  OUTPUT_FILE",
				Flags:     []cli.Flag{rowSizeFlag},
			},
			{
				Name:      "compress",
				Usage:     "Pack a file into a compressed image",
				Action:    compressFile,
				ArgsUsage: "INPUT_FILE  OUTPUT_FILE",
				Flags: []cli.Flag{
					rowSizeFlag,
					&cli.StringFlag{
						Name:    "compression",
						Aliases: []string{"c"},
						Usage:   "outer codec: none, gzip, zstd, s2 or lz4",
						Value:   "gzip",
					},
				},
			},
			{
				Name:      "decompress",
				Usage:     "Expand a compressed image",
				Action:    decompressFile,
				ArgsUsage: "INPUT_FILE  OUTPUT_FILE",
			},
			{
				Name:      "inspect",
				Usage:     "List the chunks of a raw PackBits file as CSV",
				Action:    inspectFile,
				ArgsUsage: "INPUT_FILE",
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}
