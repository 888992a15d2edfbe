package compression

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/dargueta/packbits"
)

// packBitsStreamWriter accumulates the pending literal for [CompressPackBits].
//
// buffer[0] is reserved for the control byte so a literal chunk goes out in a
// single write. Up to one byte past a full chunk is kept so that the literal
// never becomes empty just because it hit the size limit; an empty literal
// would change which runs qualify.
type packBitsStreamWriter struct {
	output       io.Writer
	buffer       [1 + MaxLiteralLength + 1]byte
	pendingBytes int
	totalWritten int64
}

func (w *packBitsStreamWriter) write(data []byte) error {
	n, err := w.output.Write(data)
	w.totalWritten += int64(n)
	if err != nil {
		return packbits.ErrIOFailed.Wrap(err)
	}
	return nil
}

func (w *packBitsStreamWriter) appendLiteral(value byte, count int) error {
	for ; count > 0; count-- {
		w.buffer[1+w.pendingBytes] = value
		w.pendingBytes++

		if w.pendingBytes > MaxLiteralLength {
			w.buffer[0] = byte(MaxLiteralLength - 1)
			err := w.write(w.buffer[:1+MaxLiteralLength])
			if err != nil {
				return err
			}
			w.buffer[1] = w.buffer[1+MaxLiteralLength]
			w.pendingBytes = 1
		}
	}
	return nil
}

func (w *packBitsStreamWriter) flushLiteral() error {
	if w.pendingBytes == 0 {
		return nil
	}
	w.buffer[0] = byte(w.pendingBytes - 1)
	err := w.write(w.buffer[:1+w.pendingBytes])
	w.pendingBytes = 0
	return err
}

func (w *packBitsStreamWriter) writeRun(run ByteRun) error {
	err := w.flushLiteral()
	if err != nil {
		return err
	}

	for run.RunLength >= MinRepeatLength {
		chunkLength := min(run.RunLength, MaxRepeatLength)
		err = w.write([]byte{byte(1 - chunkLength), run.Byte})
		if err != nil {
			return err
		}
		run.RunLength -= chunkLength
	}

	// A single byte left over from splitting the run starts the next literal.
	return w.appendLiteral(run.Byte, run.RunLength)
}

// CompressPackBits reads bytes from the input and writes PackBits-encoded data to
// the output until the input is exhausted. The output is identical to calling
// [EncodeToBytes] on the entire input, but only one literal chunk is held in
// memory at a time.
//
// The return value is the number of bytes written, only valid if no error
// occurred.
func CompressPackBits(input io.Reader, output io.Writer) (int64, error) {
	grouper := NewRunLengthGrouper(input)
	writer := packBitsStreamWriter{output: output}

	for {
		run, getRunErr := grouper.GetNextRun()
		if getRunErr != nil {
			if !errors.Is(getRunErr, io.EOF) {
				return writer.totalWritten, packbits.ErrIOFailed.Wrap(getRunErr)
			}
			return writer.totalWritten, writer.flushLiteral()
		}

		var err error
		if runQualifies(run.RunLength, writer.pendingBytes > 0) {
			err = writer.writeRun(run)
		} else {
			err = writer.appendLiteral(run.Byte, run.RunLength)
		}
		if err != nil {
			return writer.totalWritten, err
		}
	}
}

// DecompressPackBits reads a PackBits stream from the input and writes the
// decoded bytes to the output.
//
// The returned int64 gives the number of bytes written to the output. If the
// stream ends in the middle of a chunk, the error wraps [io.ErrUnexpectedEOF].
func DecompressPackBits(input io.Reader, output io.Writer) (int64, error) {
	source := bufio.NewReader(input)
	var chunk [MaxRepeatLength]byte
	totalBytesWritten := int64(0)
	encodedOffset := int64(0)

	for {
		controlByte, err := source.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return totalBytesWritten, nil
			}
			return totalBytesWritten, packbits.ErrIOFailed.Wrap(
				fmt.Errorf("error reading input: %w", err),
			)
		}

		control := int8(controlByte)
		var currentOutput []byte

		if control >= 0 {
			currentOutput = chunk[:int(control)+1]
			_, err = io.ReadFull(source, currentOutput)
		} else {
			var value byte
			value, err = source.ReadByte()
			currentOutput = chunk[:1-int(control)]
			for i := range currentOutput {
				currentOutput[i] = value
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return totalBytesWritten, packbits.ErrCorrupted.
					WithMessage(fmt.Sprintf("chunk at offset %d is truncated", encodedOffset)).
					Wrap(io.ErrUnexpectedEOF)
			}
			return totalBytesWritten, packbits.ErrIOFailed.Wrap(
				fmt.Errorf("error reading input: %w", err),
			)
		}

		if control >= 0 {
			encodedOffset += int64(len(currentOutput)) + 1
		} else {
			encodedOffset += 2
		}

		n, err := output.Write(currentOutput)
		totalBytesWritten += int64(n)
		if err != nil {
			return totalBytesWritten, packbits.ErrIOFailed.Wrap(
				fmt.Errorf("failed to write to output: %w", err),
			)
		}
	}
}
