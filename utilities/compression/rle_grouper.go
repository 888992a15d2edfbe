package compression

import (
	"bufio"
	"errors"
	"io"
)

// ByteRun represents a single run of a particular byte value.
type ByteRun struct {
	// Byte is the byte value for this run.
	Byte byte
	// RunLength gives the number of times the byte occurs in the run (not the
	// number of times it's repeated).
	//
	// A valid run will always have this be 1 or greater. A value less than 1
	// indicates either EOF was encountered, or an error occurred.
	RunLength int
}

// InvalidRLERun is returned by [RunLengthGrouper.GetNextRun] alongside any error,
// including [io.EOF].
var InvalidRLERun = ByteRun{Byte: 0, RunLength: 0}

// RunLengthGrouper splits a byte stream into maximal runs of identical bytes.
type RunLengthGrouper struct {
	rd *bufio.Reader
}

// NewRunLengthGrouper creates a [RunLengthGrouper] reading from `rd`. Reads are
// buffered, so `rd` shouldn't be used directly afterwards.
func NewRunLengthGrouper(rd io.Reader) RunLengthGrouper {
	return RunLengthGrouper{rd: bufio.NewReader(rd)}
}

// GetNextRun returns a [ByteRun] for the next byte or run of byte values in the
// stream. Once the stream is exhausted it returns [InvalidRLERun] and [io.EOF].
func (grouper RunLengthGrouper) GetNextRun() (ByteRun, error) {
	firstByte, err := grouper.rd.ReadByte()
	// Bail if any error occurred, including EOF.
	if err != nil {
		return InvalidRLERun, err
	}

	runLength := 1
	for {
		currentByte, err := grouper.rd.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return InvalidRLERun, err
		}
		if currentByte != firstByte {
			// Hit a different byte, back up and return.
			_ = grouper.rd.UnreadByte()
			break
		}
		runLength++
	}
	return ByteRun{Byte: firstByte, RunLength: runLength}, nil
}
