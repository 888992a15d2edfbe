package packbits

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// PackBitsError is the interface implemented by every error this module
// returns. Use [errors.Is] against the exported sentinels to classify them.
type PackBitsError interface {
	error
	WithMessage(message string) PackBitsError
	Wrap(err error) PackBitsError
}

type basePackBitsError string

var ErrBadFormat = basePackBitsError("Unrecognized data format")
var ErrBufferTooSmall = basePackBitsError("No buffer space available")
var ErrChecksumMismatch = basePackBitsError("Checksum mismatch")
var ErrCorrupted = basePackBitsError("Corrupted data")
var ErrInvalidArgument = basePackBitsError("Invalid argument")
var ErrIOFailed = basePackBitsError("Input/output error")
var ErrNotSupported = basePackBitsError("Operation not supported")

func (e basePackBitsError) Error() string {
	return string(e)
}

func (e basePackBitsError) WithMessage(message string) PackBitsError {
	return customPackBitsError{
		message:       fmt.Sprintf("%s: %s", e.Error(), message),
		originalError: e,
	}
}

func (e basePackBitsError) Wrap(err error) PackBitsError {
	return customPackBitsError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customPackBitsError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customPackBitsError) Error() string {
	return e.message
}

func (e customPackBitsError) WithMessage(message string) PackBitsError {
	return customPackBitsError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customPackBitsError) Wrap(err error) PackBitsError {
	return customPackBitsError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customPackBitsError) Unwrap() error {
	return e.originalError
}
