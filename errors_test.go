package packbits_test

import (
	"errors"
	"io"
	"testing"

	"github.com/dargueta/packbits"
	"github.com/stretchr/testify/assert"
)

func TestPackBitsErrorWithMessage(t *testing.T) {
	newErr := packbits.ErrBufferTooSmall.WithMessage("asdfqwerty")
	assert.Equal(
		t, "No buffer space available: asdfqwerty", newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, packbits.ErrBufferTooSmall)
	assert.NotErrorIs(t, newErr, packbits.ErrCorrupted)
}

func TestPackBitsErrorWrap(t *testing.T) {
	originalErr := errors.New("original error")
	newErr := packbits.ErrCorrupted.Wrap(originalErr)
	expectedMessage := "Corrupted data: original error"

	assert.EqualValues(t, expectedMessage, newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, originalErr, "original error not set as parent")
	assert.ErrorIs(t, newErr, packbits.ErrCorrupted, "sentinel not set as parent")
}

func TestPackBitsErrorChained(t *testing.T) {
	newErr := packbits.ErrCorrupted.
		WithMessage("chunk at offset 12").
		Wrap(io.ErrUnexpectedEOF)

	assert.Equal(
		t,
		"Corrupted data: chunk at offset 12: unexpected EOF",
		newErr.Error(),
	)
	assert.ErrorIs(t, newErr, packbits.ErrCorrupted)
	assert.ErrorIs(t, newErr, io.ErrUnexpectedEOF)
}
