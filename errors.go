package bitfield

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitfield/internal/transcode"
)

var (
	// ErrUnsupported is returned when a copy cannot be performed: no
	// working word width in {8, 16, 32, 64, 128} covers both field spans,
	// a field width or word size is out of range, or a field's byte span
	// extends past its backing buffer. The destination buffer is never
	// modified when ErrUnsupported is returned.
	ErrUnsupported = errors.New("unsupported bit copy")
)

// ErrSpanExceeded indicates that a field's intra-word offset plus its width
// does not fit any working word width.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrSpanExceeded struct {
	SrcSpan int
	DstSpan int
	cause   error
}

func (e *ErrSpanExceeded) Error() string {
	return fmt.Sprintf("span exceeds widest working word: src %d bits, dst %d bits", e.SrcSpan, e.DstSpan)
}

func (e *ErrSpanExceeded) Unwrap() error { return e.cause }

// ErrShortBuffer indicates that a field's byte span extends past its
// backing buffer.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrShortBuffer struct {
	Need  int
	Have  int
	cause error
}

func (e *ErrShortBuffer) Error() string {
	return fmt.Sprintf("short buffer: field spans %d bytes, buffer holds %d", e.Need, e.Have)
}

func (e *ErrShortBuffer) Unwrap() error { return e.cause }

// ErrInvalidWidth indicates a field width outside [1, 128].
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidWidth struct {
	Width int
	cause error
}

func (e *ErrInvalidWidth) Error() string {
	return fmt.Sprintf("invalid field width: %d", e.Width)
}

func (e *ErrInvalidWidth) Unwrap() error { return e.cause }

// ErrInvalidWordSize indicates a cursor word size that is not a power of
// two in [1, 16].
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidWordSize struct {
	Size  int
	cause error
}

func (e *ErrInvalidWordSize) Error() string {
	return fmt.Sprintf("invalid word size: %d", e.Size)
}

func (e *ErrInvalidWordSize) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var span *transcode.SpanError
	if errors.As(err, &span) {
		return fmt.Errorf("%w: %w", ErrUnsupported, &ErrSpanExceeded{SrcSpan: span.SrcSpan, DstSpan: span.DstSpan, cause: err})
	}
	var bounds *transcode.BoundsError
	if errors.As(err, &bounds) {
		return fmt.Errorf("%w: %w", ErrUnsupported, &ErrShortBuffer{Need: bounds.Need, Have: bounds.Have, cause: err})
	}
	var width *transcode.WidthError
	if errors.As(err, &width) {
		return fmt.Errorf("%w: %w", ErrUnsupported, &ErrInvalidWidth{Width: width.Width, cause: err})
	}
	var wordSize *transcode.WordSizeError
	if errors.As(err, &wordSize) {
		return fmt.Errorf("%w: %w", ErrUnsupported, &ErrInvalidWordSize{Size: wordSize.Size, cause: err})
	}

	return err
}
