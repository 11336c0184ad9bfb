package bitfield

import (
	"unsafe"

	"github.com/hupe1980/bitfield/internal/transcode"
)

// MaxWidth is the widest field Copy can move, in bits.
const MaxWidth = transcode.MaxWidth

// Integer is the set of native integer types Read and Write operate on.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Field locates a bit-packed integer inside a caller-owned buffer.
//
// Bit is a flat bit offset from the start of Buf and may be denormalized
// (exceed any word boundary); Copy normalizes it internally without
// modifying the field. Width is the field's size in bits, 1 to MaxWidth.
// Signed determines the interpretation of the field's most significant bit.
type Field struct {
	Buf    []byte
	Bit    uint64
	Width  uint8
	Signed bool
}

// Copy moves the value of the source field into the destination field.
//
// Signedness is honored on both sides and values the destination cannot
// represent are saturated: negative into unsigned yields 0, out-of-range
// negatives yield the destination minimum, and out-of-range positives yield
// the destination maximum. Bits outside the destination field are left
// untouched.
//
// On success both field offsets advance by their widths. On failure Copy
// returns an error matching ErrUnsupported, the destination buffer and both
// offsets are unchanged, and the configured error sink (if any) is invoked.
func Copy(dst, src *Field, optFns ...Option) error {
	opts := resolveOptions(optFns)

	err := transcode.Copy(
		transcode.Field{Buf: dst.Buf, Off: dst.Bit, Width: dst.Width, Signed: dst.Signed},
		transcode.Field{Buf: src.Buf, Off: src.Bit, Width: src.Width, Signed: src.Signed},
		opts.wordSize,
	)
	if err != nil {
		err = translateError(err)
		opts.logger.LogCopy(dst, src, err)
		if opts.sink != nil {
			opts.sink(ErrorInfo{Severity: SeverityError, Op: "copy", Err: err}, "bit copy failed: "+err.Error())
		}
		return err
	}

	// Log before the cursors move so the offsets name the copied fields.
	opts.logger.LogCopy(dst, src, nil)

	dst.Bit += uint64(dst.Width)
	src.Bit += uint64(src.Width)

	return nil
}

// Read extracts the source field into a native integer of type T. The
// destination width is the bit size of T and its signedness is derived
// from T, so the field value is sign-extended or saturated exactly as a
// Copy into a T-shaped field would be. On success the source offset
// advances by the field width.
func Read[T Integer](src *Field, optFns ...Option) (T, error) {
	var scratch [16]byte
	size := sizeOf[T]()

	dst := Field{
		Buf:    scratch[:size],
		Width:  uint8(size) * 8,
		Signed: isSigned[T](),
	}
	if err := Copy(&dst, src, optFns...); err != nil {
		return 0, err
	}

	// Decode the little-endian staging bytes.
	var v T
	for i := 0; i < size; i++ {
		v |= T(scratch[i]) << (8 * i)
	}

	return v, nil
}

// Write packs a native integer of type T into the destination field. The
// source width is the bit size of T and its signedness is derived from T.
// On success the destination offset advances by the field width.
func Write[T Integer](dst *Field, v T, optFns ...Option) error {
	var scratch [16]byte
	size := sizeOf[T]()

	// Stage the value little-endian; two's complement keeps the sign in
	// the top staged bit.
	for i := 0; i < size; i++ {
		scratch[i] = byte(v >> (8 * i))
	}

	src := Field{
		Buf:    scratch[:size],
		Width:  uint8(size) * 8,
		Signed: isSigned[T](),
	}

	return Copy(dst, &src, optFns...)
}

// sizeOf returns the size of T in bytes.
func sizeOf[T Integer]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// isSigned reports whether T is a signed type, probed by decrementing the
// zero value below zero.
func isSigned[T Integer]() bool {
	var v T
	v--
	return v < 0
}
