package transcode

import (
	"fmt"
	"math/bits"
	"unsafe"

	"github.com/hupe1980/bitfield/internal/shift"
	"github.com/hupe1980/bitfield/internal/uint128"
)

// MaxWidth is the widest field the transcoder can move.
const MaxWidth = 128

// workingWidths are the candidate working word widths, in bits.
var workingWidths = [...]uint32{8, 16, 32, 64, 128}

// Field locates a bit field inside a caller-owned buffer. Off is a flat bit
// offset from the start of Buf and may be denormalized (exceed any word
// boundary).
type Field struct {
	Buf    []byte
	Off    uint64
	Width  uint8
	Signed bool
}

// SpanError reports that no working word width covers both fields.
type SpanError struct {
	SrcSpan int
	DstSpan int
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("no working word width covers spans: src %d bits, dst %d bits (max %d)", e.SrcSpan, e.DstSpan, MaxWidth)
}

// BoundsError reports that a field's byte span extends past its buffer.
type BoundsError struct {
	Need int
	Have int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("field spans %d bytes but buffer holds %d", e.Need, e.Have)
}

// WidthError reports a field width outside [1, MaxWidth].
type WidthError struct {
	Width int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("field width %d out of range [1, %d]", e.Width, MaxWidth)
}

// WordSizeError reports an invalid cursor word size.
type WordSizeError struct {
	Size int
}

func (e *WordSizeError) Error() string {
	return fmt.Sprintf("word size %d is not a power of two in [1, 16]", e.Size)
}

// Copy moves the source field's value into the destination field, honoring
// signedness and saturating where the destination cannot represent the
// source. wordSize is the cursor word granularity in bytes (a power of two
// in [1, 16]); offsets are normalized at that granularity and the working
// word is never narrower than it.
//
// On error the destination buffer is unchanged. Copy does not advance the
// field offsets; the caller owns cursor movement.
func Copy(dst, src Field, wordSize int) error {
	if wordSize < 1 || wordSize > 16 || wordSize&(wordSize-1) != 0 {
		return &WordSizeError{Size: wordSize}
	}
	if src.Width < 1 || int(src.Width) > MaxWidth {
		return &WidthError{Width: int(src.Width)}
	}
	if dst.Width < 1 || int(dst.Width) > MaxWidth {
		return &WidthError{Width: int(dst.Width)}
	}

	// Normalize the offsets: whole words move into the byte position, the
	// remainder stays as an intra-word bit shift. The division is a right
	// shift because wordSize is a power of two.
	wordShift := uint(bits.TrailingZeros(uint(wordSize))) + 3
	wordMask := uint64(wordSize)*8 - 1

	srcBase := int(src.Off>>wordShift) * wordSize
	srcShift := uint8(src.Off & wordMask)
	dstBase := int(dst.Off>>wordShift) * wordSize
	dstShift := uint8(dst.Off & wordMask)

	srcSpan := uint32(srcShift) + uint32(src.Width)
	dstSpan := uint32(dstShift) + uint32(dst.Width)

	// Smallest working width that is at least the cursor granularity and
	// byte-covers both fields with a single word.
	granularity := uint32(wordSize) * 8
	working := uint32(0)
	for _, b := range workingWidths {
		if b >= granularity && srcSpan <= b && dstSpan <= b {
			working = b
			break
		}
	}
	if working == 0 {
		return &SpanError{SrcSpan: int(srcSpan), DstSpan: int(dstSpan)}
	}

	srcBytes := int(srcSpan+7) / 8
	dstBytes := int(dstSpan+7) / 8
	if have := len(src.Buf) - srcBase; have < srcBytes {
		return &BoundsError{Need: srcBytes, Have: max(have, 0)}
	}
	if have := len(dst.Buf) - dstBase; have < dstBytes {
		return &BoundsError{Need: dstBytes, Have: max(have, 0)}
	}

	d := dst.Buf[dstBase:]
	s := src.Buf[srcBase:]

	switch working {
	case 8:
		bsToBS[uint8](d, dstShift, dst.Width, dst.Signed, s, srcShift, src.Width, src.Signed)
	case 16:
		bsToBS[uint16](d, dstShift, dst.Width, dst.Signed, s, srcShift, src.Width, src.Signed)
	case 32:
		bsToBS[uint32](d, dstShift, dst.Width, dst.Signed, s, srcShift, src.Width, src.Signed)
	case 64:
		bsToBS[uint64](d, dstShift, dst.Width, dst.Signed, s, srcShift, src.Width, src.Signed)
	default:
		bsToBS128(d, dstShift, dst.Width, dst.Signed, s, srcShift, src.Width, src.Signed)
	}

	return nil
}

// word is the set of native unsigned working word types.
type word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// wordBits returns the size of T in bits.
func wordBits[T word]() uint8 {
	var v T
	return uint8(unsafe.Sizeof(v)) * 8
}

// load assembles the first n bytes of b into a little-endian word:
// byte i lands in bits [8i, 8i+8).
func load[T word](b []byte, n int) T {
	var v T
	for i := 0; i < n; i++ {
		v |= T(b[i]) << (8 * i)
	}
	return v
}

// store writes the low 8*n bits of v into b[:n] little-endian.
func store[T word](b []byte, n int, v T) {
	for i := 0; i < n; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

// bsToBS copies a bit field between two buffers inside a single working
// word of type T. Both spans must fit T and both buffers must hold their
// spans; Copy establishes both before dispatching here.
func bsToBS[T word](dst []byte, dstShift, dstWidth uint8, dstSigned bool, src []byte, srcShift, srcWidth uint8, srcSigned bool) {
	dataBits := wordBits[T]()

	// Masks covering the field widths, anchored at bit 0.
	srcMask := shift.LogicalRight(^T(0), dataBits-srcWidth)
	dstMask := shift.LogicalRight(^T(0), dataBits-dstWidth)

	// Sign bits of the two fields, anchored at bit 0.
	srcSignMask := shift.LogicalLeft(T(1), srcWidth-1)
	dstSignMask := shift.LogicalLeft(T(1), dstWidth-1)

	srcBytes := (int(srcShift) + int(srcWidth) + 7) / 8
	v := load[T](src, srcBytes)

	// Align the field at bit 0 and drop everything around it.
	v = shift.LogicalRight(v, srcShift) & srcMask

	negative := srcSigned && v&srcSignMask != 0
	if negative {
		switch {
		case !dstSigned:
			// Negative into unsigned saturates to zero.
			v = 0
		case srcWidth > dstWidth:
			// Bits [dstWidth-1, srcWidth) must all be ones for the value to
			// survive the narrowing; e.g. 1101 fits 3 bits, 1001 does not.
			excess := srcMask &^ shift.LogicalRight(dstMask, 1)
			if v&excess != excess {
				// More negative than the destination minimum (100...0).
				v = dstSignMask
			} else {
				v &= dstMask
			}
		default:
			// Extend the sign through the added destination bits.
			v |= dstMask &^ srcMask
		}
	} else {
		maxPositive := dstMask
		if dstSigned {
			maxPositive = shift.LogicalRight(dstMask, 1)
		}
		if v > maxPositive {
			v = maxPositive
		}
	}

	// Move the adjusted value into position and splice it into the
	// destination word, leaving bits outside the field untouched.
	v = shift.LogicalLeft(v, dstShift)
	fieldMask := shift.LogicalLeft(dstMask, dstShift)

	dstBytes := (int(dstShift) + int(dstWidth) + 7) / 8
	current := load[T](dst, dstBytes)
	v |= current &^ fieldMask

	store(dst, dstBytes, v)
}

// bsToBS128 is bsToBS over the 128-bit composite word.
func bsToBS128(dst []byte, dstShift, dstWidth uint8, dstSigned bool, src []byte, srcShift, srcWidth uint8, srcSigned bool) {
	srcMask := uint128.Max.Rsh(uint8(MaxWidth) - srcWidth)
	dstMask := uint128.Max.Rsh(uint8(MaxWidth) - dstWidth)

	srcSignMask := uint128.From64(1).Lsh(srcWidth - 1)
	dstSignMask := uint128.From64(1).Lsh(dstWidth - 1)

	srcBytes := (int(srcShift) + int(srcWidth) + 7) / 8
	v := uint128.FromBytes(src[:srcBytes])

	v = v.Rsh(srcShift).And(srcMask)

	negative := srcSigned && !v.And(srcSignMask).IsZero()
	if negative {
		switch {
		case !dstSigned:
			v = uint128.Zero
		case srcWidth > dstWidth:
			excess := srcMask.AndNot(dstMask.Rsh(1))
			if !v.And(excess).Equal(excess) {
				v = dstSignMask
			} else {
				v = v.And(dstMask)
			}
		default:
			v = v.Or(dstMask.AndNot(srcMask))
		}
	} else {
		maxPositive := dstMask
		if dstSigned {
			maxPositive = dstMask.Rsh(1)
		}
		if v.Gt(maxPositive) {
			v = maxPositive
		}
	}

	v = v.Lsh(dstShift)
	fieldMask := dstMask.Lsh(dstShift)

	dstBytes := (int(dstShift) + int(dstWidth) + 7) / 8
	current := uint128.FromBytes(dst[:dstBytes])
	v = v.Or(current.AndNot(fieldMask))

	v.PutBytes(dst[:dstBytes])
}
