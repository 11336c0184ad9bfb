package shift

import "unsafe"

// Unsigned is the set of fixed-width unsigned word types the transcoder
// operates on.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is the set of fixed-width signed integer types.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Integer is the union of Signed and Unsigned.
type Integer interface {
	Signed | Unsigned
}

// width returns the size of T in bits.
func width[T Integer]() uint8 {
	var v T
	return uint8(unsafe.Sizeof(v)) * 8
}

// LogicalRight shifts v right by count, filling the vacated high bits with
// zeros: the result is the unsigned reinterpretation of v shifted right, so
// the sign bit is never replicated. A count >= the width of T yields 0.
func LogicalRight[T Integer](v T, count uint8) T {
	n := width[T]()
	if count >= n {
		return 0
	}

	// Shift natively, then clear whatever sign replication put into the
	// vacated high bits. Unsigned operands pass through the mask intact.
	// The mask shifts wrap at runtime, so count == 0 masks with all ones.
	mask := T(1)<<(n-count) - 1

	return (v >> count) & mask
}

// LogicalLeft shifts v left by count, discarding bits that leave the word.
// A count >= the width of T yields 0.
func LogicalLeft[T Integer](v T, count uint8) T {
	if count >= width[T]() {
		return 0
	}
	return v << count
}

// ArithmeticRight shifts v right by count, replicating the sign bit for
// signed operands. A count >= the width of T yields 0, overriding the
// saturate-to-minus-one the native operator would produce.
func ArithmeticRight[T Integer](v T, count uint8) T {
	if count >= width[T]() {
		return 0
	}
	return v >> count
}

// ArithmeticLeft shifts v left by count. For signed operands, overflow into
// or through the sign bit wraps; callers that care must range-check first.
// A count >= the width of T yields 0.
func ArithmeticLeft[T Integer](v T, count uint8) T {
	if count >= width[T]() {
		return 0
	}
	return v << count
}
