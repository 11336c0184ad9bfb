// Package uint128 implements an unsigned 128-bit integer built from two
// uint64 halves. It exists so the transcoder's 128-bit working width behaves
// like the native widths: the same masks, shifts and comparisons, with
// over-wide shift counts yielding zero.
//
// Bit k of the composite is bit k of the low half for k < 64, otherwise
// bit k-64 of the high half. Byte construction and emission are
// little-endian.
package uint128

import "math/bits"

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Lo, Hi uint64
}

// Zero is the all-zero value.
var Zero = Uint128{}

// Max has all 128 bits set.
var Max = Uint128{Lo: ^uint64(0), Hi: ^uint64(0)}

// From returns the composite with the given high and low halves.
func From(hi, lo uint64) Uint128 {
	return Uint128{Lo: lo, Hi: hi}
}

// From64 returns the composite holding a single uint64.
func From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// FromBytes assembles a composite from up to 16 little-endian bytes:
// byte i contributes to bits [8i, 8i+8).
func FromBytes(b []byte) Uint128 {
	var v Uint128
	n := len(b)
	if n > 16 {
		n = 16
	}
	for i := 0; i < n && i < 8; i++ {
		v.Lo |= uint64(b[i]) << (8 * i)
	}
	for i := 8; i < n; i++ {
		v.Hi |= uint64(b[i]) << (8 * (i - 8))
	}
	return v
}

// PutBytes stores the low 8*n bits of v into b[:n] little-endian, n = min(len(b), 16).
func (v Uint128) PutBytes(b []byte) {
	n := len(b)
	if n > 16 {
		n = 16
	}
	for i := 0; i < n && i < 8; i++ {
		b[i] = byte(v.Lo >> (8 * i))
	}
	for i := 8; i < n; i++ {
		b[i] = byte(v.Hi >> (8 * (i - 8)))
	}
}

// IsZero reports whether v is zero.
func (v Uint128) IsZero() bool {
	return v.Lo == 0 && v.Hi == 0
}

// Equal reports bytewise equality.
func (v Uint128) Equal(o Uint128) bool {
	return v.Lo == o.Lo && v.Hi == o.Hi
}

// Cmp returns -1, 0 or 1 depending on whether v is below, equal to or above o.
func (v Uint128) Cmp(o Uint128) int {
	switch {
	case v.Hi != o.Hi:
		if v.Hi < o.Hi {
			return -1
		}
		return 1
	case v.Lo != o.Lo:
		if v.Lo < o.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Gt reports whether v > o.
func (v Uint128) Gt(o Uint128) bool {
	return v.Cmp(o) > 0
}

// And returns v & o.
func (v Uint128) And(o Uint128) Uint128 {
	return Uint128{Lo: v.Lo & o.Lo, Hi: v.Hi & o.Hi}
}

// AndNot returns v &^ o.
func (v Uint128) AndNot(o Uint128) Uint128 {
	return Uint128{Lo: v.Lo &^ o.Lo, Hi: v.Hi &^ o.Hi}
}

// Or returns v | o.
func (v Uint128) Or(o Uint128) Uint128 {
	return Uint128{Lo: v.Lo | o.Lo, Hi: v.Hi | o.Hi}
}

// Not returns ^v.
func (v Uint128) Not() Uint128 {
	return Uint128{Lo: ^v.Lo, Hi: ^v.Hi}
}

// Bit returns bit i of v (i in [0, 128)).
func (v Uint128) Bit(i uint8) uint {
	if i >= 128 {
		return 0
	}
	if i < 64 {
		return uint(v.Lo>>i) & 1
	}
	return uint(v.Hi>>(i-64)) & 1
}

// Lsh returns v shifted left by count, discarding bits that leave the word.
// A count >= 128 yields 0.
func (v Uint128) Lsh(count uint8) Uint128 {
	switch {
	case count == 0:
		return v
	case count < 64:
		return Uint128{
			Lo: v.Lo << count,
			Hi: v.Hi<<count | v.Lo>>(64-count),
		}
	case count < 128:
		return Uint128{Hi: v.Lo << (count - 64)}
	default:
		return Zero
	}
}

// Rsh returns v shifted right by count with zero fill.
// A count >= 128 yields 0.
func (v Uint128) Rsh(count uint8) Uint128 {
	switch {
	case count == 0:
		return v
	case count < 64:
		return Uint128{
			Lo: v.Lo>>count | v.Hi<<(64-count),
			Hi: v.Hi >> count,
		}
	case count < 128:
		return Uint128{Lo: v.Hi >> (count - 64)}
	default:
		return Zero
	}
}

// Arsh returns the two's-complement arithmetic right shift of v by count:
// the vacated high bits replicate bit 127. Following the safe-shift
// contract, a count >= 128 yields 0 rather than the replicated sign.
func (v Uint128) Arsh(count uint8) Uint128 {
	switch {
	case count == 0:
		return v
	case count < 64:
		return Uint128{
			Lo: v.Lo>>count | v.Hi<<(64-count),
			Hi: uint64(int64(v.Hi) >> count),
		}
	case count < 128:
		return Uint128{
			Lo: uint64(int64(v.Hi) >> (count - 64)),
			Hi: uint64(int64(v.Hi) >> 63),
		}
	default:
		return Zero
	}
}

// Add returns v + o with wrap-around.
func (v Uint128) Add(o Uint128) Uint128 {
	lo, carry := bits.Add64(v.Lo, o.Lo, 0)
	hi, _ := bits.Add64(v.Hi, o.Hi, carry)
	return Uint128{Lo: lo, Hi: hi}
}

// Sub returns v - o with wrap-around.
func (v Uint128) Sub(o Uint128) Uint128 {
	lo, borrow := bits.Sub64(v.Lo, o.Lo, 0)
	hi, _ := bits.Sub64(v.Hi, o.Hi, borrow)
	return Uint128{Lo: lo, Hi: hi}
}
