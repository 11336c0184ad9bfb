// Package transcode implements the bit-packed integer transcoder.
//
// A transcode copies a field of 1..128 bits at an arbitrary bit offset in a
// source buffer into a field of 1..128 bits at an arbitrary bit offset in a
// destination buffer. Signedness is honored on both sides: negative values
// are sign-extended into wider signed destinations, clamped to the
// destination minimum when narrower, and saturated to zero for unsigned
// destinations; positive values saturate to the destination maximum.
//
// The copy is performed inside a single working word of 8, 16, 32, 64 or
// 128 bits, the smallest that covers both fields after offset
// normalization. Loads and stores move exactly the bytes the spans occupy,
// bytewise and little-endian, so no memory outside the containing word is
// touched and no alignment is assumed.
//
// Architecture:
//   - bsToBS: extraction, saturation and masked write-back, generic over
//     the native unsigned widths
//   - bsToBS128: the same routine over uint128.Uint128
//   - Copy: offset normalization and working-width dispatch
package transcode
