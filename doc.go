// Package bitfield copies bit-packed integers between byte buffers.
//
// A Field locates an integer of arbitrary bit width (1..128) at an
// arbitrary bit offset inside a caller-owned buffer. Copy moves the value
// of one field into another, honoring signedness on both sides: negative
// values are sign-extended into wider signed destinations, clamped to the
// destination minimum when narrower, and saturated to zero for unsigned
// destinations; values above the destination maximum saturate to it.
//
// # Quick Start
//
// Copy a 5-bit signed field into a 12-bit signed field:
//
//	src := &bitfield.Field{Buf: frame, Bit: 3, Width: 5, Signed: true}
//	dst := &bitfield.Field{Buf: out, Bit: 16, Width: 12, Signed: true}
//	if err := bitfield.Copy(dst, src); err != nil { ... }
//
// Extract a field into a native integer, or pack one back:
//
//	v, err := bitfield.Read[int16](src)
//	err = bitfield.Write(dst, int16(-42))
//
// Successful operations advance the field offsets by the widths moved, so
// consecutive calls walk a packed frame without bookkeeping.
//
// # Memory model
//
// All state lives on the caller's stack and in the caller-owned buffers;
// no allocation occurs. The copy runs inside a single working word of 8,
// 16, 32, 64 or 128 bits and touches exactly the bytes the two fields
// span, so concurrent copies are safe whenever their written byte ranges
// do not overlap.
//
// Bit order is little-endian: the bit of numerical weight 2^i of a field
// at offset S lives at bit (S+i)%8 of byte (S+i)/8.
package bitfield
