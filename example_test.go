package bitfield_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/bitfield"
)

// Example demonstrates copying a signed field between packed buffers.
func Example() {
	// A frame holding -3 in a 4-bit signed field at bit offset 0.
	frame := []byte{0x0D}
	out := make([]byte, 1)

	src := &bitfield.Field{Buf: frame, Width: 4, Signed: true}
	dst := &bitfield.Field{Buf: out, Width: 8, Signed: true}

	if err := bitfield.Copy(dst, src); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%#02x\n", out[0])
	// Output: 0xfd
}

// Example_readWrite demonstrates the native integer specializations.
func Example_readWrite() {
	buf := make([]byte, 4)

	// Pack -42 into a 7-bit signed field at bit offset 3.
	w := &bitfield.Field{Buf: buf, Bit: 3, Width: 7, Signed: true}
	if err := bitfield.Write(w, int8(-42)); err != nil {
		log.Fatal(err)
	}

	// Extract it back into a native int8.
	r := &bitfield.Field{Buf: buf, Bit: 3, Width: 7, Signed: true}
	v, err := bitfield.Read[int8](r)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(v)
	// Output: -42
}

// Example_saturation demonstrates range narrowing.
func Example_saturation() {
	buf := make([]byte, 1)

	// 200 does not fit a 4-bit unsigned field: saturate to 15.
	w := &bitfield.Field{Buf: buf, Width: 4}
	if err := bitfield.Write(w, uint8(200)); err != nil {
		log.Fatal(err)
	}

	fmt.Println(buf[0])
	// Output: 15
}
