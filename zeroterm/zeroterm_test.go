package zeroterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArray_Len(t *testing.T) {
	a := Wrap([]uint16{7, 8, 9, 0, 5})
	assert.Equal(t, 3, a.Len())

	b := Wrap([]byte("abc\x00"))
	assert.Equal(t, 3, b.Len())
}

func TestArray_LenEmptyAndMissingTerminator(t *testing.T) {
	assert.Equal(t, 0, Wrap[int](nil).Len())
	assert.Equal(t, 0, Wrap([]int{0}).Len())

	// No terminator: the scan is bounded by the slice.
	assert.Equal(t, 2, Wrap([]int{1, 2}).Len())
}

func TestArray_At(t *testing.T) {
	a := Wrap([]int32{-1, 4, 0})
	assert.Equal(t, int32(-1), a.At(0))
	assert.Equal(t, int32(4), a.At(1))
	assert.Equal(t, int32(0), a.At(2))
}

func TestArray_StringElements(t *testing.T) {
	a := Wrap([]string{"alpha", "beta", "", "gamma"})
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, "beta", a.At(1))
}

func TestArray_List(t *testing.T) {
	items := []uint8{1, 2, 3, 0}
	a := Wrap(items)
	assert.Equal(t, items, a.List())
}
