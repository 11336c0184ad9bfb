package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogicalRight_Unsigned(t *testing.T) {
	assert.Equal(t, uint8(0x0F), LogicalRight(uint8(0xF0), 4))
	assert.Equal(t, uint16(0x00FF), LogicalRight(uint16(0xFF00), 8))
	assert.Equal(t, uint32(1), LogicalRight(uint32(1)<<31, 31))
	assert.Equal(t, uint64(1), LogicalRight(uint64(1)<<63, 63))
}

func TestLogicalRight_SignedNoReplication(t *testing.T) {
	// The sign bit must be zero-filled, not replicated.
	assert.Equal(t, int8(0x7F), LogicalRight(int8(-1), 1))
	assert.Equal(t, int16(0x7FFF), LogicalRight(int16(-1), 1))
	assert.Equal(t, int32(0x7FFFFFFF), LogicalRight(int32(-1), 1))
	assert.Equal(t, int64(0x7FFFFFFFFFFFFFFF), LogicalRight(int64(-1), 1))

	assert.Equal(t, int8(1), LogicalRight(int8(-128), 7))
}

func TestLogicalRight_NamedSignedTypes(t *testing.T) {
	// Named types with a signed underlying type get the same zero-fill
	// as the predeclared ones.
	type sample int8

	assert.Equal(t, sample(0x7F), LogicalRight(sample(-1), 1))
	assert.Equal(t, sample(1), LogicalRight(sample(-128), 7))
	assert.Equal(t, sample(0), LogicalRight(sample(-1), 8))
	assert.Equal(t, sample(-1), LogicalRight(sample(-1), 0))
}

func TestLogicalRight_OverWideCount(t *testing.T) {
	assert.Equal(t, uint8(0), LogicalRight(uint8(0xFF), 8))
	assert.Equal(t, uint16(0), LogicalRight(uint16(0xFFFF), 16))
	assert.Equal(t, uint32(0), LogicalRight(uint32(0xFFFFFFFF), 32))
	assert.Equal(t, uint64(0), LogicalRight(^uint64(0), 64))
	assert.Equal(t, uint64(0), LogicalRight(^uint64(0), 255))
	assert.Equal(t, int32(0), LogicalRight(int32(-1), 32))
}

func TestLogicalLeft(t *testing.T) {
	assert.Equal(t, uint8(0xF0), LogicalLeft(uint8(0x0F), 4))
	assert.Equal(t, uint8(0x80), LogicalLeft(uint8(0xFF), 7))
	assert.Equal(t, uint8(0), LogicalLeft(uint8(0xFF), 8))
	assert.Equal(t, uint64(0), LogicalLeft(^uint64(0), 64))
	assert.Equal(t, uint64(1)<<63, LogicalLeft(uint64(1), 63))
}

func TestArithmeticRight(t *testing.T) {
	// Sign replication for negative signed operands.
	assert.Equal(t, int8(-1), ArithmeticRight(int8(-2), 1))
	assert.Equal(t, int16(-4), ArithmeticRight(int16(-16), 2))
	assert.Equal(t, int64(-1), ArithmeticRight(int64(-1), 63))

	// Positive operands and unsigned shift logically.
	assert.Equal(t, int8(1), ArithmeticRight(int8(4), 2))
	assert.Equal(t, uint8(0x0F), ArithmeticRight(uint8(0xF0), 4))

	// Over-wide counts yield 0, even for negative operands.
	assert.Equal(t, int8(0), ArithmeticRight(int8(-1), 8))
	assert.Equal(t, int64(0), ArithmeticRight(int64(-1), 64))
	assert.Equal(t, int64(0), ArithmeticRight(int64(-1), 255))
}

func TestArithmeticLeft(t *testing.T) {
	assert.Equal(t, int8(-4), ArithmeticLeft(int8(-1), 2))
	assert.Equal(t, uint16(0xFF00), ArithmeticLeft(uint16(0x00FF), 8))
	assert.Equal(t, int16(0), ArithmeticLeft(int16(-1), 16))
	assert.Equal(t, int32(0), ArithmeticLeft(int32(1), 32))
}

func TestZeroCount(t *testing.T) {
	assert.Equal(t, uint32(0xDEADBEEF), LogicalRight(uint32(0xDEADBEEF), 0))
	assert.Equal(t, uint32(0xDEADBEEF), LogicalLeft(uint32(0xDEADBEEF), 0))
	assert.Equal(t, int32(-1), ArithmeticRight(int32(-1), 0))
}
