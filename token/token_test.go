package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tok := New(3, "number", "42", 17)

	assert.Equal(t, uint32(3), tok.ID())
	assert.Equal(t, "number", tok.Description())
	assert.Equal(t, "42", tok.Data())
	assert.Equal(t, uint32(17), tok.LineNumber())
}

func TestFromInfo(t *testing.T) {
	info := Info{ID: 9, Description: "string"}
	tok := FromInfo(info, `"abc"`, 2)

	assert.Equal(t, info.ID, tok.ID())
	assert.Equal(t, info.Description, tok.Description())
	assert.Equal(t, `"abc"`, tok.Data())
	assert.Equal(t, uint32(2), tok.LineNumber())
}

func TestZeroValue(t *testing.T) {
	var tok Token

	assert.Equal(t, uint32(0), tok.ID())
	assert.Empty(t, tok.Description())
	assert.Empty(t, tok.Data())
	assert.Equal(t, uint32(0), tok.LineNumber())
}

func TestCopyAssignable(t *testing.T) {
	a := New(1, "terminal", ";", 4)
	b := a

	assert.Equal(t, a, b)
}
