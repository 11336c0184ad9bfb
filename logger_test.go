package bitfield

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWithWidthAndOffset(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	logger.WithWidth(12).WithOffset(36).Debug("slot selected")

	out := buf.String()
	assert.Contains(t, out, "width=12")
	assert.Contains(t, out, "offset=36")
	assert.Contains(t, out, "slot selected")
}

func TestLoggerLogCopy(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	dst := &Field{Buf: make([]byte, 2), Bit: 3, Width: 5, Signed: true}
	src := &Field{Buf: []byte{0xFF, 0x01}, Bit: 1, Width: 7, Signed: true}

	require.NoError(t, Copy(dst, src, WithLogger(logger.WithWidth(dst.Width).WithOffset(3))))

	out := buf.String()
	assert.Contains(t, out, "copy completed")
	assert.Contains(t, out, "width=5")
	assert.Contains(t, out, "offset=3")
	assert.Contains(t, out, "src_width=7")
}
