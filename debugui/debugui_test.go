package debugui

import (
	"image/color"
	"testing"
	"time"

	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestFrameHistory(t *testing.T) {
	h := newFrameHistory(4)
	assert.Zero(t, h.average())

	h.push(10)
	h.push(20)
	assert.InDelta(t, 15, h.average(), 0.001)

	for range 4 {
		h.push(8)
	}
	assert.InDelta(t, 8, h.average(), 0.001)
	assert.Equal(t, 2, h.index)

	assert.Len(t, newFrameHistory(0).samples, 1)
}

func TestFPS(t *testing.T) {
	assert.InDelta(t, 60, fps(1000.0/60.0), 0.01)
	assert.Zero(t, fps(0))
}

func TestAppliedPercent(t *testing.T) {
	assert.Zero(t, appliedPercent(session.CommandStats{}))
	assert.InDelta(t, 75, appliedPercent(session.CommandStats{ExecutionCount: 4, Applied: 3}), 0.001)
}

func TestFormatMicros(t *testing.T) {
	assert.Equal(t, "1.5 us", formatMicros(1500*time.Nanosecond))
	assert.Equal(t, "0.0 us", formatMicros(0))
}

func TestRGBAVec(t *testing.T) {
	v := rgbaVec(color.RGBA{255, 0, 51, 255})
	assert.InDelta(t, 1.0, v.X, 0.001)
	assert.InDelta(t, 0.0, v.Y, 0.001)
	assert.InDelta(t, 0.2, v.Z, 0.001)
	assert.InDelta(t, 1.0, v.W, 0.001)

	gray := typeColor(tetris.Type(42))
	assert.InDelta(t, 0.5, gray.X, 0.001)
}

func TestOverlay(t *testing.T) {
	o := NewOverlay()
	o.Add(func() {})
	o.Add(func() {})
	assert.Equal(t, 2, o.Len())
	assert.True(t, o.Visible)
	o.Toggle()
	assert.False(t, o.Visible)
}
