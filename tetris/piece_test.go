package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawn(t *testing.T) {
	tests := []struct {
		typ   tetris.Type
		width int
		x     int
	}{
		{tetris.I, 10, 3},
		{tetris.O, 10, 4},
		{tetris.T, 10, 3},
		{tetris.L, 10, 3},
		{tetris.I, 4, 0},
		{tetris.O, 7, 2},
	}

	for _, tt := range tests {
		p := tetris.Spawn(tt.typ, tt.width)
		assert.Equal(t, tt.typ, p.Type)
		assert.Equal(t, tt.x, p.X, "%s on width %d", tt.typ, tt.width)
		assert.Equal(t, 0, p.Y)
		assert.Equal(t, 0, p.Rotation)
	}
}

func TestPieceTransitionsAreValues(t *testing.T) {
	p := tetris.Spawn(tetris.T, 10)

	moved := p.Moved(-1, 2)
	assert.Equal(t, 3, p.X)
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, 2, moved.X)
	assert.Equal(t, 2, moved.Y)

	rotated := p.Rotated(1)
	assert.Equal(t, 0, p.Rotation)
	assert.Equal(t, 1, rotated.Rotation)
	assert.Equal(t, 3, p.Rotated(-1).Rotation)
	assert.Equal(t, 0, p.Rotated(4).Rotation)
	assert.Equal(t, p, p.Rotated(1).Rotated(-1))
}

func TestPieceCells(t *testing.T) {
	p := tetris.Spawn(tetris.I, 10)
	assert.Equal(t, [4][2]int{{3, 0}, {4, 0}, {5, 0}, {6, 0}}, p.Cells())

	o := tetris.Spawn(tetris.O, 10).Rotated(1)
	assert.Equal(t, [4][2]int{{4, 0}, {5, 0}, {4, 1}, {5, 1}}, o.Cells())
}

func TestPieceFits(t *testing.T) {
	g, err := tetris.NewGrid(10, 20)
	require.NoError(t, err)

	p := tetris.Spawn(tetris.O, 10)
	assert.True(t, p.Fits(g))

	t.Run("walls", func(t *testing.T) {
		assert.True(t, p.Moved(-4, 0).Fits(g))
		assert.False(t, p.Moved(-5, 0).Fits(g))
		assert.True(t, p.Moved(4, 0).Fits(g))
		assert.False(t, p.Moved(5, 0).Fits(g))
	})

	t.Run("floor", func(t *testing.T) {
		assert.True(t, p.Moved(0, 18).Fits(g))
		assert.False(t, p.Moved(0, 19).Fits(g))
	})

	t.Run("above the board", func(t *testing.T) {
		assert.True(t, p.Moved(0, -1).Fits(g))
		assert.True(t, p.Moved(0, -5).Fits(g))

		vertical := tetris.Spawn(tetris.I, 10).Rotated(1)
		assert.Equal(t, -1, vertical.Cells()[0][1])
		assert.True(t, vertical.Fits(g))
	})

	t.Run("locked cells", func(t *testing.T) {
		g.Set(5, 1, tetris.Z)
		assert.False(t, p.Fits(g))
		assert.True(t, p.Moved(-2, 0).Fits(g))
	})
}
