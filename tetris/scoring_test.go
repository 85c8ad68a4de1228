package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestPoints(t *testing.T) {
	assert.Equal(t, 0, tetris.Points(0, 1))
	assert.Equal(t, 100, tetris.Points(1, 1))
	assert.Equal(t, 300, tetris.Points(2, 1))
	assert.Equal(t, 500, tetris.Points(3, 1))
	assert.Equal(t, 800, tetris.Points(4, 1))

	for level := 1; level <= 5; level++ {
		prev := 0
		for rows := 1; rows <= 4; rows++ {
			p := tetris.Points(rows, level)
			assert.Greater(t, p, prev, "rows=%d level=%d", rows, level)
			assert.Greater(t, p, rows*tetris.Points(1, level)-1, "multi-row clears must not score less than singles")
			prev = p
		}
	}

	assert.Equal(t, 300*3, tetris.Points(2, 3))
	assert.Equal(t, 100, tetris.Points(1, 0))
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, 1, tetris.LevelFor(0))
	assert.Equal(t, 1, tetris.LevelFor(9))
	assert.Equal(t, 2, tetris.LevelFor(10))
	assert.Equal(t, 4, tetris.LevelFor(35))
}
