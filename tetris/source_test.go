package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestBagSource(t *testing.T) {
	src := tetris.NewBagSource(42)

	for bag := 0; bag < 5; bag++ {
		seen := make(map[tetris.Type]int)
		for i := 0; i < 7; i++ {
			peek := src.Peek()
			next := src.Next()
			assert.Equal(t, peek, next)
			assert.True(t, next.Valid())
			seen[next]++
		}
		assert.Len(t, seen, 7, "bag %d does not hold every type once", bag)
	}
}

func TestBagSourceDeterministic(t *testing.T) {
	a := tetris.NewBagSource(7)
	b := tetris.NewBagSource(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestSequenceSource(t *testing.T) {
	src := tetris.NewSequenceSource(tetris.I, tetris.O, tetris.T)

	got := make([]tetris.Type, 0, 7)
	for i := 0; i < 7; i++ {
		got = append(got, src.Next())
	}
	assert.Equal(t, []tetris.Type{tetris.I, tetris.O, tetris.T, tetris.I, tetris.O, tetris.T, tetris.I}, got)
	assert.Equal(t, tetris.O, src.Peek())

	assert.Panics(t, func() { tetris.NewSequenceSource() })
	assert.Panics(t, func() { tetris.NewSequenceSource(tetris.I, tetris.Empty) })
}
