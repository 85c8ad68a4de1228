package tetris_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, typ := range tetris.Types() {
		t.Run(typ.String(), func(t *testing.T) {
			def, err := tetris.Lookup(typ)
			require.NoError(t, err)
			assert.Equal(t, typ, def.Type)
			assert.NotZero(t, def.Color.A)

			n := def.RotationCount()
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, 4)

			for r := 0; r < n; r++ {
				cells := def.Cells(r)
				seen := make(map[tetris.Offset]bool)
				for _, c := range cells {
					seen[c] = true
				}
				assert.Len(t, seen, 4, "rotation %d has overlapping cells", r)
			}
		})
	}
}

func TestLookupInvalid(t *testing.T) {
	for _, typ := range []tetris.Type{tetris.Empty, -1, 8, 100} {
		t.Run(fmt.Sprint(int(typ)), func(t *testing.T) {
			_, err := tetris.Lookup(typ)
			var invalid *tetris.InvalidTypeError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, typ, invalid.Type)

			assert.Panics(t, func() { tetris.MustLookup(typ) })
		})
	}
}

func TestCellsWrap(t *testing.T) {
	def := tetris.MustLookup(tetris.T)
	assert.Equal(t, def.Cells(0), def.Cells(4))
	assert.Equal(t, def.Cells(3), def.Cells(-1))

	o := tetris.MustLookup(tetris.O)
	assert.Equal(t, 1, o.RotationCount())
	assert.Equal(t, o.Cells(0), o.Cells(3))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "I", tetris.I.String())
	assert.Equal(t, "L", tetris.L.String())
	assert.Equal(t, "Empty", tetris.Empty.String())
	assert.Equal(t, "Type(9)", tetris.Type(9).String())
}

func TestTypesAreDistinctCellValues(t *testing.T) {
	types := tetris.Types()
	assert.Len(t, types, 7)
	seen := make(map[tetris.Type]bool)
	for _, typ := range types {
		assert.True(t, typ.Valid())
		assert.NotEqual(t, tetris.Empty, typ)
		seen[typ] = true
	}
	assert.Len(t, seen, 7)
}

func TestRotations(t *testing.T) {
	def := tetris.MustLookup(tetris.I)
	rotations := def.Rotations()
	require.Len(t, rotations, def.RotationCount())
	for r, cells := range rotations {
		assert.Equal(t, def.Cells(r), cells)
	}

	rotations[0][0] = tetris.Offset{DX: 9, DY: 9}
	assert.Equal(t, tetris.Offset{DX: 0, DY: 0}, def.Cells(0)[0])
}
