package tetris

import "strings"

// Snapshot is a read-only, grid-shaped view of a game: locked cells with the
// active piece composited on top. It owns its storage.
type Snapshot struct {
	grid *Grid
}

// Width returns the number of columns.
func (s *Snapshot) Width() int { return s.grid.width }

// Height returns the number of rows.
func (s *Snapshot) Height() int { return s.grid.height }

// Get returns the value shown at (x, y). It panics with *OutOfBoundsError off the board.
func (s *Snapshot) Get(x, y int) Type {
	return s.grid.Get(x, y)
}

// Row returns a copy of row y.
func (s *Snapshot) Row(y int) []Type {
	row := make([]Type, s.grid.width)
	copy(row, s.grid.row(y))
	return row
}

// Filled returns the number of non-empty cells shown.
func (s *Snapshot) Filled() int {
	return s.grid.Filled()
}

// String renders the snapshot one row per line, '.' for empty cells and the
// piece letter otherwise.
func (s *Snapshot) String() string {
	var sb strings.Builder
	for y := 0; y < s.grid.height; y++ {
		for _, c := range s.grid.row(y) {
			if c == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(c.String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
