package tetris

import "fmt"

// Grid is a fixed-size board of locked cells. Row 0 is the top of the board.
type Grid struct {
	width  int
	height int
	cells  []Type
}

// NewGrid creates an empty grid.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Type, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Contains reports whether (x, y) lies on the board.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int {
	if !g.Contains(x, y) {
		panic(&OutOfBoundsError{X: x, Y: y, Width: g.width, Height: g.height})
	}
	return y*g.width + x
}

// Get returns the cell value at (x, y). It panics with *OutOfBoundsError off the board.
func (g *Grid) Get(x, y int) Type {
	return g.cells[g.index(x, y)]
}

// Set stores value at (x, y). It panics with *OutOfBoundsError off the board and
// with *InvalidTypeError for a value that is neither Empty nor a tetromino type.
func (g *Grid) Set(x, y int, value Type) {
	i := g.index(x, y)
	if value != Empty && !value.Valid() {
		panic(&InvalidTypeError{Type: value})
	}
	g.cells[i] = value
}

func (g *Grid) row(y int) []Type {
	g.index(0, y)
	return g.cells[y*g.width : (y+1)*g.width]
}

// IsRowFull reports whether every cell in row y is occupied.
func (g *Grid) IsRowFull(y int) bool {
	for _, c := range g.row(y) {
		if c == Empty {
			return false
		}
	}
	return true
}

// IsRowEmpty reports whether every cell in row y is empty.
func (g *Grid) IsRowEmpty(y int) bool {
	for _, c := range g.row(y) {
		if c != Empty {
			return false
		}
	}
	return true
}

// ClearRow removes row y, shifts every row above it down by one and
// inserts an empty row at the top.
func (g *Grid) ClearRow(y int) {
	g.index(0, y)
	copy(g.cells[g.width:(y+1)*g.width], g.cells[:y*g.width])
	clear(g.cells[:g.width])
}

// Filled returns the number of occupied cells.
func (g *Grid) Filled() int {
	n := 0
	for _, c := range g.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Type, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}
