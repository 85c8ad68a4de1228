package tetris

// Piece is the falling tetromino. It is a value: every transition returns a new
// Piece and leaves the receiver untouched, so a rejected move is simply discarded.
type Piece struct {
	Type     Type
	Rotation int
	X, Y     int
}

// Spawn returns a piece of type t at the top-centre of a board of the given width.
func Spawn(t Type, boardWidth int) Piece {
	def := MustLookup(t)
	return Piece{
		Type: t,
		X:    (boardWidth - def.Width()) / 2,
	}
}

// Moved returns the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns the piece turned by delta steps; positive is clockwise.
func (p Piece) Rotated(delta int) Piece {
	n := MustLookup(p.Type).RotationCount()
	p.Rotation = ((p.Rotation+delta)%n + n) % n
	return p
}

// Cells returns the absolute board coordinates occupied by the piece.
func (p Piece) Cells() [4][2]int {
	var out [4][2]int
	for i, off := range MustLookup(p.Type).Cells(p.Rotation) {
		out[i] = [2]int{p.X + off.DX, p.Y + off.DY}
	}
	return out
}

// Fits reports whether the piece can occupy its cells on grid. Cells above the
// top row are allowed as long as they stay within the side walls.
func (p Piece) Fits(grid *Grid) bool {
	for _, c := range p.Cells() {
		x, y := c[0], c[1]
		if x < 0 || x >= grid.width || y >= grid.height {
			return false
		}
		if y >= 0 && grid.cells[y*grid.width+x] != Empty {
			return false
		}
	}
	return true
}
