// Package tetris implements a falling-block puzzle engine: a board of locked
// cells, a single falling tetromino, gravity, line clears and scoring.
//
// A Game is not safe for concurrent use. Callers that drive it from more than
// one goroutine must serialize access, for example through the session package.
package tetris

import "math/rand/v2"

// Default board size.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Option configures a Game at construction.
type Option func(*Game)

// WithSource sets the piece source. The default is a randomly seeded BagSource.
func WithSource(source PieceSource) Option {
	return func(g *Game) {
		g.source = source
	}
}

// Game owns the board, the falling piece and the score.
type Game struct {
	grid   *Grid
	source PieceSource

	active    Piece
	hasActive bool

	score     int
	lines     int
	lastClear int
	over      bool
}

// NewGame creates a game on an empty width x height board and spawns the first piece.
// The returned error wraps ErrInvalidDimensions if either dimension is not positive.
func NewGame(width, height int, opts ...Option) (*Game, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	g := &Game{grid: grid}
	for _, opt := range opts {
		opt(g)
	}
	if g.source == nil {
		g.source = NewBagSource(rand.Uint64())
	}

	g.spawn()
	return g, nil
}

// Width returns the board width in cells.
func (g *Game) Width() int { return g.grid.width }

// Height returns the board height in cells.
func (g *Game) Height() int { return g.grid.height }

// Score returns the points earned so far. It never decreases.
func (g *Game) Score() int { return g.score }

// IsOver reports whether the game has ended. No command changes a finished game.
func (g *Game) IsOver() bool {
	return g.over
}

// Lines returns the total number of cleared rows.
func (g *Game) Lines() int { return g.lines }

// Level returns the current level, starting at 1.
func (g *Game) Level() int { return LevelFor(g.lines) }

// LastClear returns the number of rows cleared by the most recent lock.
func (g *Game) LastClear() int { return g.lastClear }

// Next returns the type that will spawn after the active piece locks.
func (g *Game) Next() Type { return g.source.Peek() }

// Active returns the falling piece. The second result is false once the game is over.
func (g *Game) Active() (Piece, bool) {
	return g.active, g.hasActive
}

// MoveLeft shifts the piece one column left if it fits.
func (g *Game) MoveLeft() bool {
	return g.try(g.active.Moved(-1, 0))
}

// MoveRight shifts the piece one column right if it fits.
func (g *Game) MoveRight() bool {
	return g.try(g.active.Moved(1, 0))
}

// RotateCW turns the piece clockwise in place. No wall kicks are attempted.
func (g *Game) RotateCW() bool {
	return g.try(g.active.Rotated(1))
}

// RotateCCW turns the piece counter-clockwise in place.
func (g *Game) RotateCCW() bool {
	return g.try(g.active.Rotated(-1))
}

func (g *Game) try(candidate Piece) bool {
	if !g.hasActive || !candidate.Fits(g.grid) {
		return false
	}
	g.active = candidate
	return true
}

// Step applies one gravity tick. It returns true if the piece fell one row and
// false if it locked instead, or if the game is already over.
func (g *Game) Step() bool {
	if !g.hasActive {
		return false
	}
	if g.try(g.active.Moved(0, 1)) {
		return true
	}
	g.lock()
	return false
}

// Drop moves the piece straight down as far as it fits and locks it there.
// It returns false only when there is no piece to drop.
func (g *Game) Drop() bool {
	if !g.hasActive {
		return false
	}
	for g.try(g.active.Moved(0, 1)) {
	}
	g.lock()
	return true
}

// GhostY returns the row the active piece anchor would rest on after a hard drop,
// or -1 when there is no active piece.
func (g *Game) GhostY() int {
	if !g.hasActive {
		return -1
	}
	p := g.active
	for {
		next := p.Moved(0, 1)
		if !next.Fits(g.grid) {
			return p.Y
		}
		p = next
	}
}

// lock writes the active piece into the grid, clears full rows and spawns the
// next piece. A piece that locks with any cell above the top row ends the game
// without clearing or spawning.
func (g *Game) lock() {
	lockedOut := false
	for _, c := range g.active.Cells() {
		if c[1] < 0 {
			lockedOut = true
			continue
		}
		g.grid.Set(c[0], c[1], g.active.Type)
	}
	g.hasActive = false

	if lockedOut {
		g.lastClear = 0
		g.over = true
		return
	}

	cleared := 0
	for y := g.grid.height - 1; y >= 0; {
		if g.grid.IsRowFull(y) {
			g.grid.ClearRow(y)
			cleared++
			continue
		}
		y--
	}

	g.lastClear = cleared
	if cleared > 0 {
		g.score += Points(cleared, g.Level())
		g.lines += cleared
	}

	g.spawn()
}

func (g *Game) spawn() {
	p := Spawn(g.source.Next(), g.grid.width)
	if !p.Fits(g.grid) {
		g.over = true
		return
	}
	g.active = p
	g.hasActive = true
}

// CurrentState returns a snapshot of the board with the active piece drawn in.
func (g *Game) CurrentState() *Snapshot {
	grid := g.grid.Clone()
	if g.hasActive {
		for _, c := range g.active.Cells() {
			if grid.Contains(c[0], c[1]) {
				grid.cells[c[1]*grid.width+c[0]] = g.active.Type
			}
		}
	}
	return &Snapshot{grid: grid}
}
