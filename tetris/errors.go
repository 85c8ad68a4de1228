package tetris

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a board is requested with a non-positive width or height.
var ErrInvalidDimensions = errors.New("tetris: invalid board dimensions")

// OutOfBoundsError reports a cell access outside the board. Grid methods panic with it.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("tetris: cell (%d,%d) outside %dx%d board", e.X, e.Y, e.Width, e.Height)
}

// InvalidTypeError reports a tile id that is not one of the seven tetromino types.
type InvalidTypeError struct {
	Type Type
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("tetris: invalid tetromino type %d", int(e.Type))
}
