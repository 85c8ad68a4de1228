package session

import (
	"fmt"

	"github.com/plus3/blockfall/tetris"
)

// Command is a discrete request applied to the session's game.
type Command uint32

const (
	MoveLeft Command = iota
	MoveRight
	RotateCW
	RotateCCW
	Drop
	Step
	Restart

	numCommands
)

var commandNames = [numCommands]string{
	MoveLeft:  "MoveLeft",
	MoveRight: "MoveRight",
	RotateCW:  "RotateCW",
	RotateCCW: "RotateCCW",
	Drop:      "Drop",
	Step:      "Step",
	Restart:   "Restart",
}

// Commands returns every command in declaration order.
func Commands() []Command {
	out := make([]Command, numCommands)
	for i := range out {
		out[i] = Command(i)
	}
	return out
}

func (c Command) Valid() bool {
	return c < numCommands
}

func (c Command) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Command(%d)", uint32(c))
	}
	return commandNames[c]
}

// apply runs a game command and reports whether it took effect. For Step,
// false means the piece could not fall and was locked.
func (c Command) apply(g *tetris.Game) bool {
	switch c {
	case MoveLeft:
		return g.MoveLeft()
	case MoveRight:
		return g.MoveRight()
	case RotateCW:
		return g.RotateCW()
	case RotateCCW:
		return g.RotateCCW()
	case Drop:
		return g.Drop()
	case Step:
		return g.Step()
	}
	return false
}
