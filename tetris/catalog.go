package tetris

import (
	"fmt"
	"image/color"
)

// Type identifies a tetromino. It doubles as the value stored in a locked grid cell.
type Type int

const (
	Empty Type = iota
	I
	O
	T
	S
	Z
	J
	L
)

// Offset is a cell position relative to a piece anchor. DY grows downwards.
type Offset struct {
	DX, DY int
}

// Definition describes one tetromino: its rotation states and display color.
type Definition struct {
	Type  Type
	Name  string
	Color color.RGBA

	rotations [][4]Offset
	width     int
}

// Rotations returns a copy of every rotation state in clockwise order.
func (d Definition) Rotations() [][4]Offset {
	out := make([][4]Offset, len(d.rotations))
	copy(out, d.rotations)
	return out
}

// RotationCount returns the number of distinct rotation states.
func (d Definition) RotationCount() int {
	return len(d.rotations)
}

// Cells returns the occupied offsets for the given rotation index.
// The index wraps, so callers may pass any integer.
func (d Definition) Cells(rotation int) [4]Offset {
	n := len(d.rotations)
	return d.rotations[((rotation%n)+n)%n]
}

// Width returns the horizontal extent of the spawn rotation.
func (d Definition) Width() int {
	return d.width
}

var catalog = [...]Definition{
	I: {
		Type:  I,
		Name:  "I",
		Color: color.RGBA{102, 191, 255, 255},
		rotations: [][4]Offset{
			{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
			{{2, -1}, {2, 0}, {2, 1}, {2, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
			{{1, -1}, {1, 0}, {1, 1}, {1, 2}},
		},
	},
	O: {
		Type:  O,
		Name:  "O",
		Color: color.RGBA{255, 203, 0, 255},
		rotations: [][4]Offset{
			{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		},
	},
	T: {
		Type:  T,
		Name:  "T",
		Color: color.RGBA{135, 60, 190, 255},
		rotations: [][4]Offset{
			{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
			{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
		},
	},
	S: {
		Type:  S,
		Name:  "S",
		Color: color.RGBA{0, 158, 47, 255},
		rotations: [][4]Offset{
			{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
			{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
			{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
			{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		},
	},
	Z: {
		Type:  Z,
		Name:  "Z",
		Color: color.RGBA{255, 109, 194, 255},
		rotations: [][4]Offset{
			{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
			{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
			{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
		},
	},
	J: {
		Type:  J,
		Name:  "J",
		Color: color.RGBA{0, 121, 241, 255},
		rotations: [][4]Offset{
			{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
			{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
		},
	},
	L: {
		Type:  L,
		Name:  "L",
		Color: color.RGBA{255, 161, 0, 255},
		rotations: [][4]Offset{
			{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
			{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		},
	},
}

func init() {
	for t := I; t <= L; t++ {
		def := &catalog[t]
		for _, off := range def.rotations[0] {
			def.width = max(def.width, off.DX+1)
		}
	}
}

// Valid reports whether t is one of the seven tetromino types.
func (t Type) Valid() bool {
	return t >= I && t <= L
}

func (t Type) String() string {
	switch {
	case t == Empty:
		return "Empty"
	case t.Valid():
		return catalog[t].Name
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Lookup returns the definition for t.
func Lookup(t Type) (Definition, error) {
	if !t.Valid() {
		return Definition{}, &InvalidTypeError{Type: t}
	}
	return catalog[t], nil
}

// MustLookup is like Lookup but panics for an unknown type.
func MustLookup(t Type) Definition {
	def, err := Lookup(t)
	if err != nil {
		panic(err)
	}
	return def
}

// Types returns the seven tetromino types in catalog order.
func Types() []Type {
	return []Type{I, O, T, S, Z, J, L}
}
