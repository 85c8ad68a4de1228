package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/session"
	"github.com/stretchr/testify/assert"
)

func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestCommandsFor(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want []session.Command
	}{
		{"nothing", nil, nil},
		{"left arrow", []ebiten.Key{ebiten.KeyLeft}, []session.Command{session.MoveLeft}},
		{"up rotates counter-clockwise", []ebiten.Key{ebiten.KeyUp}, []session.Command{session.RotateCCW}},
		{"down rotates clockwise", []ebiten.Key{ebiten.KeyDown}, []session.Command{session.RotateCW}},
		{"drop aliases", []ebiten.Key{ebiten.KeySpace, ebiten.KeyD}, []session.Command{session.Drop}},
		{"binding order", []ebiten.Key{ebiten.KeySpace, ebiten.KeyRight, ebiten.KeyLeft}, []session.Command{session.MoveLeft, session.MoveRight, session.Drop}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commandsFor(pressed(tt.keys...)))
		})
	}
}
