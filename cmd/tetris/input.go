package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/session"
)

type binding struct {
	keys []ebiten.Key
	cmd  session.Command
}

// bindings follows the classic layout: up turns counter-clockwise, down turns
// clockwise, space drops.
var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyLeft}, cmd: session.MoveLeft},
	{keys: []ebiten.Key{ebiten.KeyRight}, cmd: session.MoveRight},
	{keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyZ}, cmd: session.RotateCCW},
	{keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyX}, cmd: session.RotateCW},
	{keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyD}, cmd: session.Drop},
}

// commandsFor returns the commands whose keys were pressed this frame, in
// binding order. Restart is handled separately since it has to revive the run loop.
func commandsFor(justPressed func(ebiten.Key) bool) []session.Command {
	var out []session.Command
	for _, b := range bindings {
		for _, k := range b.keys {
			if justPressed(k) {
				out = append(out, b.cmd)
				break
			}
		}
	}
	return out
}
