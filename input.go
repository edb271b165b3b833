package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flagrun/game"
)

// pollInput reads the keyboard, and the first gamepad when one is present,
// into the per-tick control state. Jump is level-triggered: holding it inside
// the jump window keeps the jump going.
func pollInput() game.Input {
	var in game.Input
	// Keyboard A/D or arrows
	in.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	in.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
	in.Jump = ebiten.IsKeyPressed(ebiten.KeySpace)

	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			in.Left = true
		} else if leftX > 0.3 {
			in.Right = true
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			in.Jump = true
		}
	}
	return in
}
