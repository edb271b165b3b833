package game

import (
	"time"

	"github.com/milk9111/flagrun/ecs"
	"github.com/milk9111/flagrun/ecs/component"
	"github.com/milk9111/flagrun/ecs/system"
)

type DrawKind int

const (
	DrawGround DrawKind = iota
	DrawFlag
	DrawPowerUp
	DrawPlayer
)

func (k DrawKind) String() string {
	switch k {
	case DrawGround:
		return "ground"
	case DrawFlag:
		return "flag"
	case DrawPowerUp:
		return "powerup"
	case DrawPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Drawable is what the renderer needs to know about one object.
type Drawable struct {
	Kind    DrawKind
	X, Y    float64
	Scale   float64
	FlipX   bool
	Frame   int
	Piece   component.GroundPiece
	Powered bool
}

// Snapshot lists every visible object back to front: ground, flags,
// power-ups, then the player. wall is the host's wall-clock time and only
// drives the flag idle animation; the world is not modified.
func (s *Simulation) Snapshot(wall time.Duration) []Drawable {
	if s.world == nil {
		return nil
	}
	w := s.world
	out := make([]Drawable, 0, ecs.Count(w, component.TransformComponent.Kind()))

	ecs.ForEach3(w, component.GroundComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, g *component.Ground, t *component.Transform, sp *component.Sprite) {
		d := drawableFor(DrawGround, t, sp)
		d.Piece = g.Piece
		out = append(out, d)
	})

	flagFrame := system.FlagFrame(s.running.World.Flag, wall)
	ecs.ForEach3(w, component.FlagTagComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, _ *component.FlagTag, t *component.Transform, sp *component.Sprite) {
		d := drawableFor(DrawFlag, t, sp)
		d.Frame = flagFrame
		out = append(out, d)
	})

	ecs.ForEach3(w, component.PowerUpTagComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, _ *component.PowerUpTag, t *component.Transform, sp *component.Sprite) {
		out = append(out, drawableFor(DrawPowerUp, t, sp))
	})

	ecs.ForEach4(w, component.PlayerTagComponent.Kind(), component.PlayerComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, _ *component.PlayerTag, p *component.Player, t *component.Transform, sp *component.Sprite) {
		d := drawableFor(DrawPlayer, t, sp)
		d.Powered = p.PoweredUp
		out = append(out, d)
	})

	return out
}

func drawableFor(kind DrawKind, t *component.Transform, sp *component.Sprite) Drawable {
	return Drawable{
		Kind:  kind,
		X:     t.X,
		Y:     t.Y,
		Scale: t.ScaleX,
		FlipX: sp.FlipX,
		Frame: sp.Frame,
	}
}
