package system

import (
	"time"

	"github.com/milk9111/flagrun/ecs"
	"github.com/milk9111/flagrun/ecs/component"
	"github.com/milk9111/flagrun/prefabs"
)

// AnimationSystem picks the player sprite frame after the player moved.
type AnimationSystem struct {
	spec prefabs.PlayerSpec
}

func NewAnimationSystem(spec prefabs.PlayerSpec) *AnimationSystem {
	return &AnimationSystem{spec: spec}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	e, player, _ := mustPlayer(w)
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		return
	}
	Animate(player, sprite, s.spec)
}

// Animate shows the jump frame during a jump arc and otherwise alternates the
// walk frames every WalkCadence moving ticks. Facing follows the sign of the
// current velocity and is kept while standing still.
func Animate(p *component.Player, sp *component.Sprite, spec prefabs.PlayerSpec) {
	if !p.Moved {
		return
	}
	frames := spec.Frames.Normal
	if p.PoweredUp {
		frames = spec.Frames.Powered
	}

	if p.Jump > 0 {
		sp.Frame = frames.Jump
	} else {
		p.AnimSteps++
		if p.AnimSteps%spec.WalkCadence == 0 {
			if sp.Frame == frames.WalkA {
				sp.Frame = frames.WalkB
			} else {
				sp.Frame = frames.WalkA
			}
		}
	}

	switch {
	case p.VelocityCurrent < 0:
		sp.FlipX = true
	case p.VelocityCurrent > 0:
		sp.FlipX = false
	}
}

// FlagFrame is the idle frame of a goal flag at wall-clock time elapsed. It is
// a pure function so the renderer can animate flags without touching the
// simulation.
func FlagFrame(spec prefabs.FlagSpec, elapsed time.Duration) int {
	step := int64(elapsed.Seconds() / spec.Interval)
	if step%2 == 0 {
		return spec.FrameA
	}
	return spec.FrameB
}
