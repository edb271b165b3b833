package system

import (
	"github.com/milk9111/flagrun/ecs"
	"github.com/milk9111/flagrun/ecs/component"
	"github.com/milk9111/flagrun/prefabs"
)

// LocomotionSystem turns input into a target velocity and jump impulse.
type LocomotionSystem struct {
	spec prefabs.PlayerSpec
}

func NewLocomotionSystem(spec prefabs.PlayerSpec) *LocomotionSystem {
	return &LocomotionSystem{spec: spec}
}

func (s *LocomotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	e, player, _ := mustPlayer(w)
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		input = &component.Input{}
	}
	Steer(player, *input, mustClock(w).Elapsed(), s.spec)
}

// Steer updates the target velocity while the player is near the ground or
// still rising, so a walk-off keeps its momentum. A jump starts only within
// the jump window after the last ground contact.
func Steer(p *component.Player, in component.Input, elapsed float64, spec prefabs.PlayerSpec) {
	sinceGround := elapsed - p.LastGrounded
	if sinceGround < spec.CoyoteTime || p.Jump > 0 {
		p.VelocityTarget = in.MoveX() * spec.MoveSpeed
	}
	if sinceGround < spec.JumpWindow && in.Jump {
		p.Jump = spec.JumpImpulse
	}
}
