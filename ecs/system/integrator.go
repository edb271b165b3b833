package system

import (
	"math"

	"github.com/milk9111/flagrun/ecs"
	"github.com/milk9111/flagrun/ecs/component"
	"github.com/milk9111/flagrun/prefabs"
)

// IntegratorSystem moves the player from its jump impulse, gravity and
// smoothed horizontal velocity.
type IntegratorSystem struct {
	spec prefabs.PlayerSpec
}

func NewIntegratorSystem(spec prefabs.PlayerSpec) *IntegratorSystem {
	return &IntegratorSystem{spec: spec}
}

func (s *IntegratorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, player, transform := mustPlayer(w)
	Integrate(player, transform, mustClock(w).Elapsed(), s.spec)
}

// Integrate applies one tick of motion and records whether the position
// changed.
func Integrate(p *component.Player, t *component.Transform, elapsed float64, spec prefabs.PlayerSpec) {
	startX, startY := t.X, t.Y

	if p.Jump > 0 {
		t.Y += p.Jump
		p.Jump = math.Max(0, p.Jump-spec.JumpDecay)
	}
	// Gravity waits a moment after the last contact so it does not fight a
	// fresh landing.
	if elapsed-p.LastGrounded > spec.GravityDelay {
		t.Y -= spec.Gravity
	}

	if p.VelocityCurrent != p.VelocityTarget {
		p.VelocityCurrent += (p.VelocityTarget - p.VelocityCurrent) / spec.Smoothing
		if math.Abs(p.VelocityCurrent) < spec.SnapThreshold {
			p.VelocityCurrent = 0
		}
	}
	if (p.BlockedLeft && p.VelocityCurrent < 0) || (p.BlockedRight && p.VelocityCurrent > 0) {
		p.VelocityCurrent = 0
	}
	if p.VelocityCurrent != 0 {
		t.X += p.VelocityCurrent
	}

	p.Moved = t.X != startX || t.Y != startY
}
