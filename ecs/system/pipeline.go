package system

import (
	"github.com/milk9111/flagrun/ecs"
	"github.com/milk9111/flagrun/prefabs"
)

// NewPipeline returns the per-tick systems in their required order. Ground
// contact is resolved after locomotion, so the jump window check reads the
// previous tick's contact, and integration always sees this tick's flags.
func NewPipeline(tuning prefabs.Tuning) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewClockSystem(),
		NewLocomotionSystem(tuning.Player),
		NewCollisionSystem(tuning.World, tuning.Player),
		NewIntegratorSystem(tuning.Player),
		NewFallSystem(tuning.World.DeathY),
		NewProximitySystem(tuning.World.TriggerRadius),
		NewAnimationSystem(tuning.Player),
	)
}
