package system

import (
	"github.com/milk9111/flagrun/ecs"
)

// FallSystem raises PlayerFell once the player drops below the death line.
type FallSystem struct {
	deathY float64
}

func NewFallSystem(deathY float64) *FallSystem {
	return &FallSystem{deathY: deathY}
}

func (s *FallSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	e, player, transform := mustPlayer(w)
	if player.Fallen || transform.Y >= s.deathY {
		return
	}
	player.Fallen = true
	w.Events().Push(ecs.Event{Kind: ecs.EventPlayerFell, Entity: e, Tick: mustClock(w).Tick})
}
