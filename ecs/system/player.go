package system

import (
	"fmt"

	"github.com/milk9111/flagrun/ecs"
	"github.com/milk9111/flagrun/ecs/component"
)

// mustPlayer returns the player singleton and its movement state. Per-tick
// systems cannot run without exactly one player, so anything else panics.
func mustPlayer(w *ecs.World) (ecs.Entity, *component.Player, *component.Transform) {
	e := ecs.MustSingle(w, component.PlayerTagComponent.Kind())
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		panic(fmt.Errorf("system: player %v has no player component", e))
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		panic(fmt.Errorf("system: player %v has no transform", e))
	}
	return e, p, t
}

func mustClock(w *ecs.World) *component.Clock {
	e := ecs.MustSingle(w, component.ClockComponent.Kind())
	c, _ := ecs.Get(w, e, component.ClockComponent.Kind())
	return c
}
