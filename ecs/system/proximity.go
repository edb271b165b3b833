package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/flagrun/ecs"
	"github.com/milk9111/flagrun/ecs/component"
)

// ProximitySystem fires flag and power-up triggers the player is close to.
type ProximitySystem struct {
	radius float64
}

func NewProximitySystem(radius float64) *ProximitySystem {
	return &ProximitySystem{radius: radius}
}

func (s *ProximitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range EvaluateProximity(w, s.radius) {
		w.Events().Push(evt)
	}
}

// EvaluateProximity consumes every live trigger strictly within radius of the
// player and returns one event per trigger. A flag stays in the world marked
// consumed; a power-up is despawned after granting its effect. Either way a
// trigger fires at most once.
func EvaluateProximity(w *ecs.World, radius float64) []ecs.Event {
	_, player, transform := mustPlayer(w)
	tick := mustClock(w).Tick
	at := cp.Vector{X: transform.X, Y: transform.Y}

	var events []ecs.Event
	ecs.ForEach2(w, component.TriggerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, trig *component.Trigger, t *component.Transform) {
		if trig.Consumed || at.Distance(cp.Vector{X: t.X, Y: t.Y}) >= radius {
			return
		}
		trig.Consumed = true
		switch trig.Kind {
		case component.TriggerFlag:
			events = append(events, ecs.Event{Kind: ecs.EventFlagReached, Entity: e, Tick: tick})
		case component.TriggerPowerUp:
			player.PoweredUp = true
			events = append(events, ecs.Event{Kind: ecs.EventPowerUpCollected, Entity: e, Tick: tick})
			ecs.DestroyEntity(w, e)
		}
	})
	return events
}
