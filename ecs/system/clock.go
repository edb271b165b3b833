package system

import "github.com/milk9111/flagrun/ecs"

// ClockSystem advances simulated time by one fixed step.
type ClockSystem struct{}

func NewClockSystem() *ClockSystem {
	return &ClockSystem{}
}

func (s *ClockSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	mustClock(w).Tick++
}
