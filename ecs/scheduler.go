package ecs

// System updates a world once per fixed tick.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

// Scheduler runs its systems in insertion order, every tick, on the caller's
// goroutine. Later systems see the writes of earlier ones within the tick.
type Scheduler struct {
	systems []System
}

// NewScheduler builds a scheduler from systems, skipping nil entries.
func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs one tick.
func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

// Systems returns a copy of the run order.
func (s *Scheduler) Systems() []System {
	return append([]System(nil), s.systems...)
}
