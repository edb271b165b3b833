package ecs

// EventKind identifies domain events raised by per-tick systems.
type EventKind string

const (
	EventFlagReached      EventKind = "flag_reached"
	EventPowerUpCollected EventKind = "powerup_collected"
	EventPlayerFell       EventKind = "player_fell"
)

// Terminal reports whether the event ends the level.
func (k EventKind) Terminal() bool {
	return k == EventFlagReached || k == EventPlayerFell
}

// Event is raised once per occurrence. Entity is the trigger source (the
// flag or power-up) or the player for falls.
type Event struct {
	Kind   EventKind
	Entity Entity
	Tick   int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
