package ecs

import "fmt"

// Entity is a generation-checked handle: the slot id sits in the low 32 bits
// and the slot's generation in the high 32 bits. A destroyed entity's handle
// never matches the slot's next occupant.
type Entity uint64

type entityID uint32
type generation uint32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<32 | uint64(id))
}

func (e Entity) id() entityID { return entityID(e & 0xffffffff) }

func (e Entity) generation() generation { return generation(e >> 32) }

// String renders the handle as "<id>v<generation>".
func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.id(), e.generation())
}

// Valid reports whether e refers to a slot at all. The zero Entity is never
// valid.
func (e Entity) Valid() bool {
	return e.id() > 0
}

// entityStore hands out slots and recycles freed ones. Slot ids start at 1.
type entityStore struct {
	gen   []generation
	alive []bool
	free  []entityID
	count int
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		s.alive = append(s.alive, false)
		id = entityID(len(s.gen))
	}
	s.alive[id-1] = true
	s.count++
	return makeEntity(id, s.gen[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	slot := e.id() - 1
	s.gen[slot]++
	s.alive[slot] = false
	s.free = append(s.free, e.id())
	s.count--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gen) {
		return false
	}
	return s.alive[id-1] && s.gen[id-1] == e.generation()
}

func (s *entityStore) all() []Entity {
	out := make([]Entity, 0, s.count)
	for i, ok := range s.alive {
		if ok {
			out = append(out, makeEntity(entityID(i+1), s.gen[i]))
		}
	}
	return out
}
