package ecs

import (
	"fmt"

	"github.com/milk9111/flagrun/ecs/component"
)

// ForEach visits every live entity holding kind. Components may be added or
// removed from inside fn; the visit order is fixed before the first call.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.store(kind.ID(), false).Entities() {
		a, ok := Get(w, e, kind)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	ForEach(w, ka, func(e Entity, a *A) {
		b, ok := Get(w, e, kb)
		if !ok {
			return
		}
		fn(e, a, b)
	})
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		c, ok := Get(w, e, kc)
		if !ok {
			return
		}
		fn(e, a, b, c)
	})
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	ForEach3(w, ka, kb, kc, func(e Entity, a *A, b *B, c *C) {
		d, ok := Get(w, e, kd)
		if !ok {
			return
		}
		fn(e, a, b, c, d)
	})
}

// Count returns how many live entities hold kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	if w == nil {
		return 0
	}
	return w.store(kind.ID(), false).Len()
}

// First returns any entity holding kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	ents := w.store(kind.ID(), false).Entities()
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// SingletonError reports a component that must be held by exactly one entity.
type SingletonError struct {
	Component string
	Count     int
}

func (e *SingletonError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("ecs: no entity holds singleton %s", e.Component)
	}
	return fmt.Sprintf("ecs: %d entities hold singleton %s", e.Count, e.Component)
}

// Single returns the only entity holding kind, or a *SingletonError when there
// are zero or several.
func Single[T any](w *World, kind component.ComponentKind[T]) (Entity, error) {
	n := Count(w, kind)
	if n != 1 {
		return 0, &SingletonError{Component: kind.Name(), Count: n}
	}
	e, _ := First(w, kind)
	return e, nil
}

// MustSingle is Single for per-tick systems: a missing or duplicated
// singleton is a content defect and panics with the *SingletonError.
func MustSingle[T any](w *World, kind component.ComponentKind[T]) Entity {
	e, err := Single(w, kind)
	if err != nil {
		panic(err)
	}
	return e
}
