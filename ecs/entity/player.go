package entity

import (
	"fmt"

	"github.com/milk9111/flagrun/ecs"
	"github.com/milk9111/flagrun/ecs/component"
	"github.com/milk9111/flagrun/prefabs"
)

// NewPlayerAt creates the player singleton at (x, y).
func NewPlayerAt(w *ecs.World, spec prefabs.PlayerSpec, x, y, scale float64) (ecs.Entity, error) {
	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{
		X:      x,
		Y:      y,
		ScaleX: scale,
		ScaleY: scale,
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.SpriteComponent.Kind(), &component.Sprite{Frame: spec.Frames.Normal.WalkA}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	return player, nil
}
