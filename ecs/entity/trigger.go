package entity

import (
	"fmt"

	"github.com/milk9111/flagrun/ecs"
	"github.com/milk9111/flagrun/ecs/component"
	"github.com/milk9111/flagrun/prefabs"
)

// NewFlagAt creates a goal flag. Reaching it ends the level.
func NewFlagAt(w *ecs.World, spec prefabs.WorldSpec, x, y float64) (ecs.Entity, error) {
	flag, err := newTriggerAt(w, component.TriggerFlag, x, y, spec.Scale, spec.Flag.FrameA)
	if err != nil {
		return 0, fmt.Errorf("flag: %w", err)
	}
	if err := ecs.Add(w, flag, component.FlagTagComponent.Kind(), &component.FlagTag{}); err != nil {
		return 0, fmt.Errorf("flag: add flag tag: %w", err)
	}
	return flag, nil
}

// NewPowerUpAt creates a collectible power-up.
func NewPowerUpAt(w *ecs.World, spec prefabs.WorldSpec, x, y float64) (ecs.Entity, error) {
	powerUp, err := newTriggerAt(w, component.TriggerPowerUp, x, y, spec.Scale, spec.PowerUpFrame)
	if err != nil {
		return 0, fmt.Errorf("powerup: %w", err)
	}
	if err := ecs.Add(w, powerUp, component.PowerUpTagComponent.Kind(), &component.PowerUpTag{}); err != nil {
		return 0, fmt.Errorf("powerup: add powerup tag: %w", err)
	}
	return powerUp, nil
}

func newTriggerAt(w *ecs.World, kind component.TriggerKind, x, y, scale float64, frame int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TriggerComponent.Kind(), &component.Trigger{Kind: kind}); err != nil {
		return 0, fmt.Errorf("add trigger: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: scale, ScaleY: scale}); err != nil {
		return 0, fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Frame: frame}); err != nil {
		return 0, fmt.Errorf("add sprite: %w", err)
	}
	return e, nil
}
