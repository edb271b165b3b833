package entity

import (
	"fmt"

	"github.com/milk9111/flagrun/ecs"
	"github.com/milk9111/flagrun/ecs/component"
)

func NewGroundAt(w *ecs.World, x, y, scale float64, piece component.GroundPiece) (ecs.Entity, error) {
	ground := ecs.CreateEntity(w)
	if err := ecs.Add(w, ground, component.GroundTagComponent.Kind(), &component.GroundTag{}); err != nil {
		return 0, fmt.Errorf("ground: add ground tag: %w", err)
	}
	if err := ecs.Add(w, ground, component.GroundComponent.Kind(), &component.Ground{Piece: piece}); err != nil {
		return 0, fmt.Errorf("ground: add ground: %w", err)
	}
	if err := ecs.Add(w, ground, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: scale, ScaleY: scale}); err != nil {
		return 0, fmt.Errorf("ground: add transform: %w", err)
	}
	if err := ecs.Add(w, ground, component.SpriteComponent.Kind(), &component.Sprite{Frame: piece.Frame()}); err != nil {
		return 0, fmt.Errorf("ground: add sprite: %w", err)
	}
	return ground, nil
}
