package entity

import (
	"errors"

	"github.com/milk9111/flagrun/ecs"
	"github.com/milk9111/flagrun/ecs/component"
	"github.com/milk9111/flagrun/levels"
	"github.com/milk9111/flagrun/prefabs"
)

var ErrLevelAlreadyLoaded = errors.New("entity: world already holds a level")

// CellPosition returns the world position of a cell. The grid is centered
// on the origin and y grows upward, so row 0 is the top.
func CellPosition(lvl *levels.Level, unit float64, row, col int) (x, y float64) {
	centerCol := float64(lvl.Width()-1) / 2
	centerRow := float64(lvl.Rows()-1) / 2
	x = (float64(col) - centerCol) * unit
	y = -(float64(row) - centerRow) * unit
	return x, y
}

// LoadLevelToWorld instantiates every tile of lvl into an empty world: ground
// blocks, the player singleton, flags, power-ups and the simulation clock.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, tuning prefabs.Tuning) error {
	if err := lvl.Validate(); err != nil {
		return err
	}
	if ecs.Count(w, component.PlayerTagComponent.Kind()) > 0 || ecs.Count(w, component.ClockComponent.Kind()) > 0 {
		return ErrLevelAlreadyLoaded
	}

	clock := ecs.CreateEntity(w)
	if err := ecs.Add(w, clock, component.ClockComponent.Kind(), &component.Clock{Step: tuning.World.Step()}); err != nil {
		return err
	}
	return SpawnTiles(w, lvl, tuning)
}

// SpawnTiles walks the grid once and creates one entity per non-empty tile.
// It applies no content policy; LoadLevelToWorld is the checked entry point.
func SpawnTiles(w *ecs.World, lvl *levels.Level, tuning prefabs.Tuning) error {
	unit := tuning.World.Unit()
	scale := tuning.World.Scale
	for row, tiles := range lvl.Tiles {
		for col, tile := range tiles {
			x, y := CellPosition(lvl, unit, row, col)
			var err error
			switch tile {
			case levels.Ground:
				piece := component.GroundPieceFor(lvl.At(row, col-1) == levels.Ground, lvl.At(row, col+1) == levels.Ground)
				_, err = NewGroundAt(w, x, y, scale, piece)
			case levels.Spawn:
				_, err = NewPlayerAt(w, tuning.Player, x, y+unit*tuning.Player.SpawnOffset, scale)
			case levels.Flag:
				_, err = NewFlagAt(w, tuning.World, x, y)
			case levels.PowerUp:
				_, err = NewPowerUpAt(w, tuning.World, x, y)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
