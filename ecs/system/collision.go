package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/flagrun/ecs"
	"github.com/milk9111/flagrun/ecs/component"
	"github.com/milk9111/flagrun/prefabs"
)

// The player sprite is one tile wide and 1.25 tiles tall; its feet sit a
// quarter tile below the transform.
const (
	playerHeightTiles = 1.25
	playerCenterDrop  = 0.25
	playerFeetDrop    = 0.5
)

// Contact is the per-tick classification of the player against the ground.
type Contact struct {
	Grounded     bool
	BlockedLeft  bool
	BlockedRight bool
}

// Body computes contact boxes for a fixed tile size.
type Body struct {
	TileSize      float64
	Footprint     float64
	WallTolerance float64
}

func NewBody(world prefabs.WorldSpec, player prefabs.PlayerSpec) Body {
	return Body{TileSize: world.TileSize, Footprint: player.Footprint, WallTolerance: player.WallTolerance}
}

// PlayerBounds is the player's contact box, shrunk by the footprint factor so
// grazing an edge does not count as contact.
func (b Body) PlayerBounds(t component.Transform) cp.BB {
	center := cp.Vector{X: t.X, Y: t.Y - b.TileSize*playerCenterDrop*t.ScaleY}
	hw := b.TileSize / 2 * t.ScaleX * b.Footprint
	hh := b.TileSize * playerHeightTiles / 2 * t.ScaleY * b.Footprint
	return cp.NewBBForExtents(center, hw, hh)
}

// GroundBounds is a full tile around the block's position.
func (b Body) GroundBounds(t component.Transform) cp.BB {
	return cp.NewBBForExtents(cp.Vector{X: t.X, Y: t.Y}, b.TileSize/2*t.ScaleX, b.TileSize/2*t.ScaleY)
}

// feetLine is the height above which an overlapping block counts as a wall.
func (b Body) feetLine(t component.Transform) float64 {
	return t.Y - b.TileSize*playerFeetDrop*t.ScaleY - b.WallTolerance
}

// Resolve classifies the player against every ground block from scratch.
// A block whose center is above the feet line is a wall on the side of its
// center; any other overlapping block is ground.
func (b Body) Resolve(player component.Transform, grounds []component.Transform) Contact {
	var c Contact
	pb := b.PlayerBounds(player)
	feet := b.feetLine(player)
	for _, g := range grounds {
		if !b.GroundBounds(g).Intersects(pb) {
			continue
		}
		switch {
		case g.Y <= feet:
			c.Grounded = true
		case g.X < player.X:
			c.BlockedLeft = true
		default:
			c.BlockedRight = true
		}
	}
	return c
}

// CollisionSystem writes the contact flags and the last grounded time.
type CollisionSystem struct {
	body Body
}

func NewCollisionSystem(world prefabs.WorldSpec, player prefabs.PlayerSpec) *CollisionSystem {
	return &CollisionSystem{body: NewBody(world, player)}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, player, transform := mustPlayer(w)

	grounds := make([]component.Transform, 0, ecs.Count(w, component.GroundTagComponent.Kind()))
	ecs.ForEach2(w, component.GroundTagComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.GroundTag, t *component.Transform) {
		grounds = append(grounds, *t)
	})

	contact := s.body.Resolve(*transform, grounds)
	player.Grounded = contact.Grounded
	if contact.Grounded {
		player.LastGrounded = mustClock(w).Elapsed()
	}
	if player.BlockedLeft != contact.BlockedLeft {
		player.BlockedLeft = contact.BlockedLeft
	}
	if player.BlockedRight != contact.BlockedRight {
		player.BlockedRight = contact.BlockedRight
	}
}
