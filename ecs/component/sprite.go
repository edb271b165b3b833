package component

// Sprite is what the renderer reads: an atlas frame index and horizontal
// mirroring. Drawing itself happens outside the simulation.
type Sprite struct {
	Frame int
	FlipX bool
}

var SpriteComponent = NewComponent[Sprite]()
