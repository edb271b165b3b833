package component

// Transform is a world-space position with y pointing up. Scale multiplies
// the logical tile footprint of the entity.
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()
