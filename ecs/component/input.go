package component

// Input stores the pressed state of the three actions for the current tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// MoveX is -1 for left, +1 for right and 0 for none. Left wins when both are held.
func (i Input) MoveX() float64 {
	switch {
	case i.Left:
		return -1
	case i.Right:
		return 1
	default:
		return 0
	}
}

var InputComponent = NewComponent[Input]()
