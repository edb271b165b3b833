package component

// Clock is the simulated time source, advanced once per fixed tick.
type Clock struct {
	Tick int
	Step float64
}

// Elapsed returns the simulated seconds since the level started.
func (c Clock) Elapsed() float64 {
	return float64(c.Tick) * c.Step
}

var ClockComponent = NewComponent[Clock]()
