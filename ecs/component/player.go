package component

// Player holds the movement state of the controllable character.
//
// Position lives in Transform and is written only by the integrator. The
// Blocked and Grounded flags are written only by the collision resolver.
// Velocity fields are written by locomotion (target) and the integrator
// (current, jump decay).
type Player struct {
	VelocityCurrent float64
	VelocityTarget  float64
	// Jump is the remaining upward impulse; zero when not in a jump arc.
	Jump float64
	// LastGrounded is the simulated time in seconds of the last ground contact.
	LastGrounded float64

	Grounded     bool
	BlockedLeft  bool
	BlockedRight bool

	PoweredUp bool
	// Fallen is set once the player has dropped below the death line.
	Fallen bool

	// Moved is set by the integrator when the position changed this tick.
	Moved     bool
	AnimSteps int
}

var PlayerComponent = NewComponent[Player]()
