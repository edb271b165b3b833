package component

type TriggerKind int

const (
	TriggerFlag TriggerKind = iota
	TriggerPowerUp
)

func (k TriggerKind) String() string {
	if k == TriggerPowerUp {
		return "powerup"
	}
	return "flag"
}

// Trigger fires once when the player comes within range. Consumed triggers
// are never evaluated again.
type Trigger struct {
	Kind     TriggerKind
	Consumed bool
}

var TriggerComponent = NewComponent[Trigger]()
