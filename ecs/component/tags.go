package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type GroundTag struct{}

var GroundTagComponent = NewComponent[GroundTag]()

type FlagTag struct{}

var FlagTagComponent = NewComponent[FlagTag]()

type PowerUpTag struct{}

var PowerUpTagComponent = NewComponent[PowerUpTag]()
