package levels

import "fmt"

// Tile is the decoded kind of one level cell.
type Tile uint8

const (
	Empty Tile = iota
	Ground
	Spawn
	Flag
	PowerUp
)

const (
	GlyphEmpty   = '⬜'
	GlyphGround  = '🟩'
	GlyphSpawn   = '🙂'
	GlyphFlag    = '🏁'
	GlyphPowerUp = '🍄'
)

// TileForGlyph maps a level file glyph to its tile.
func TileForGlyph(r rune) (Tile, bool) {
	switch r {
	case GlyphEmpty:
		return Empty, true
	case GlyphGround:
		return Ground, true
	case GlyphSpawn:
		return Spawn, true
	case GlyphFlag:
		return Flag, true
	case GlyphPowerUp:
		return PowerUp, true
	}
	return 0, false
}

// Glyph is the inverse of TileForGlyph.
func (t Tile) Glyph() rune {
	switch t {
	case Ground:
		return GlyphGround
	case Spawn:
		return GlyphSpawn
	case Flag:
		return GlyphFlag
	case PowerUp:
		return GlyphPowerUp
	default:
		return GlyphEmpty
	}
}

func (t Tile) String() string {
	switch t {
	case Empty:
		return "empty"
	case Ground:
		return "ground"
	case Spawn:
		return "spawn"
	case Flag:
		return "flag"
	case PowerUp:
		return "powerup"
	}
	return fmt.Sprintf("tile(%d)", uint8(t))
}
