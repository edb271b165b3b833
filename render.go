package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/flagrun/game"
	"github.com/milk9111/flagrun/prefabs"
	"golang.org/x/image/colornames"
)

// cameraLag is the share of the distance to the player the camera closes
// each tick.
const cameraLag = 0.1

// renderer draws a snapshot in world space: origin at the screen center,
// y up, horizontally following the player.
type renderer struct {
	world   prefabs.WorldSpec
	atlas   *Atlas
	debug   bool
	cameraX float64
}

func newRenderer(world prefabs.WorldSpec, atlas *Atlas, debug bool) *renderer {
	return &renderer{world: world, atlas: atlas, debug: debug}
}

func (r *renderer) follow(x float64) {
	r.cameraX += (x - r.cameraX) * cameraLag
}

func (r *renderer) toScreen(x, y float64) (float64, float64) {
	return baseWidth/2 + x - r.cameraX, baseHeight/2 - y
}

func (r *renderer) draw(screen *ebiten.Image, snapshot []game.Drawable) {
	palette := r.world.Palette
	screen.Fill(palette.Background.ColorOr(colornames.Skyblue))

	for _, d := range snapshot {
		cx, cy, w, h := r.bounds(d)
		sx, sy := r.toScreen(cx, cy)
		left, top := sx-w/2, sy-h/2

		if img := r.spriteFor(d); img != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-float64(r.atlas.size)/2, -float64(r.atlas.size)/2)
			scale := w / float64(r.atlas.size)
			if d.FlipX {
				op.GeoM.Scale(-scale, h/float64(r.atlas.size))
			} else {
				op.GeoM.Scale(scale, h/float64(r.atlas.size))
			}
			op.GeoM.Translate(sx, sy)
			op.Filter = ebiten.FilterNearest
			screen.DrawImage(img, op)
		} else {
			vector.FillRect(screen, float32(left), float32(top), float32(w), float32(h), r.colorFor(d), false)
			if d.Kind == game.DrawPlayer {
				r.drawFacing(screen, d, sx, sy, w)
			}
		}

		if r.debug {
			vector.StrokeRect(screen, float32(left), float32(top), float32(w), float32(h), 1, colornames.Black, false)
			ebitenutil.DebugPrintAt(screen, fmt.Sprint(d.Frame), int(left)+2, int(top)+2)
		}
	}
}

// spriteFor returns the atlas frame for the player, or nil when boxes are
// drawn instead. Only the player uses the atlas.
func (r *renderer) spriteFor(d game.Drawable) *ebiten.Image {
	if d.Kind != game.DrawPlayer {
		return nil
	}
	return r.atlas.Frame(d.Frame)
}

// bounds is the drawn rectangle of d in world space. The player sprite is
// 1.25 tiles tall with its center a quarter tile below the transform.
func (r *renderer) bounds(d game.Drawable) (cx, cy, w, h float64) {
	unit := r.world.TileSize * d.Scale
	switch d.Kind {
	case game.DrawPlayer:
		return d.X, d.Y - unit/4, unit, unit * 1.25
	case game.DrawPowerUp:
		return d.X, d.Y, unit / 2, unit / 2
	default:
		return d.X, d.Y, unit, unit
	}
}

func (r *renderer) colorFor(d game.Drawable) color.Color {
	palette := r.world.Palette
	switch d.Kind {
	case game.DrawGround:
		return palette.Ground.ColorOr(colornames.Forestgreen)
	case game.DrawFlag:
		if d.Frame == r.world.Flag.FrameB {
			return colornames.Gold
		}
		return palette.Flag.ColorOr(colornames.Whitesmoke)
	case game.DrawPowerUp:
		return palette.PowerUp.ColorOr(colornames.Saddlebrown)
	case game.DrawPlayer:
		if d.Powered {
			return palette.PlayerPowered.ColorOr(colornames.Darkorange)
		}
		return palette.Player.ColorOr(colornames.Crimson)
	default:
		return colornames.Magenta
	}
}

// drawFacing marks the side the player faces with a small eye.
func (r *renderer) drawFacing(screen *ebiten.Image, d game.Drawable, sx, sy, w float64) {
	dx := w / 4
	if d.FlipX {
		dx = -dx
	}
	vector.FillCircle(screen, float32(sx+dx), float32(sy-w/4), float32(w/10), colornames.White, true)
}
