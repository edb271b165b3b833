package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/flagrun/ecs"
	"github.com/milk9111/flagrun/game"
	"github.com/milk9111/flagrun/levels"
	"github.com/milk9111/flagrun/prefabs"
	"github.com/rs/zerolog"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Options struct {
	Level  string
	Debug  bool
	Watch  bool
	Atlas  string
	Logger zerolog.Logger
}

// Game hosts the simulation inside the ebiten loop. ebiten calls Update at
// the simulation tick rate, so each Update is exactly one simulation step.
type Game struct {
	frames int
	start  time.Time
	debug  bool
	log    zerolog.Logger

	sim      *game.Simulation
	playlist *game.Playlist
	renderer *renderer
	menu     *menuUI
	ui       *ebitenui.UI
	watcher  *prefabs.Watcher
}

func NewGame(opts Options) (*Game, error) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, err
	}

	for _, name := range []string{"world.yaml", "player.yaml"} {
		if prefabs.Overridden(name) {
			opts.Logger.Info().Str("file", name).Msg("using prefab override from disk")
		}
	}

	g := &Game{
		start:    time.Now(),
		debug:    opts.Debug,
		log:      opts.Logger,
		sim:      game.New(tuning, game.WithLogger(opts.Logger)),
		playlist: game.NewPlaylist(levels.Names()),
	}

	var atlas *Atlas
	if opts.Atlas != "" {
		atlas, err = LoadAtlas(opts.Atlas, int(tuning.World.TileSize))
		if err != nil {
			g.log.Warn().Err(err).Str("path", opts.Atlas).Msg("atlas unavailable, drawing boxes")
		}
	}
	g.renderer = newRenderer(tuning.World, atlas, opts.Debug)
	g.menu = newMenuUI(g)
	g.ui = g.menu.ui

	if err := g.startFirst(opts.Level); err != nil {
		return nil, err
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, levels.Dir)
		if err != nil {
			g.log.Warn().Err(err).Msg("hot reload disabled")
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// startFirst starts the named level, or the first embedded one. A name
// outside the playlist still plays; Next then continues from the start.
func (g *Game) startFirst(name string) error {
	if name == "" {
		first, err := g.playlist.Current()
		if err != nil {
			return err
		}
		name = first
	}
	g.playlist.Seek(levelBase(name))
	return g.play(name)
}

func levelBase(name string) string {
	base := filepath.Base(filepath.ToSlash(name))
	if levels.IsLevelFile(base) {
		base = base[:len(base)-len(levels.Ext)]
	}
	return base
}

func (g *Game) TickRate() int {
	return g.sim.Tuning().World.TickRate
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}
	g.applyReloads()

	if g.sim.Mode() == game.ModeMenu {
		g.menu.refresh(g.sim.Outcome())
		g.ui.Update()
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyR):
			g.retry()
		case inpututil.IsKeyJustPressed(ebiten.KeyN):
			g.next()
		}
		return nil
	}

	if _, err := g.sim.Step(pollInput()); err != nil {
		return err
	}
	if player, ok := g.playerPosition(); ok {
		g.renderer.follow(player)
	}
	return nil
}

func (g *Game) playerPosition() (float64, bool) {
	for _, d := range g.sim.Snapshot(0) {
		if d.Kind == game.DrawPlayer {
			return d.X, true
		}
	}
	return 0, false
}

func (g *Game) retry() {
	if err := g.sim.Restart(); err != nil {
		g.log.Error().Err(err).Msg("restart level")
		return
	}
	g.syncTuning()
}

// next moves on after a cleared level and replays the current one otherwise.
func (g *Game) next() {
	var err error
	if outcome, _ := g.sim.Outcome(); outcome == ecs.EventFlagReached {
		err = g.playlist.Advance(g.play)
	} else {
		var name string
		if name, err = g.playlist.Current(); err == nil {
			err = g.play(name)
		}
	}
	if err != nil {
		g.log.Error().Err(err).Msg("next level")
	}
}

// play loads and starts a level by name, then brings the host in line with
// the tuning the new world runs with.
func (g *Game) play(name string) error {
	lvl, err := levels.LoadLevelFromFS(name)
	if err != nil {
		return err
	}
	if err := g.sim.Start(lvl); err != nil {
		return err
	}
	g.syncTuning()
	return nil
}

// syncTuning matches tick rate and drawing scale to the running world.
func (g *Game) syncTuning() {
	world := g.sim.Tuning().World
	g.renderer.world = world
	ebiten.SetTPS(world.TickRate)
}

// applyReloads drains the watcher without blocking. A changed spec restarts
// the running level with the new tuning, or waits for the next level while
// the menu is up; a changed level file restarts it when it is the one being
// played.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.Warn().Err(err).Msg("watch")
			}
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	if levels.IsLevelFile(path) {
		lvl := g.sim.Level()
		if lvl == nil || levelBase(path) != lvl.Name {
			return
		}
		g.log.Info().Str("level", lvl.Name).Msg("level changed, restarting")
		if err := g.play(lvl.Name); err != nil {
			g.log.Error().Err(err).Str("level", lvl.Name).Msg("reload level")
		}
		return
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		g.log.Error().Err(err).Str("file", path).Msg("reload prefabs")
		return
	}
	if err := g.sim.SetTuning(tuning); err != nil {
		g.log.Error().Err(err).Str("file", path).Msg("apply prefabs")
		return
	}
	g.syncTuning()
	g.log.Info().Str("file", path).Msg("prefabs reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.draw(screen, g.sim.Snapshot(time.Since(g.start)))

	status := fmt.Sprintf("FPS: %.2f  TPS: %.2f", ebiten.ActualFPS(), ebiten.ActualTPS())
	if lvl := g.sim.Level(); lvl != nil {
		status = fmt.Sprintf("%s  level: %s", status, lvl.Name)
	}
	ebitenutil.DebugPrint(screen, status)

	if g.sim.Mode() == game.ModeMenu {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
