package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

func main() {
	levelName := flag.String("level", "", "level name in levels/ (basename, .bw optional); empty starts at the first level")
	debug := flag.Bool("debug", false, "enable debug logging and frame labels")
	watch := flag.Bool("watch", false, "reload levels and prefabs when they change on disk")
	atlasPath := flag.String("atlas", "", "optional player sprite sheet of 128x128 frames; a colored box is drawn without one")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(Options{
		Level:  *levelName,
		Debug:  *debug,
		Watch:  *watch,
		Atlas:  *atlasPath,
		Logger: log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("start game")
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("flagrun")
	ebiten.SetTPS(game.TickRate())

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}
