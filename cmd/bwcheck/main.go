// Command bwcheck validates .bw level files and prints their layout.
//
//	bwcheck [-fmt] [-q] file.bw...
//
// With no files it checks every embedded level. -fmt rewrites each file in
// canonical form (LF line endings, trailing newline).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/milk9111/flagrun/levels"
	"github.com/rs/zerolog"
)

func main() {
	format := flag.Bool("fmt", false, "rewrite files in canonical form")
	quiet := flag.Bool("q", false, "only report failures")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()
	if *quiet {
		log = log.Level(zerolog.WarnLevel)
	}

	failed := 0
	if flag.NArg() == 0 {
		for _, name := range levels.Names() {
			lvl, err := levels.LoadLevelFromFS(name)
			if err != nil {
				log.Error().Err(err).Str("level", name).Msg("invalid")
				failed++
				continue
			}
			report(log, name, lvl)
		}
	}

	for _, path := range flag.Args() {
		lvl, err := levels.Load(path)
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("invalid")
			failed++
			continue
		}
		report(log, path, lvl)
		if *format {
			if err := rewrite(path, lvl); err != nil {
				log.Error().Err(err).Str("file", path).Msg("rewrite")
				failed++
			}
		}
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d level(s) failed\n", failed)
		os.Exit(1)
	}
}

func report(log zerolog.Logger, name string, lvl *levels.Level) {
	log.Info().
		Str("level", name).
		Int("rows", lvl.Rows()).
		Int("width", lvl.Width()).
		Int("ground", lvl.Count(levels.Ground)).
		Int("flags", lvl.Count(levels.Flag)).
		Int("powerups", lvl.Count(levels.PowerUp)).
		Msg("ok")
}

func rewrite(path string, lvl *levels.Level) error {
	var buf bytes.Buffer
	if err := levels.Encode(&buf, lvl); err != nil {
		return err
	}
	current, err := os.ReadFile(path)
	if err == nil && bytes.Equal(current, buf.Bytes()) {
		return nil
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
