// Package game drives one level at a time through the fixed-tick pipeline and
// exposes the input, event and render boundaries the host needs.
package game

import (
	"errors"
	"fmt"

	"github.com/milk9111/flagrun/ecs"
	"github.com/milk9111/flagrun/ecs/component"
	"github.com/milk9111/flagrun/ecs/entity"
	"github.com/milk9111/flagrun/ecs/system"
	"github.com/milk9111/flagrun/levels"
	"github.com/milk9111/flagrun/prefabs"
	"github.com/rs/zerolog"
)

// Input is the per-tick control state of the player.
type Input = component.Input

type Mode int

const (
	ModeMenu Mode = iota
	ModeGame
)

func (m Mode) String() string {
	if m == ModeGame {
		return "game"
	}
	return "menu"
}

var ErrNoLevel = errors.New("game: no level started")

// Simulation owns the world of the running level. It is not safe for
// concurrent use; the host calls it from its update loop only.
type Simulation struct {
	// tuning is applied on the next Start; running is what the current
	// world and pipeline were built with.
	tuning   prefabs.Tuning
	running  prefabs.Tuning
	log      zerolog.Logger
	level    *levels.Level
	world    *ecs.World
	pipeline *ecs.Scheduler

	mode    Mode
	active  bool
	outcome ecs.EventKind
}

type Option func(*Simulation)

func WithLogger(log zerolog.Logger) Option {
	return func(s *Simulation) {
		s.log = log
	}
}

func New(tuning prefabs.Tuning, opts ...Option) *Simulation {
	s := &Simulation{
		tuning:   tuning,
		running:  tuning,
		log:      zerolog.Nop(),
		pipeline: system.NewPipeline(tuning),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start discards the current world and instantiates lvl into a fresh one.
// On error the previous state is left untouched.
func (s *Simulation) Start(lvl *levels.Level) error {
	if lvl == nil {
		return levels.ErrEmptyLevel
	}
	w := ecs.NewWorld()
	if err := entity.LoadLevelToWorld(w, lvl, s.tuning); err != nil {
		return fmt.Errorf("game: start %q: %w", lvl.Name, err)
	}

	s.level = lvl
	s.world = w
	s.running = s.tuning
	s.pipeline = system.NewPipeline(s.tuning)
	s.mode = ModeGame
	s.active = true
	s.outcome = ""
	s.log.Info().Str("level", lvl.Name).Int("rows", lvl.Rows()).Int("width", lvl.Width()).Msg("level started")
	return nil
}

// Restart starts the current level again from its spawn.
func (s *Simulation) Restart() error {
	if s.level == nil {
		return ErrNoLevel
	}
	return s.Start(s.level)
}

// SetTuning replaces the tuning. A world is never run with tuning it was not
// built with, so an active level restarts from its spawn; otherwise the
// tuning takes effect on the next Start.
func (s *Simulation) SetTuning(tuning prefabs.Tuning) error {
	s.tuning = tuning
	if !s.active {
		s.log.Debug().Msg("tuning queued for next level")
		return nil
	}
	s.log.Debug().Msg("tuning applied, restarting level")
	return s.Restart()
}

// Step advances the active level by one tick with the given input and
// returns the events raised during it. The first terminal event ends the
// level: the simulation switches to the menu and later events of that tick
// are dropped. An inactive simulation does nothing.
func (s *Simulation) Step(in Input) ([]ecs.Event, error) {
	if !s.active {
		return nil, nil
	}
	player, err := ecs.Single(s.world, component.PlayerTagComponent.Kind())
	if err != nil {
		return nil, fmt.Errorf("game: step: %w", err)
	}
	if cur, ok := ecs.Get(s.world, player, component.InputComponent.Kind()); ok {
		*cur = in
	} else if err := ecs.Add(s.world, player, component.InputComponent.Kind(), &in); err != nil {
		return nil, fmt.Errorf("game: step: %w", err)
	}

	s.pipeline.Update(s.world)

	raised := s.world.Events().Drain()
	events := make([]ecs.Event, 0, len(raised))
	for _, evt := range raised {
		events = append(events, evt)
		s.log.Info().Str("event", string(evt.Kind)).Int("tick", evt.Tick).Stringer("entity", evt.Entity).Msg("level event")
		if evt.Kind.Terminal() {
			s.finish(evt.Kind)
			break
		}
	}
	return events, nil
}

func (s *Simulation) finish(outcome ecs.EventKind) {
	s.active = false
	s.mode = ModeMenu
	s.outcome = outcome
	name := ""
	if s.level != nil {
		name = s.level.Name
	}
	s.log.Info().Str("level", name).Str("outcome", string(outcome)).Msg("level finished")
}

func (s *Simulation) Mode() Mode {
	return s.mode
}

// Active reports whether the level is running and accepting input.
func (s *Simulation) Active() bool {
	return s.active
}

// Outcome returns the terminal event that ended the last level, if any.
func (s *Simulation) Outcome() (ecs.EventKind, bool) {
	return s.outcome, s.outcome != ""
}

func (s *Simulation) Level() *levels.Level {
	return s.level
}

func (s *Simulation) World() *ecs.World {
	return s.world
}

// Tuning returns the tuning the current world runs with.
func (s *Simulation) Tuning() prefabs.Tuning {
	return s.running
}
