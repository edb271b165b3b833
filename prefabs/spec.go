package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// WorldSpec holds level geometry and trigger tuning.
type WorldSpec struct {
	Name          string      `yaml:"name"`
	TileSize      float64     `yaml:"tile_size"`
	Scale         float64     `yaml:"scale"`
	TickRate      int         `yaml:"tick_rate"`
	DeathY        float64     `yaml:"death_y"`
	TriggerRadius float64     `yaml:"trigger_radius"`
	Flag          FlagSpec    `yaml:"flag"`
	PowerUpFrame  int         `yaml:"powerup_frame"`
	Palette       PaletteSpec `yaml:"palette"`
}

// FlagSpec is the wall-clock idle animation of goal flags.
type FlagSpec struct {
	FrameA   int     `yaml:"frame_a"`
	FrameB   int     `yaml:"frame_b"`
	Interval float64 `yaml:"interval"`
}

type PaletteSpec struct {
	Background    *YAMLColor `yaml:"background"`
	Ground        *YAMLColor `yaml:"ground"`
	Player        *YAMLColor `yaml:"player"`
	PlayerPowered *YAMLColor `yaml:"player_powered"`
	Flag          *YAMLColor `yaml:"flag"`
	PowerUp       *YAMLColor `yaml:"powerup"`
}

// Step returns the fixed tick duration in seconds.
func (s WorldSpec) Step() float64 {
	return 1 / float64(s.TickRate)
}

// Unit is the world-space edge length of one tile at the level scale.
func (s WorldSpec) Unit() float64 {
	return s.TileSize * s.Scale
}

func (s WorldSpec) Validate() error {
	switch {
	case s.TileSize <= 0:
		return fmt.Errorf("%w: tile_size must be positive, got %v", ErrInvalidSpec, s.TileSize)
	case s.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive, got %v", ErrInvalidSpec, s.Scale)
	case s.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidSpec, s.TickRate)
	case s.TriggerRadius <= 0:
		return fmt.Errorf("%w: trigger_radius must be positive, got %v", ErrInvalidSpec, s.TriggerRadius)
	case s.Flag.Interval <= 0:
		return fmt.Errorf("%w: flag.interval must be positive, got %v", ErrInvalidSpec, s.Flag.Interval)
	}
	return nil
}

// PlayerSpec holds locomotion, integration and animation tuning. Velocities
// are in world units per tick, times in simulated seconds.
type PlayerSpec struct {
	Name          string       `yaml:"name"`
	MoveSpeed     float64      `yaml:"move_speed"`
	JumpImpulse   float64      `yaml:"jump_impulse"`
	JumpDecay     float64      `yaml:"jump_decay"`
	Gravity       float64      `yaml:"gravity"`
	CoyoteTime    float64      `yaml:"coyote_time"`
	JumpWindow    float64      `yaml:"jump_window"`
	GravityDelay  float64      `yaml:"gravity_delay"`
	Smoothing     float64      `yaml:"smoothing"`
	SnapThreshold float64      `yaml:"snap_threshold"`
	Footprint     float64      `yaml:"footprint"`
	WallTolerance float64      `yaml:"wall_tolerance"`
	WalkCadence   int          `yaml:"walk_cadence"`
	SpawnOffset   float64      `yaml:"spawn_offset"`
	Frames        PlayerFrames `yaml:"frames"`
}

type PlayerFrames struct {
	Normal  FrameSet `yaml:"normal"`
	Powered FrameSet `yaml:"powered"`
}

// FrameSet lists the atlas frames used by one player look.
type FrameSet struct {
	WalkA int `yaml:"walk_a"`
	WalkB int `yaml:"walk_b"`
	Jump  int `yaml:"jump"`
}

func (s PlayerSpec) Validate() error {
	switch {
	case s.Smoothing < 1:
		return fmt.Errorf("%w: smoothing must be >= 1, got %v", ErrInvalidSpec, s.Smoothing)
	case s.JumpDecay <= 0:
		return fmt.Errorf("%w: jump_decay must be positive, got %v", ErrInvalidSpec, s.JumpDecay)
	case s.Footprint <= 0 || s.Footprint > 1:
		return fmt.Errorf("%w: footprint must be in (0, 1], got %v", ErrInvalidSpec, s.Footprint)
	case s.WalkCadence <= 0:
		return fmt.Errorf("%w: walk_cadence must be positive, got %d", ErrInvalidSpec, s.WalkCadence)
	}
	return nil
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: world.yaml: %w", err)
	}
	return &spec, nil
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: player.yaml: %w", err)
	}
	return &spec, nil
}

// Tuning bundles every spec the simulation needs.
type Tuning struct {
	World  WorldSpec
	Player PlayerSpec
}

func LoadTuning() (Tuning, error) {
	world, err := LoadWorldSpec()
	if err != nil {
		return Tuning{}, err
	}
	player, err := LoadPlayerSpec()
	if err != nil {
		return Tuning{}, err
	}
	return Tuning{World: *world, Player: *player}, nil
}

type YAMLColor struct {
	color.Color
}

// ColorOr returns the configured color, or fallback when unset.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
