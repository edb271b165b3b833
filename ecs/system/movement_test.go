package system

import (
	"testing"

	"github.com/milk9111/flagrun/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestSteerJumpWindow(t *testing.T) {
	spec := testTuning(t).Player

	tests := []struct {
		name        string
		sinceGround float64
		jump        bool
		wantJump    float64
	}{
		{name: "on_ground", sinceGround: 0, jump: true, wantJump: 15},
		{name: "just_inside_window", sinceGround: 31.0 / 64, jump: true, wantJump: 15},
		{name: "at_window_edge", sinceGround: 0.5, jump: true, wantJump: 0},
		{name: "past_window", sinceGround: 33.0 / 64, jump: true, wantJump: 0},
		{name: "not_pressed", sinceGround: 0, jump: false, wantJump: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &component.Player{LastGrounded: 1}
			Steer(p, component.Input{Jump: tc.jump}, 1+tc.sinceGround, spec)
			assert.Equal(t, tc.wantJump, p.Jump)
		})
	}
}

func TestSteerTargetVelocity(t *testing.T) {
	spec := testTuning(t).Player

	tests := []struct {
		name   string
		player component.Player
		in     component.Input
		want   float64
	}{
		{name: "right", in: component.Input{Right: true}, want: 5},
		{name: "left", in: component.Input{Left: true}, want: -5},
		{name: "left_wins", in: component.Input{Left: true, Right: true}, want: -5},
		{name: "released", player: component.Player{VelocityTarget: 5}, want: 0},
		{
			name:   "airborne_keeps_target",
			player: component.Player{VelocityTarget: 5, LastGrounded: -2},
			in:     component.Input{Left: true},
			want:   5,
		},
		{
			name:   "rising_steers_after_coyote_time",
			player: component.Player{VelocityTarget: 5, LastGrounded: -3, Jump: 4},
			in:     component.Input{Left: true},
			want:   -5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.player
			p.VelocityCurrent = 1.5
			Steer(&p, tc.in, 0, spec)
			assert.Equal(t, tc.want, p.VelocityTarget)
			assert.Equal(t, 1.5, p.VelocityCurrent, "steering never touches the current velocity")
		})
	}
}

func TestIntegrateHorizontal(t *testing.T) {
	spec := testTuning(t).Player

	tests := []struct {
		name        string
		player      component.Player
		wantCurrent float64
		wantX       float64
		wantMoved   bool
	}{
		{
			name:        "eases_toward_target",
			player:      component.Player{VelocityTarget: 5},
			wantCurrent: 0.5,
			wantX:       0.5,
			wantMoved:   true,
		},
		{
			name:        "snaps_small_velocity_to_rest",
			player:      component.Player{VelocityCurrent: 0.105},
			wantCurrent: 0,
			wantX:       0,
		},
		{
			name:        "blocked_left_stops_leftward",
			player:      component.Player{VelocityCurrent: -3, VelocityTarget: -5, BlockedLeft: true},
			wantCurrent: 0,
			wantX:       0,
		},
		{
			name:        "blocked_left_allows_rightward",
			player:      component.Player{VelocityCurrent: 2, VelocityTarget: 2, BlockedLeft: true},
			wantCurrent: 2,
			wantX:       2,
			wantMoved:   true,
		},
		{
			name:        "blocked_right_stops_rightward",
			player:      component.Player{VelocityCurrent: 4, VelocityTarget: 5, BlockedRight: true},
			wantCurrent: 0,
			wantX:       0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.player
			tr := &component.Transform{ScaleX: 0.5, ScaleY: 0.5}
			Integrate(&p, tr, 0, spec)
			assert.InDelta(t, tc.wantCurrent, p.VelocityCurrent, 1e-12)
			assert.InDelta(t, tc.wantX, tr.X, 1e-12)
			assert.Equal(t, tc.wantMoved, p.Moved)
		})
	}
}

func TestIntegrateSnapHoldsOnceAtRest(t *testing.T) {
	spec := testTuning(t).Player
	p := &component.Player{VelocityCurrent: 5}
	tr := &component.Transform{}

	for i := 0; i < 200; i++ {
		Integrate(p, tr, 0, spec)
	}
	assert.Equal(t, 0.0, p.VelocityCurrent)

	x := tr.X
	Integrate(p, tr, 0, spec)
	assert.Equal(t, x, tr.X)
	assert.False(t, p.Moved)
}

func TestIntegrateVertical(t *testing.T) {
	spec := testTuning(t).Player

	tests := []struct {
		name     string
		jump     float64
		airtime  float64
		wantY    float64
		wantJump float64
	}{
		{name: "jump_without_gravity", jump: 15, airtime: 0, wantY: 15, wantJump: 14.5},
		{name: "jump_against_gravity", jump: 15, airtime: 1, wantY: 5, wantJump: 14.5},
		{name: "jump_decay_clamps", jump: 0.25, airtime: 0, wantY: 0.25, wantJump: 0},
		{name: "gravity_waits", airtime: 6.0 / 64, wantY: 0},
		{name: "gravity_after_delay", airtime: 7.0 / 64, wantY: -10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &component.Player{Jump: tc.jump, LastGrounded: 2}
			tr := &component.Transform{}
			Integrate(p, tr, 2+tc.airtime, spec)
			assert.Equal(t, tc.wantY, tr.Y)
			assert.Equal(t, tc.wantJump, p.Jump)
			assert.Equal(t, tc.wantY != 0, p.Moved)
		})
	}
}
