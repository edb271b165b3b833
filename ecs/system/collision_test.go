package system

import (
	"testing"

	"github.com/milk9111/flagrun/ecs"
	"github.com/milk9111/flagrun/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(x, y float64) component.Transform {
	return component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}
}

func TestResolveContact(t *testing.T) {
	body := Body{TileSize: 128, Footprint: 0.8, WallTolerance: 2}
	// At scale 1 a player at y=160 rests exactly on a block centered at y=0,
	// and its feet line is 160 - 64 - 2 = 94.
	standing := at(0, 160)

	tests := []struct {
		name    string
		player  component.Transform
		grounds []component.Transform
		want    Contact
	}{
		{
			name:    "resting_on_block",
			player:  standing,
			grounds: []component.Transform{at(0, 0)},
			want:    Contact{Grounded: true},
		},
		{
			name:    "hovering_above_block",
			player:  at(0, 160.5),
			grounds: []component.Transform{at(0, 0)},
			want:    Contact{},
		},
		{
			name:    "block_strictly_left",
			player:  standing,
			grounds: []component.Transform{at(-100, 160)},
			want:    Contact{BlockedLeft: true},
		},
		{
			name:    "block_strictly_right",
			player:  standing,
			grounds: []component.Transform{at(100, 128)},
			want:    Contact{BlockedRight: true},
		},
		{
			name:    "block_out_of_reach",
			player:  standing,
			grounds: []component.Transform{at(116, 160)},
			want:    Contact{},
		},
		{
			name:    "floor_and_wall",
			player:  standing,
			grounds: []component.Transform{at(-128, 0), at(0, 0), at(128, 0), at(100, 160)},
			want:    Contact{Grounded: true, BlockedRight: true},
		},
		{
			name:    "walls_on_both_sides",
			player:  standing,
			grounds: []component.Transform{at(-100, 160), at(100, 160)},
			want:    Contact{BlockedLeft: true, BlockedRight: true},
		},
		{
			name:    "block_top_at_feet_line_is_ground",
			player:  standing,
			grounds: []component.Transform{at(60, 94)},
			want:    Contact{Grounded: true},
		},
		{
			name:    "block_just_above_feet_line_is_wall",
			player:  standing,
			grounds: []component.Transform{at(60, 94.5)},
			want:    Contact{BlockedRight: true},
		},
		{
			name:    "block_centered_above_feet_line_is_right_wall",
			player:  standing,
			grounds: []component.Transform{at(0, 160)},
			want:    Contact{BlockedRight: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, body.Resolve(tc.player, tc.grounds))
		})
	}
}

func TestPlayerBoundsFootprint(t *testing.T) {
	body := Body{TileSize: 128, Footprint: 0.8, WallTolerance: 2}
	bb := body.PlayerBounds(component.Transform{X: 10, Y: 100, ScaleX: 0.5, ScaleY: 0.5})

	assert.InDelta(t, 10-25.6, bb.L, 1e-9)
	assert.InDelta(t, 10+25.6, bb.R, 1e-9)
	assert.InDelta(t, 84-32, bb.B, 1e-9)
	assert.InDelta(t, 84+32, bb.T, 1e-9)

	gb := body.GroundBounds(component.Transform{X: 0, Y: 0, ScaleX: 0.5, ScaleY: 0.5})
	assert.Equal(t, -32.0, gb.L)
	assert.Equal(t, 32.0, gb.T)
}

func TestCollisionSystemRecomputesFlags(t *testing.T) {
	tuning := testTuning(t)
	w := loadWorld(t, tuning, "🙂\n🟩\n")
	_, player, _ := mustPlayer(w)
	player.BlockedLeft = true
	player.BlockedRight = true
	mustClock(w).Tick = 10

	NewCollisionSystem(tuning.World, tuning.Player).Update(w)

	assert.True(t, player.Grounded)
	assert.False(t, player.BlockedLeft, "stale flags are cleared")
	assert.False(t, player.BlockedRight)
	assert.Equal(t, 10*tuning.World.Step(), player.LastGrounded)
}

func TestCollisionSystemKeepsLastGroundedWhileAirborne(t *testing.T) {
	tuning := testTuning(t)
	w := loadWorld(t, tuning, "🙂\n⬜\n")
	_, player, _ := mustPlayer(w)
	player.LastGrounded = 0.25
	mustClock(w).Tick = 40

	NewCollisionSystem(tuning.World, tuning.Player).Update(w)

	assert.False(t, player.Grounded)
	assert.Equal(t, 0.25, player.LastGrounded)
}

func TestSystemsPanicWithoutPlayer(t *testing.T) {
	tuning := testTuning(t)
	w := ecs.NewWorld()
	clock := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, clock, component.ClockComponent.Kind(), &component.Clock{Step: tuning.World.Step()}))

	systems := map[string]ecs.System{
		"locomotion": NewLocomotionSystem(tuning.Player),
		"collision":  NewCollisionSystem(tuning.World, tuning.Player),
		"integrator": NewIntegratorSystem(tuning.Player),
		"fall":       NewFallSystem(tuning.World.DeathY),
		"proximity":  NewProximitySystem(tuning.World.TriggerRadius),
		"animation":  NewAnimationSystem(tuning.Player),
	}
	for name, sys := range systems {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r, "expected panic")
				err, ok := r.(error)
				require.True(t, ok)
				var se *ecs.SingletonError
				assert.ErrorAs(t, err, &se)
				assert.Equal(t, 0, se.Count)
			}()
			sys.Update(w)
		})
	}
}
