package entity

import (
	"sort"
	"testing"

	"github.com/milk9111/flagrun/ecs"
	"github.com/milk9111/flagrun/ecs/component"
	"github.com/milk9111/flagrun/levels"
	"github.com/milk9111/flagrun/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTuning(t *testing.T) prefabs.Tuning {
	t.Helper()
	tuning, err := prefabs.LoadTuning()
	require.NoError(t, err)
	return tuning
}

func mustParse(t *testing.T, src string) *levels.Level {
	t.Helper()
	lvl, err := levels.Parse(src)
	require.NoError(t, err)
	return lvl
}

type placed struct {
	X, Y  float64
	Frame int
}

func groundsByX(w *ecs.World) []placed {
	var out []placed
	ecs.ForEach3(w, component.GroundTagComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind(),
		func(_ ecs.Entity, _ *component.GroundTag, tr *component.Transform, sp *component.Sprite) {
			out = append(out, placed{X: tr.X, Y: tr.Y, Frame: sp.Frame})
		})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y > out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func TestSpawnTilesFlagOverGround(t *testing.T) {
	tuning := testTuning(t)
	unit := tuning.World.Unit()
	w := ecs.NewWorld()

	require.NoError(t, SpawnTiles(w, mustParse(t, "⬜🏁⬜\n🟩🟩🟩\n"), tuning))

	flag, err := ecs.Single(w, component.FlagTagComponent.Kind())
	require.NoError(t, err)
	tr, ok := ecs.Get(w, flag, component.TransformComponent.Kind())
	require.True(t, ok)
	// column 1 of 3 is the center column, row 0 of 2 is half a tile up.
	assert.Equal(t, 0.0, tr.X)
	assert.Equal(t, unit/2, tr.Y)

	assert.Equal(t, []placed{
		{X: -unit, Y: -unit / 2, Frame: component.GroundFrameLeftEdge},
		{X: 0, Y: -unit / 2, Frame: component.GroundFrameMiddle},
		{X: unit, Y: -unit / 2, Frame: component.GroundFrameRightEdge},
	}, groundsByX(w))

	assert.Equal(t, 0, ecs.Count(w, component.PlayerTagComponent.Kind()))
	assert.Equal(t, 0, ecs.Count(w, component.PowerUpTagComponent.Kind()))
}

func TestGroundPieceIgnoresPosition(t *testing.T) {
	tuning := testTuning(t)
	// Every row holds the four neighbor cases at a different offset.
	src := "🟩⬜🟩🟩⬜🟩🟩🟩⬜\n" +
		"⬜⬜🟩⬜🟩🟩🟩⬜⬜\n" +
		"🙂⬜⬜⬜⬜⬜⬜⬜⬜\n"
	w := ecs.NewWorld()
	require.NoError(t, LoadLevelToWorld(w, mustParse(t, src), tuning))

	var frames []int
	for _, g := range groundsByX(w) {
		frames = append(frames, g.Frame)
	}
	iso, left, mid, right := component.GroundFrameIsolated, component.GroundFrameLeftEdge, component.GroundFrameMiddle, component.GroundFrameRightEdge
	assert.Equal(t, []int{
		iso, left, right, left, mid, right,
		iso, left, mid, right,
	}, frames)

	distinct := map[int]bool{iso: true, left: true, mid: true, right: true}
	assert.Len(t, distinct, 4)
}

func TestGroundPieceFor(t *testing.T) {
	tests := []struct {
		left, right bool
		want        component.GroundPiece
	}{
		{false, false, component.GroundIsolated},
		{false, true, component.GroundLeftEdge},
		{true, false, component.GroundRightEdge},
		{true, true, component.GroundMiddle},
	}
	for _, tc := range tests {
		got := component.GroundPieceFor(tc.left, tc.right)
		assert.Equal(t, tc.want, got, "left=%v right=%v", tc.left, tc.right)
	}
}

func TestLoadLevelToWorldPlacesPlayer(t *testing.T) {
	tuning := testTuning(t)
	unit := tuning.World.Unit()
	w := ecs.NewWorld()

	lvl := mustParse(t, "🙂🍄⬜\n🟩🟩🟩\n")
	require.NoError(t, LoadLevelToWorld(w, lvl, tuning))

	player, err := ecs.Single(w, component.PlayerTagComponent.Kind())
	require.NoError(t, err)
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	assert.Equal(t, -unit, tr.X)
	assert.Equal(t, unit/2+unit*tuning.Player.SpawnOffset, tr.Y)
	assert.Equal(t, tuning.World.Scale, tr.ScaleX)

	assert.True(t, ecs.Has(w, player, component.PlayerComponent.Kind()))
	assert.True(t, ecs.Has(w, player, component.InputComponent.Kind()))
	assert.True(t, ecs.Has(w, player, component.SpriteComponent.Kind()))

	pu, err := ecs.Single(w, component.PowerUpTagComponent.Kind())
	require.NoError(t, err)
	trig, ok := ecs.Get(w, pu, component.TriggerComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.TriggerPowerUp, trig.Kind)
	assert.False(t, trig.Consumed)

	clock, err := ecs.Single(w, component.ClockComponent.Kind())
	require.NoError(t, err)
	c, _ := ecs.Get(w, clock, component.ClockComponent.Kind())
	assert.Equal(t, tuning.World.Step(), c.Step)
	assert.Equal(t, 0.0, c.Elapsed())

	assert.ErrorIs(t, LoadLevelToWorld(w, lvl, tuning), ErrLevelAlreadyLoaded)
}

func TestLoadLevelToWorldRejectsBadContent(t *testing.T) {
	tuning := testTuning(t)
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"no_spawn", "⬜🏁⬜\n🟩🟩🟩\n", levels.ErrNoSpawn},
		{"two_spawns", "🙂🙂\n🟩🟩\n", levels.ErrMultipleSpawns},
		{"ragged", "🙂\n🟩🟩\n", levels.ErrRaggedRows},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			assert.ErrorIs(t, LoadLevelToWorld(w, mustParse(t, tc.src), tuning), tc.want)
			assert.Empty(t, ecs.Entities(w), "nothing is instantiated from a rejected level")
		})
	}
}

func TestLoadLevelToWorldIsIdempotent(t *testing.T) {
	tuning := testTuning(t)
	lvl, err := levels.LoadLevelFromFS("01_meadow")
	require.NoError(t, err)

	a, b := ecs.NewWorld(), ecs.NewWorld()
	require.NoError(t, LoadLevelToWorld(a, lvl, tuning))
	require.NoError(t, LoadLevelToWorld(b, lvl, tuning))

	assert.Equal(t, groundsByX(a), groundsByX(b))
	assert.Equal(t, len(ecs.Entities(a)), len(ecs.Entities(b)))
	assert.Equal(t, lvl.Count(levels.Ground), ecs.Count(a, component.GroundTagComponent.Kind()))
}
