package system

import (
	"testing"

	"github.com/milk9111/flagrun/ecs"
	"github.com/milk9111/flagrun/ecs/component"
	"github.com/milk9111/flagrun/ecs/entity"
	"github.com/milk9111/flagrun/levels"
	"github.com/milk9111/flagrun/prefabs"
	"github.com/stretchr/testify/require"
)

func testTuning(t *testing.T) prefabs.Tuning {
	t.Helper()
	tuning, err := prefabs.LoadTuning()
	require.NoError(t, err)
	return tuning
}

func loadWorld(t *testing.T, tuning prefabs.Tuning, src string) *ecs.World {
	t.Helper()
	lvl, err := levels.Parse(src)
	require.NoError(t, err)
	w := ecs.NewWorld()
	require.NoError(t, entity.LoadLevelToWorld(w, lvl, tuning))
	return w
}

// bareWorld holds only a clock, for tests that place entities by hand.
func bareWorld(t *testing.T, tuning prefabs.Tuning) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.ClockComponent.Kind(), &component.Clock{Step: tuning.World.Step()}))
	return w
}

func setInput(t *testing.T, w *ecs.World, in component.Input) {
	t.Helper()
	e, _, _ := mustPlayer(w)
	cur, ok := ecs.Get(w, e, component.InputComponent.Kind())
	require.True(t, ok)
	*cur = in
}

// runTicks advances the pipeline n times and returns every event raised.
func runTicks(w *ecs.World, pipeline *ecs.Scheduler, n int) []ecs.Event {
	var events []ecs.Event
	for i := 0; i < n; i++ {
		pipeline.Update(w)
		events = append(events, w.Events().Drain()...)
	}
	return events
}
