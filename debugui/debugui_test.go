package debugui

import (
	"reflect"
	"testing"
	"time"

	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceStatsRing(t *testing.T) {
	ps := NewPerformanceStats(4)
	assert.Zero(t, ps.AverageFrameTime())

	ps.Record(0.010, nil)
	ps.Record(0.020, nil)
	assert.InDelta(t, 15.0, ps.AverageFrameTime(), 1e-4)
	assert.InDeltaSlice(t, []float32{0, 0, 10, 20}, ps.FrameTimes(), 1e-4)

	ps.Record(0.030, nil)
	ps.Record(0.040, nil)
	ps.Record(0.050, nil)
	assert.InDeltaSlice(t, []float32{20, 30, 40, 50}, ps.FrameTimes(), 1e-4)
	assert.InDelta(t, 35.0, ps.AverageFrameTime(), 1e-4)
}

func TestPerformanceStatsSystems(t *testing.T) {
	ps := NewPerformanceStats(3)
	stats := &frame.SchedulerStats{
		Systems: []frame.SystemStats{
			{Name: "EngineSystem", LastDuration: 2 * time.Millisecond},
			{Name: "RenderSystem", LastDuration: 500 * time.Microsecond},
		},
	}
	ps.Record(0.016, stats)

	assert.Equal(t, []string{"EngineSystem", "RenderSystem"}, ps.systemNames)
	assert.InDeltaSlice(t, []float32{0, 0, 2}, ps.SystemTimes("EngineSystem"), 1e-4)
	assert.InDeltaSlice(t, []float32{0, 0, 0.5}, ps.SystemTimes("RenderSystem"), 1e-4)
	assert.Nil(t, ps.SystemTimes("AudioSystem"))
}

func TestEngineInspectorScores(t *testing.T) {
	ei := NewEngineInspector(3)
	for score := range 5 {
		ei.Record(tetris.Snapshot{Score: score})
	}
	assert.Equal(t, []float32{2, 3, 4}, ei.Scores())
}

func TestFieldCacheSkipsUnexported(t *testing.T) {
	type inner struct {
		Deep int
	}
	type sample struct {
		Visible int
		hidden  int
		Ptr     *game.Session
		inner
	}
	_ = sample{hidden: 1}

	cache := make(fieldCache)
	fields := cache.fields(reflect.TypeFor[sample]())
	require.Len(t, fields, 2)
	assert.Equal(t, "Visible", fields[0].Name)
	assert.Equal(t, "Ptr", fields[1].Name)
	assert.Equal(t, []int{2}, fields[1].Index)

	assert.Len(t, cache, 1)
	assert.Equal(t, fields, cache.fields(reflect.TypeFor[sample]()))
	assert.Empty(t, cache.fields(reflect.TypeFor[int]()))
}

func TestAddItem(t *testing.T) {
	resources := frame.NewResources()
	calls := 0
	AddItem(resources, ImguiItem{Render: func() { calls++ }})
	AddItem(resources, ImguiItem{Render: func() { calls++ }})

	var items *Items
	require.True(t, resources.Read(&items))
	require.Len(t, items.List, 2)
	for _, item := range items.List {
		item.Render()
	}
	assert.Equal(t, 2, calls)
}

func TestInstall(t *testing.T) {
	g, err := game.New(game.Options{Rand: tetris.NewRand(1)})
	require.NoError(t, err)

	state := Install(g, 60)
	require.NotNil(t, state)
	assert.False(t, state.WantCaptureKeyboard)

	var items *Items
	require.True(t, g.Resources().Read(&items))
	assert.Len(t, items.List, 3)

	stats := g.Scheduler().Stats()
	last := stats.Systems[len(stats.Systems)-1]
	assert.Equal(t, "ImguiSystem", last.Name)
}
