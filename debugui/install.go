package debugui

import (
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/game"
)

// Install adds the standard developer windows to g and registers the
// system that draws them. The returned state reports ImGui's input capture
// and stays valid for the lifetime of g.
func Install(g *game.Game, historyFrames int) *ImguiInputState {
	resources := g.Resources()
	input := frame.NewSingleton[ImguiInputState](resources).Get()

	perf := NewPerformanceStats(historyFrames)
	timer := NewFrameTimer()
	AddItem(resources, ImguiItem{Render: func() {
		stats := g.Scheduler().Stats()
		perf.Record(timer.Delta(), stats)
		perf.Render(stats, resources)
	}})

	engine := NewEngineInspector(historyFrames)
	AddItem(resources, ImguiItem{Render: func() {
		engine.Record(g.Snapshot())
		engine.Render(g)
	}})

	inspector := NewResourceInspector()
	AddItem(resources, ImguiItem{Render: func() {
		inspector.Render(resources)
	}})

	g.Register(&ImguiSystem{})
	return input
}
