package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/blockfall/frame"
)

// PerformanceStats keeps a ring of frame times and per-system durations,
// in milliseconds.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	systemHistory map[string][]float32
	systemNames   []string
	frameIndex    int
	recorded      int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		systemHistory: make(map[string][]float32),
	}
}

// Record appends one frame. stats may be nil.
func (ps *PerformanceStats) Record(deltaTime float32, stats *frame.SchedulerStats) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	if stats != nil {
		for _, sys := range stats.Systems {
			history, ok := ps.systemHistory[sys.Name]
			if !ok {
				history = make([]float32, ps.historyFrames)
				ps.systemHistory[sys.Name] = history
				ps.systemNames = append(ps.systemNames, sys.Name)
			}
			history[ps.frameIndex] = float32(sys.LastDuration.Microseconds()) / 1000.0
		}
	}
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
	ps.recorded = min(ps.recorded+1, ps.historyFrames)
}

// AverageFrameTime is the mean of the recorded frame times.
func (ps *PerformanceStats) AverageFrameTime() float32 {
	if ps.recorded == 0 {
		return 0
	}
	var sum float32
	for _, ft := range ps.frameHistory {
		sum += ft
	}
	return sum / float32(ps.recorded)
}

// FrameTimes returns the ring oldest first.
func (ps *PerformanceStats) FrameTimes() []float32 {
	return ps.ordered(ps.frameHistory)
}

// SystemTimes returns one system's ring oldest first, or nil.
func (ps *PerformanceStats) SystemTimes(name string) []float32 {
	history, ok := ps.systemHistory[name]
	if !ok {
		return nil
	}
	return ps.ordered(history)
}

func (ps *PerformanceStats) ordered(ring []float32) []float32 {
	samples := make([]float32, len(ring))
	copy(samples, ring[ps.frameIndex:])
	copy(samples[len(ring)-ps.frameIndex:], ring[:ps.frameIndex])
	return samples
}

func (ps *PerformanceStats) Render(stats *frame.SchedulerStats, resources *frame.Resources) {
	imgui.SetNextWindowPosV(imgui.NewVec2(400, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 360), imgui.CondOnce)
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("Resources: %d", resources.Len()))

	avgFrameTime := ps.AverageFrameTime()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	frameTimes := ps.FrameTimes()
	imgui.PlotLinesFloatPtr("##frametime", &frameTimes[0], int32(len(frameTimes)))

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
			}

			imgui.EndTable()
		}

		if implot.BeginPlotV("System Time", imgui.NewVec2(-1, 160), 0) {
			implot.SetupAxesV("Frame", "Time (ms)", 0, implot.AxisFlagsAutoFit)
			for _, name := range ps.systemNames {
				samples := ps.SystemTimes(name)
				implot.PlotLineFloatPtrInt(name, &samples[0], int32(len(samples)))
			}
			implot.EndPlot()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Resource Types") {
		for _, name := range resources.Types() {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures wall-clock time between calls to Delta.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) Delta() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
