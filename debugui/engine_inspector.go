package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

// EngineInspector shows the engine state, the session counters and the
// grid, and plots the score over recent frames.
type EngineInspector struct {
	historyFrames int
	scoreHistory  []float32
	index         int
	showGrid      bool
}

func NewEngineInspector(historyFrames int) *EngineInspector {
	return &EngineInspector{
		historyFrames: historyFrames,
		scoreHistory:  make([]float32, historyFrames),
		showGrid:      true,
	}
}

func (ei *EngineInspector) Record(snap tetris.Snapshot) {
	ei.scoreHistory[ei.index] = float32(snap.Score)
	ei.index = (ei.index + 1) % ei.historyFrames
}

// Scores returns the score ring oldest first.
func (ei *EngineInspector) Scores() []float32 {
	samples := make([]float32, ei.historyFrames)
	copy(samples, ei.scoreHistory[ei.index:])
	copy(samples[ei.historyFrames-ei.index:], ei.scoreHistory[:ei.index])
	return samples
}

func (ei *EngineInspector) Render(g *game.Game) {
	imgui.SetNextWindowPosV(imgui.NewVec2(400, 380), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 420), imgui.CondOnce)
	if !imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := g.Snapshot()
	if snap.GameOver() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), snap.State.String())
	} else {
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), snap.State.String())
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		g.Engine().Reset()
	}

	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Piece: %v colour %d", snap.Piece, snap.Color))
	imgui.Text(fmt.Sprintf("Occupied cells: %d", snap.Occupied()))
	imgui.Text(fmt.Sprintf("Last frame: %+v", g.LastEvents()))

	imgui.Separator()
	session := g.Session()
	imgui.Text(fmt.Sprintf("Games: %d  Best: %d", session.Games, session.BestScore))
	imgui.Text(fmt.Sprintf("Pieces: %d  Rows: %d", session.Pieces, session.Rows))
	imgui.Text(fmt.Sprintf("Play time: %.1fs over %d frames", session.PlayTime, session.Frames))

	scores := ei.Scores()
	if implot.BeginPlotV("Score", imgui.NewVec2(-1, 120), 0) {
		implot.SetupAxesV("Frame", "Score", 0, implot.AxisFlagsAutoFit)
		implot.PlotLineFloatPtrInt("score", &scores[0], int32(len(scores)))
		implot.EndPlot()
	}

	imgui.Checkbox("Show grid", &ei.showGrid)
	if ei.showGrid {
		ei.renderGrid(snap)
	}

	imgui.End()
}

func (ei *EngineInspector) renderGrid(snap tetris.Snapshot) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsSizingFixedFit
	if !imgui.BeginTableV("GridTable", tetris.Cols+1, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}

	grid := snap.Composite()
	for y := range tetris.Lines {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%2d", y))
		for x := range tetris.Cols {
			imgui.TableNextColumn()
			if c := grid[y][x]; c != tetris.Empty {
				imgui.Text(fmt.Sprintf("%d", c))
			} else {
				imgui.Text(".")
			}
		}
	}
	imgui.EndTable()
}
