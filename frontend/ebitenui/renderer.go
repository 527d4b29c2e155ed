package ebitenui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
)

const (
	CellSize = 24
	Margin   = 16
	Sidebar  = 120

	// Row 0 is the spawn row and is not drawn.
	visibleLines = tetris.Lines - 1
)

var (
	background = color.RGBA{24, 24, 32, 255}
	wellColor  = color.RGBA{12, 12, 16, 255}
	wellBorder = color.RGBA{90, 90, 110, 255}
	ghostColor = color.RGBA{255, 255, 255, 40}
)

// Palette holds one colour per tetris.Color; index 0 is unused.
var Palette = [tetris.NumColors + 1]color.RGBA{
	{0, 0, 0, 0},
	{0, 240, 240, 255},
	{240, 0, 0, 255},
	{0, 240, 0, 255},
	{160, 0, 240, 255},
	{240, 160, 0, 255},
	{0, 0, 240, 255},
	{240, 240, 0, 255},
}

// ScreenSize is the logical size of the window contents.
func ScreenSize() (int, int) {
	w := Margin*3 + tetris.Cols*CellSize + Sidebar
	h := Margin*2 + visibleLines*CellSize
	return w, h
}

// cellOrigin maps a grid cell to its top-left pixel.
func cellOrigin(p tetris.Point) (float32, float32) {
	return float32(Margin + p.X*CellSize), float32(Margin + (p.Y-1)*CellSize)
}

// Renderer keeps the most recent snapshot and paints it on Draw. Render
// and Draw are both called from ebiten's game goroutine.
type Renderer struct {
	snap  tetris.Snapshot
	ready bool
	Ghost bool
}

func NewRenderer() *Renderer {
	return &Renderer{Ghost: true}
}

func (r *Renderer) Render(snap tetris.Snapshot) {
	r.snap = snap
	r.ready = true
}

// Snapshot returns the last rendered snapshot and whether there was one.
func (r *Renderer) Snapshot() (tetris.Snapshot, bool) {
	return r.snap, r.ready
}

func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	wx, wy := cellOrigin(tetris.Point{X: 0, Y: 1})
	ww, wh := float32(tetris.Cols*CellSize), float32(visibleLines*CellSize)
	vector.DrawFilledRect(screen, wx, wy, ww, wh, wellColor, false)
	vector.StrokeRect(screen, wx-1, wy-1, ww+2, wh+2, 2, wellBorder, false)

	if !r.ready {
		return
	}

	if r.Ghost && !r.snap.GameOver() {
		for _, c := range r.snap.Landing() {
			r.drawCell(screen, c, ghostColor)
		}
	}

	grid := r.snap.Composite()
	for y := 1; y < tetris.Lines; y++ {
		for x := 0; x < tetris.Cols; x++ {
			if c := grid[y][x]; c != tetris.Empty {
				r.drawCell(screen, tetris.Point{X: x, Y: y}, Palette[c])
			}
		}
	}

	sx := Margin*2 + tetris.Cols*CellSize
	ebitenutil.DebugPrintAt(screen, "SCORE", sx, Margin)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", r.snap.Score), sx, Margin+16)

	if r.snap.GameOver() {
		bx, by := wx, wy+wh/2-24
		vector.DrawFilledRect(screen, bx, by, ww, 48, color.RGBA{0, 0, 0, 200}, false)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", int(bx)+tetris.Cols*CellSize/2-27, int(by)+8)
		ebitenutil.DebugPrintAt(screen, "press R to restart", int(bx)+tetris.Cols*CellSize/2-54, int(by)+26)
	}
}

func (r *Renderer) drawCell(screen *ebiten.Image, p tetris.Point, c color.RGBA) {
	if p.Y < 1 {
		return
	}
	x, y := cellOrigin(p)
	vector.DrawFilledRect(screen, x+1, y+1, CellSize-2, CellSize-2, c, false)
}
