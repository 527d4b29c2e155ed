package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

const (
	// Each grid cell is two terminal columns wide.
	cellWidth = 2
	originX   = 1
	originY   = 1
	sidebarX  = originX + tetris.Cols*cellWidth + 3
)

var palette = [tetris.NumColors + 1]tcell.Color{
	tcell.ColorDefault,
	tcell.ColorAqua,
	tcell.ColorRed,
	tcell.ColorGreen,
	tcell.ColorPurple,
	tcell.ColorOrange,
	tcell.ColorBlue,
	tcell.ColorYellow,
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	ghostStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer draws snapshots into a tcell screen. Row 0 is not drawn.
type Renderer struct {
	screen tcell.Screen
	Ghost  bool
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, Ghost: true}
}

// cellPos maps a grid cell to the left terminal column and row.
func cellPos(p tetris.Point) (int, int) {
	return originX + p.X*cellWidth, originY + p.Y - 1
}

func (r *Renderer) Render(snap tetris.Snapshot) {
	r.screen.Clear()
	r.drawWell()

	if r.Ghost && !snap.GameOver() {
		for _, c := range snap.Landing() {
			r.drawCell(c, '[', ']', ghostStyle)
		}
	}

	grid := snap.Composite()
	for y := 1; y < tetris.Lines; y++ {
		for x := 0; x < tetris.Cols; x++ {
			if c := grid[y][x]; c != tetris.Empty {
				r.drawCell(tetris.Point{X: x, Y: y}, ' ', ' ', tcell.StyleDefault.Background(palette[c]))
			}
		}
	}

	r.drawText(sidebarX, originY, "SCORE", textStyle)
	r.drawText(sidebarX, originY+1, fmt.Sprintf("%d", snap.Score), textStyle)
	r.drawText(sidebarX, originY+3, "arrows move", borderStyle)
	r.drawText(sidebarX, originY+4, "space drop", borderStyle)
	r.drawText(sidebarX, originY+5, "q quit", borderStyle)

	if snap.GameOver() {
		mid := originY + tetris.Lines/2 - 1
		r.drawText(originX+tetris.Cols-4, mid, "GAME OVER", bannerStyle)
		r.drawText(originX+tetris.Cols-5, mid+1, "r: restart", textStyle)
	}

	r.screen.Show()
}

func (r *Renderer) drawWell() {
	left := originX - 1
	right := originX + tetris.Cols*cellWidth
	bottom := originY + tetris.Lines - 1
	for y := originY - 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, borderStyle)
		r.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	r.screen.SetContent(left, bottom, '└', nil, borderStyle)
	r.screen.SetContent(right, bottom, '┘', nil, borderStyle)
	for x := originX; x < right; x++ {
		r.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
}

func (r *Renderer) drawCell(p tetris.Point, left, right rune, style tcell.Style) {
	if p.Y < 1 {
		return
	}
	x, y := cellPos(p)
	r.screen.SetContent(x, y, left, nil, style)
	r.screen.SetContent(x+1, y, right, nil, style)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
