package ebitenui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	debugebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
)

// App implements ebiten.Game around a game.Game. Each Update runs one
// frame with the wall-clock time elapsed since the previous one.
type App struct {
	game     *game.Game
	renderer *Renderer
	overlay  *debugebiten.ImguiBackend

	now  func() time.Time
	last time.Time
}

func NewApp(g *game.Game, r *Renderer) *App {
	return &App{
		game:     g,
		renderer: r,
		now:      time.Now,
	}
}

// WithOverlay draws a Dear ImGui layer over the board. Systems registered
// on the game may issue ImGui calls.
func (a *App) WithOverlay(o *debugebiten.ImguiBackend) *App {
	a.overlay = o
	return a
}

// delta returns the seconds since the previous call. The first frame
// assumes one tick at ebiten's TPS.
func (a *App) delta(now time.Time) float64 {
	dt := 1.0 / float64(ebiten.DefaultTPS)
	if !a.last.IsZero() {
		dt = now.Sub(a.last).Seconds()
	}
	a.last = now
	return dt
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := a.delta(a.now())
	if a.overlay != nil {
		a.overlay.BeginFrame()
	}
	a.game.Frame(dt)
	if a.overlay != nil {
		a.overlay.EndFrame()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen)
	if a.overlay != nil {
		a.overlay.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.overlay != nil {
		a.overlay.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return ScreenSize()
}
