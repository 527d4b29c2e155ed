package term

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/input"
)

// Frontend connects a tcell screen to a game: key events are queued as
// intents and every frame is drawn to the screen.
type Frontend struct {
	screen   tcell.Screen
	keymap   Keymap
	queue    *input.Queue
	renderer *Renderer
}

// New wraps an initialised screen.
func New(screen tcell.Screen, keymap Keymap) *Frontend {
	return &Frontend{
		screen:   screen,
		keymap:   keymap,
		queue:    &input.Queue{},
		renderer: NewRenderer(screen),
	}
}

// Source is the intent queue to pass as game.Options.Source.
func (f *Frontend) Source() input.Source {
	return f.queue
}

// Renderer is the renderer to pass as game.Options.Renderer.
func (f *Frontend) Renderer() *Renderer {
	return f.renderer
}

// handle applies one screen event. It reports false once the user asked
// to quit.
func (f *Frontend) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			f.queue.RequestQuit()
			return false
		}
		f.queue.Push(f.keymap.Lookup(ev))
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

// pump reads screen events until the screen is finalised or the user
// quits.
func (f *Frontend) pump() {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		if !f.handle(ev) {
			return
		}
	}
}

// Run drives g at fps frames per second until the user quits or ctx is
// done. Quitting is not an error.
func (f *Frontend) Run(ctx context.Context, g *game.Game, fps int) error {
	if fps <= 0 {
		return errors.New("term: fps must be positive")
	}
	go f.pump()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	lastTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if f.queue.Quit() {
				return nil
			}
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			g.Frame(dt)
		}
	}
}
