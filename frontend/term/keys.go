// Package term presents a game in a terminal through tcell.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
)

// Keymap binds special keys and printable runes. Terminals report presses
// only, so every binding, soft drop included, fires once per key event.
type Keymap struct {
	Keys  *input.Bindings[tcell.Key]
	Runes *input.Bindings[rune]
}

// DefaultKeymap binds arrows, WASD, space and r.
func DefaultKeymap() Keymap {
	return Keymap{
		Keys: input.NewBindings[tcell.Key]().
			Bind(tcell.KeyUp, tetris.Rotate).
			Bind(tcell.KeyLeft, tetris.MoveLeft).
			Bind(tcell.KeyRight, tetris.MoveRight).
			Bind(tcell.KeyDown, tetris.SoftDrop).
			Bind(tcell.KeyEnter, tetris.Reset),
		Runes: input.NewBindings[rune]().
			Bind('w', tetris.Rotate).
			Bind('x', tetris.Rotate).
			Bind('a', tetris.MoveLeft).
			Bind('d', tetris.MoveRight).
			Bind('s', tetris.SoftDrop).
			Bind(' ', tetris.HardDrop).
			Bind('r', tetris.Reset),
	}
}

// Lookup resolves one key event.
func (m Keymap) Lookup(ev *tcell.EventKey) tetris.Intents {
	if ev.Key() == tcell.KeyRune {
		in, _ := m.Runes.Lookup(ev.Rune())
		return in
	}
	in, _ := m.Keys.Lookup(ev.Key())
	return in
}

// isQuit reports Escape, Ctrl-C and q.
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
