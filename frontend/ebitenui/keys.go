// Package ebitenui presents a game in an ebiten window.
package ebitenui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
)

// DefaultKeys binds arrows and WASD plus space, R and Enter.
func DefaultKeys() *input.Bindings[ebiten.Key] {
	return input.NewBindings[ebiten.Key]().
		Bind(ebiten.KeyArrowUp, tetris.Rotate).
		Bind(ebiten.KeyW, tetris.Rotate).
		Bind(ebiten.KeyX, tetris.Rotate).
		Bind(ebiten.KeyArrowLeft, tetris.MoveLeft).
		Bind(ebiten.KeyA, tetris.MoveLeft).
		Bind(ebiten.KeyArrowRight, tetris.MoveRight).
		Bind(ebiten.KeyD, tetris.MoveRight).
		Bind(ebiten.KeyArrowDown, tetris.SoftDrop).
		Bind(ebiten.KeyS, tetris.SoftDrop).
		Bind(ebiten.KeySpace, tetris.HardDrop).
		Bind(ebiten.KeyR, tetris.Reset).
		Bind(ebiten.KeyEnter, tetris.Reset)
}

// KeySource reads the keyboard once per frame.
type KeySource struct {
	bindings *input.Bindings[ebiten.Key]
	pressed  func(ebiten.Key) bool
	held     func(ebiten.Key) bool
	muted    func() bool

	justPressed []ebiten.Key
	down        []ebiten.Key
}

// NewKeySource polls ebiten's keyboard state through bindings.
func NewKeySource(bindings *input.Bindings[ebiten.Key]) *KeySource {
	return &KeySource{
		bindings: bindings,
		pressed:  inpututil.IsKeyJustPressed,
		held:     ebiten.IsKeyPressed,
	}
}

// MuteWhile drops all keyboard input while fn returns true, e.g. when an
// overlay has keyboard focus.
func (s *KeySource) MuteWhile(fn func() bool) {
	s.muted = fn
}

func (s *KeySource) Poll() tetris.Intents {
	if s.muted != nil && s.muted() {
		return 0
	}
	s.justPressed = s.justPressed[:0]
	s.down = s.down[:0]
	for _, k := range s.bindings.Keys() {
		if s.pressed(k) {
			s.justPressed = append(s.justPressed, k)
		}
		if s.held(k) {
			s.down = append(s.down, k)
		}
	}
	return s.bindings.Resolve(s.justPressed, s.down)
}
