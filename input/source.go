// Package input turns device events into per-frame tetris.Intents.
package input

import "github.com/plus3/blockfall/tetris"

// Source is polled once per frame for the intents observed since the last
// poll.
type Source interface {
	Poll() tetris.Intents
}

// SourceFunc adapts a function to Source.
type SourceFunc func() tetris.Intents

func (fn SourceFunc) Poll() tetris.Intents { return fn() }

// None is a Source that never reports anything.
var None Source = SourceFunc(func() tetris.Intents { return 0 })

// Scripted replays a fixed sequence of intents, one entry per poll, and
// reports nothing once exhausted.
type Scripted struct {
	frames []tetris.Intents
	next   int
}

func NewScripted(frames ...tetris.Intents) *Scripted {
	return &Scripted{frames: frames}
}

func (s *Scripted) Poll() tetris.Intents {
	if s.next >= len(s.frames) {
		return 0
	}
	in := s.frames[s.next]
	s.next++
	return in
}

// Remaining returns the number of frames not yet replayed.
func (s *Scripted) Remaining() int {
	return len(s.frames) - s.next
}
