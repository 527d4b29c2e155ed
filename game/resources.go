package game

import (
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
)

// Board holds the engine shared by the systems.
type Board struct {
	Engine *tetris.Engine
}

// Collaborators holds the presentation side of the loop.
type Collaborators struct {
	Source   input.Source
	Renderer Renderer
	Sounds   Sounds
}

// FrameIntents is what the input source reported this frame.
type FrameIntents struct {
	Intents tetris.Intents
}

// FrameEvents is what the engine reported this frame.
type FrameEvents struct {
	tetris.Events
}

// Session accumulates counters across games. Nothing is persisted.
type Session struct {
	Frames    uint64
	PlayTime  float64
	Pieces    int
	Rows      int
	Games     int
	BestScore int
}
