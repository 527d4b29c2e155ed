package game

import (
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/tetris"
)

// InputSystem polls the input source once per frame.
type InputSystem struct {
	Collaborators frame.Singleton[Collaborators]
	Intents       frame.Singleton[FrameIntents]
}

func (s *InputSystem) Execute(f *frame.UpdateFrame) {
	s.Intents.Get().Intents = s.Collaborators.Get().Source.Poll()
}

// EngineSystem advances the engine by the frame's delta time.
type EngineSystem struct {
	Board   frame.Singleton[Board]
	Intents frame.Singleton[FrameIntents]
	Events  frame.Singleton[FrameEvents]
	Session frame.Singleton[Session]
}

func (s *EngineSystem) Execute(f *frame.UpdateFrame) {
	engine := s.Board.Get().Engine
	ev := engine.Step(f.DeltaTime, s.Intents.Get().Intents)
	s.Events.Get().Events = ev

	session := s.Session.Get()
	session.Frames++
	if ev.Restarted {
		session.Games++
	}
	if engine.State() == tetris.Running {
		session.PlayTime += f.DeltaTime
	}
	session.Pieces += ev.Locked
	session.Rows += ev.RowsCleared
	session.BestScore = max(session.BestScore, engine.Score())
}

// AudioSystem forwards engine events to the sound collaborator.
type AudioSystem struct {
	Collaborators frame.Singleton[Collaborators]
	Events        frame.Singleton[FrameEvents]
}

func (s *AudioSystem) Execute(f *frame.UpdateFrame) {
	sounds := s.Collaborators.Get().Sounds
	ev := s.Events.Get()

	if ev.Restarted {
		sounds.Restarted()
	}
	if ev.Locked > 0 {
		sounds.Locked()
	}
	if ev.RowsCleared > 0 {
		sounds.Cleared(ev.RowsCleared)
	}
	if ev.ToppedOut {
		sounds.GameOver()
	}
}

// RenderSystem hands the settled snapshot to the renderer once every
// system has run.
type RenderSystem struct {
	Board         frame.Singleton[Board]
	Collaborators frame.Singleton[Collaborators]
}

func (s *RenderSystem) Execute(f *frame.UpdateFrame) {
	snap := s.Board.Get().Engine.Snapshot()
	renderer := s.Collaborators.Get().Renderer
	f.Commands.Defer(func() {
		renderer.Render(snap)
	})
}
