// Package game wires a tetris.Engine into a frame.Scheduler together with
// its input, rendering and audio collaborators.
package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
)

// Renderer presents one snapshot per frame.
type Renderer interface {
	Render(snap tetris.Snapshot)
}

// Sounds receives the audible moments of a game.
type Sounds interface {
	Locked()
	Cleared(rows int)
	GameOver()
	Restarted()
}

// Options configure a Game. Zero values select defaults.
type Options struct {
	Config   tetris.Config
	Rand     *rand.Rand
	Source   input.Source
	Renderer Renderer
	Sounds   Sounds
}

// Game owns the engine, the shared frame resources and the scheduler.
type Game struct {
	engine    *tetris.Engine
	resources *frame.Resources
	scheduler *frame.Scheduler
	session   *frame.Singleton[Session]
}

// New validates opts and assembles the frame loop.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == (tetris.Config{}) {
		cfg = tetris.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game config: %w", err)
	}

	collab := Collaborators{
		Source:   opts.Source,
		Renderer: opts.Renderer,
		Sounds:   opts.Sounds,
	}
	if collab.Source == nil {
		collab.Source = input.None
	}
	if collab.Renderer == nil {
		collab.Renderer = nopRenderer{}
	}
	if collab.Sounds == nil {
		collab.Sounds = nopSounds{}
	}

	engine := tetris.New(cfg, opts.Rand)

	resources := frame.NewResources()
	resources.Add(Board{Engine: engine})
	resources.Add(collab)
	resources.Add(FrameIntents{})
	resources.Add(FrameEvents{})
	session := frame.NewSingleton(resources, Session{Games: 1})

	scheduler := frame.NewScheduler(resources)
	scheduler.Register(&InputSystem{})
	scheduler.Register(&EngineSystem{})
	scheduler.Register(&AudioSystem{})
	scheduler.Register(&RenderSystem{})

	return &Game{
		engine:    engine,
		resources: resources,
		scheduler: scheduler,
		session:   session,
	}, nil
}

// Register appends an extra system that runs after the built-in ones.
func (g *Game) Register(system frame.System) {
	g.scheduler.Register(system)
}

// Frame runs one input poll, engine step and render with dt seconds of
// wall-clock time.
func (g *Game) Frame(dt float64) {
	g.scheduler.Once(dt)
}

func (g *Game) Engine() *tetris.Engine {
	return g.engine
}

// Snapshot returns the current engine state.
func (g *Game) Snapshot() tetris.Snapshot {
	return g.engine.Snapshot()
}

// Session returns a copy of the session counters.
func (g *Game) Session() Session {
	return *g.session.Get()
}

func (g *Game) Scheduler() *frame.Scheduler {
	return g.scheduler
}

func (g *Game) Resources() *frame.Resources {
	return g.resources
}

// LastEvents returns what the engine reported during the latest frame.
func (g *Game) LastEvents() tetris.Events {
	var ev *FrameEvents
	g.resources.Read(&ev)
	return ev.Events
}

type nopRenderer struct{}

func (nopRenderer) Render(tetris.Snapshot) {}

type nopSounds struct{}

func (nopSounds) Locked()     {}
func (nopSounds) Cleared(int) {}
func (nopSounds) GameOver()   {}
func (nopSounds) Restarted()  {}
