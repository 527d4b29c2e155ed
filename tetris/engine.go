// Package tetris implements the board and shape state machine of a
// falling-block puzzle: the grid, the active piece, collision, locking,
// row compaction, scoring and game over. It performs no I/O; a frame loop
// feeds it intents and wall-clock deltas and reads back Snapshots.
package tetris

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// State is the phase of an Engine.
type State int

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Events reports what happened during one Step.
type Events struct {
	// Locked counts pieces written into the grid.
	Locked int
	// RowsCleared counts full rows removed by the compaction pass.
	RowsCleared int
	// ToppedOut is set on the step that entered GameOver.
	ToppedOut bool
	// Restarted is set when a Reset intent started a new game.
	Restarted bool
}

// Engine owns the grid, the active piece, the score and the fall timer.
// It is not safe for concurrent use.
type Engine struct {
	cfg   Config
	rng   *rand.Rand
	grid  Grid
	piece Piece
	color Color
	score int
	state State
	timer float64
	delay float64
}

// NewRand returns a PCG source seeded with seed, for reproducible games.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// New creates an engine with an empty grid and a random first piece. cfg
// is expected to pass Config.Validate. A nil rng seeds from the clock.
func New(cfg Config, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}
	e := &Engine{
		cfg:   cfg,
		rng:   rng,
		delay: cfg.BaseDelay,
	}
	e.SpawnRandom()
	return e
}

// Spawn replaces the active piece with kind at the spawn position. Overlap
// with the grid is not checked here; the next collision test finds it.
func (e *Engine) Spawn(kind ShapeKind, color Color) {
	if !kind.Valid() {
		panic(fmt.Sprintf("tetris: invalid shape %d", int(kind)))
	}
	if !color.Valid() {
		panic(fmt.Sprintf("tetris: invalid color %d", color))
	}
	e.piece = SpawnPiece(kind)
	e.color = color
}

// SpawnRandom spawns a uniformly chosen shape in a uniformly chosen colour.
func (e *Engine) SpawnRandom() {
	color := Color(e.rng.IntN(NumColors) + 1)
	kind := ShapeKind(e.rng.IntN(NumShapes))
	e.Spawn(kind, color)
}

func (e *Engine) blocked(p Piece) bool {
	return e.grid.Blocks(p)
}

// IsBlocked reports whether the active piece is out of bounds or overlaps
// a filled cell.
func (e *Engine) IsBlocked() bool {
	return e.blocked(e.piece)
}

// tryTransform applies fn to a copy of the active piece and keeps the
// result only if it is legal.
func (e *Engine) tryTransform(fn func(Piece) Piece) bool {
	next := fn(e.piece)
	if e.blocked(next) {
		return false
	}
	e.piece = next
	return true
}

func down(p Piece) Piece {
	return p.Translate(0, 1)
}

// lock writes the active piece into the grid and spawns the next one. A
// replacement that is blocked where it spawns ends the game.
func (e *Engine) lock() {
	for _, c := range e.piece {
		if e.grid.Inside(c) {
			e.grid[c.Y][c.X] = e.color
		}
	}
	e.SpawnRandom()
	if e.IsBlocked() {
		e.state = GameOver
	}
}

// Tick advances the fall timer by dt seconds. Once the timer passes the
// current delay the piece falls one row, or locks if it cannot. At most
// one row is handled per call; the timer restarts either way.
func (e *Engine) Tick(dt float64) (locked bool) {
	if e.state == GameOver {
		return false
	}
	e.timer += dt
	if e.timer <= e.delay {
		return false
	}
	e.timer = 0
	if e.tryTransform(down) {
		return false
	}
	e.lock()
	return true
}

// MoveHorizontal shifts the piece by delta columns if the target is legal.
func (e *Engine) MoveHorizontal(delta int) bool {
	if e.state == GameOver || delta == 0 {
		return false
	}
	return e.tryTransform(func(p Piece) Piece {
		return p.Translate(delta, 0)
	})
}

// Rotate turns the piece a quarter about its second cell if legal.
func (e *Engine) Rotate() bool {
	if e.state == GameOver {
		return false
	}
	return e.tryTransform(Piece.Rotate)
}

// HardDrop drops the piece to its lowest legal row, locks it and spawns
// the next piece. It returns the number of rows fallen.
func (e *Engine) HardDrop() int {
	if e.state == GameOver {
		return 0
	}
	rows := 0
	for e.tryTransform(down) {
		rows++
	}
	e.lock()
	return rows
}

// ClearFullRows compacts the grid bottom-up in a single pass. Every full
// row is overwritten by the rows above it and adds one to the score. Any
// filled cell in row 1 ends the game. Row 0 is never scanned.
func (e *Engine) ClearFullRows() int {
	cleared := 0
	write := Lines - 1
	for row := Lines - 1; row >= 1; row-- {
		filled := e.grid.Filled(row)
		if row == 1 && filled > 0 {
			e.state = GameOver
		}
		if write != row {
			e.grid[write] = e.grid[row]
		}
		if filled < Cols {
			write--
		} else {
			cleared++
			e.score++
		}
	}
	// rows vacated by the shift
	for row := write; row >= 1; row-- {
		e.grid.clearRow(row)
	}
	return cleared
}

// SetSoftDrop selects the soft drop delay while held. Step resets the
// delay at the end of every frame.
func (e *Engine) SetSoftDrop(held bool) {
	if held {
		e.delay = e.cfg.SoftDropDelay
	} else {
		e.delay = e.cfg.BaseDelay
	}
}

// Reset empties the grid, zeroes the score and starts a new game.
func (e *Engine) Reset() {
	e.grid.Clear()
	e.score = 0
	e.state = Running
	e.timer = 0
	e.delay = e.cfg.BaseDelay
	e.SpawnRandom()
}

// Step runs one frame: reset or hard drop, soft drop, horizontal move,
// rotation, fall tick and row clear, in that order. While the game is
// over only Reset is honoured.
func (e *Engine) Step(dt float64, in Intents) Events {
	var ev Events
	if e.state == GameOver {
		if !in.Has(Reset) {
			return ev
		}
		e.Reset()
		ev.Restarted = true
	}

	if in.Has(HardDrop) {
		e.HardDrop()
		ev.Locked++
	}
	e.SetSoftDrop(in.Has(SoftDrop))
	e.MoveHorizontal(in.Horizontal())
	if in.Has(Rotate) {
		e.Rotate()
	}
	if e.Tick(dt) {
		ev.Locked++
	}
	ev.RowsCleared = e.ClearFullRows()
	e.delay = e.cfg.BaseDelay

	ev.ToppedOut = e.state == GameOver
	return ev
}

func (e *Engine) Score() int     { return e.score }
func (e *Engine) State() State   { return e.state }
func (e *Engine) Piece() Piece   { return e.piece }
func (e *Engine) Color() Color   { return e.color }
func (e *Engine) Grid() Grid     { return e.grid }
func (e *Engine) Config() Config { return e.cfg }

// Snapshot copies the state a renderer needs.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Grid:  e.grid,
		Piece: e.piece,
		Color: e.color,
		Score: e.score,
		State: e.state,
	}
}
