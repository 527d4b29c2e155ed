package tetris_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *tetris.Engine {
	t.Helper()
	cfg := tetris.DefaultConfig()
	require.NoError(t, cfg.Validate())
	return tetris.New(cfg, tetris.NewRand(42))
}

func pt(x, y int) tetris.Point {
	return tetris.Point{X: x, Y: y}
}

func fullRow(c tetris.Color) [tetris.Cols]tetris.Color {
	var row [tetris.Cols]tetris.Color
	for x := range row {
		row[x] = c
	}
	return row
}

func TestSpawnLayout(t *testing.T) {
	e := newEngine(t)

	e.Spawn(tetris.ShapeO, 5)
	assert.Equal(t, tetris.Piece{pt(4, 1), pt(5, 1), pt(4, 2), pt(5, 2)}, e.Piece())
	assert.Equal(t, tetris.Color(5), e.Color())

	e.Spawn(tetris.ShapeI, 1)
	assert.Equal(t, tetris.Piece{pt(5, 0), pt(5, 1), pt(5, 2), pt(5, 3)}, e.Piece())
}

func TestSpawnPanicsOnInvalidInput(t *testing.T) {
	e := newEngine(t)

	assert.Panics(t, func() { e.Spawn(tetris.ShapeKind(7), 1) })
	assert.Panics(t, func() { e.Spawn(tetris.ShapeKind(-1), 1) })
	assert.Panics(t, func() { e.Spawn(tetris.ShapeT, 0) })
	assert.Panics(t, func() { e.Spawn(tetris.ShapeT, 8) })
}

func TestSpawnRandomStaysInLibrary(t *testing.T) {
	e := newEngine(t)

	for range 200 {
		e.SpawnRandom()
		assert.True(t, e.Color().Valid(), "color %d", e.Color())
		assert.False(t, e.IsBlocked())
	}
}

func TestMoveHorizontalStopsAtWall(t *testing.T) {
	e := newEngine(t)
	e.Spawn(tetris.ShapeO, 5)

	require.True(t, e.MoveHorizontal(-1))
	assert.Equal(t, tetris.Piece{pt(3, 1), pt(4, 1), pt(3, 2), pt(4, 2)}, e.Piece())

	for range 3 {
		require.True(t, e.MoveHorizontal(-1))
	}
	last := e.Piece()
	assert.Equal(t, 0, last[0].X)

	assert.False(t, e.MoveHorizontal(-1))
	assert.Equal(t, last, e.Piece())

	assert.False(t, e.MoveHorizontal(0))
	assert.Equal(t, last, e.Piece())
}

func TestMoveHorizontalBlockedByCells(t *testing.T) {
	e := newEngine(t)
	var g tetris.Grid
	g[1][6] = 2
	e.SetGrid(g)
	e.Spawn(tetris.ShapeO, 5)

	before := e.Piece()
	assert.False(t, e.MoveHorizontal(1))
	assert.Equal(t, before, e.Piece())
	assert.True(t, e.MoveHorizontal(-1))
}

func TestIsBlocked(t *testing.T) {
	var g tetris.Grid
	g[10][3] = 7

	base := tetris.Piece{pt(0, 5), pt(1, 5), pt(2, 5), pt(3, 5)}

	tests := []struct {
		name  string
		piece tetris.Piece
		want  bool
	}{
		{"free", base, false},
		{"left of grid", base.Translate(-1, 0), true},
		{"right of grid", base.Translate(7, 0), true},
		{"right edge", base.Translate(6, 0), false},
		{"below grid", base.Translate(0, 15), true},
		{"bottom row", base.Translate(0, 14), false},
		{"above grid", base.Translate(0, -6), true},
		{"overlap", base.Translate(0, 5), true},
		{"beside filled cell", base.Translate(0, 4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t)
			e.SetGrid(g)
			e.SetPiece(tt.piece, 1)
			assert.Equal(t, tt.want, e.IsBlocked())
		})
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	e := newEngine(t)
	start := tetris.SpawnPiece(tetris.ShapeI).Translate(0, 5)
	e.SetPiece(start, 1)

	for i := range 4 {
		require.True(t, e.Rotate(), "rotation %d", i)
		assert.Equal(t, start[1], e.Piece()[1], "pivot must stay put")
	}
	assert.Equal(t, start, e.Piece())
}

func TestRotateAboutSecondCell(t *testing.T) {
	e := newEngine(t)
	e.Spawn(tetris.ShapeI, 1)

	require.True(t, e.Rotate())
	assert.Equal(t, tetris.Piece{pt(6, 1), pt(5, 1), pt(4, 1), pt(3, 1)}, e.Piece())

	// the second quarter would push a cell above row 0
	before := e.Piece()
	assert.False(t, e.Rotate())
	assert.Equal(t, before, e.Piece())
}

func TestRotateRejectedAtWall(t *testing.T) {
	e := newEngine(t)
	vertical := tetris.Piece{pt(0, 5), pt(0, 6), pt(0, 7), pt(0, 8)}
	e.SetPiece(vertical, 2)

	assert.False(t, e.Rotate())
	assert.Equal(t, vertical, e.Piece())
}

func TestPieceRotateAllShapes(t *testing.T) {
	for k := tetris.ShapeKind(0); k < tetris.NumShapes; k++ {
		t.Run(k.String(), func(t *testing.T) {
			p := tetris.SpawnPiece(k)
			q := p.Rotate().Rotate().Rotate().Rotate()
			assert.Equal(t, p, q)
		})
	}
}

func TestTickFallsAfterDelay(t *testing.T) {
	e := newEngine(t)
	e.Spawn(tetris.ShapeO, 5)
	start := e.Piece()

	assert.False(t, e.Tick(0.2))
	assert.Equal(t, start, e.Piece())

	assert.False(t, e.Tick(0.2))
	assert.Equal(t, start.Translate(0, 1), e.Piece())
	assert.Zero(t, e.Timer())
}

func TestTickDoesNotCatchUp(t *testing.T) {
	e := newEngine(t)
	e.Spawn(tetris.ShapeO, 5)
	start := e.Piece()

	e.Tick(10)
	assert.Equal(t, start.Translate(0, 1), e.Piece())
	assert.Zero(t, e.Timer())
}

func TestTickLocksAtBottom(t *testing.T) {
	e := newEngine(t)
	bottom := tetris.SpawnPiece(tetris.ShapeO).Translate(0, 17)
	e.SetPiece(bottom, 6)

	assert.True(t, e.Tick(1))
	g := e.Grid()
	for _, c := range bottom {
		assert.Equal(t, tetris.Color(6), g[c.Y][c.X])
	}
	assert.NotEqual(t, bottom, e.Piece())
	assert.Equal(t, tetris.Running, e.State())
}

func TestHardDrop(t *testing.T) {
	e := newEngine(t)
	e.Spawn(tetris.ShapeI, 3)

	rows := e.HardDrop()
	assert.Equal(t, 16, rows)

	g := e.Grid()
	for y := 16; y < tetris.Lines; y++ {
		assert.Equal(t, tetris.Color(3), g[y][5], "row %d", y)
	}
	snap := e.Snapshot()
	assert.Equal(t, 4, snap.Occupied())
	assert.False(t, e.IsBlocked())
	assert.Equal(t, tetris.Running, e.State())
}

func TestHardDropOntoStack(t *testing.T) {
	e := newEngine(t)
	var g tetris.Grid
	g[19] = fullRow(1)
	g[19][0] = tetris.Empty
	e.SetGrid(g)
	e.Spawn(tetris.ShapeO, 4)

	assert.Equal(t, 16, e.HardDrop())
	got := e.Grid()
	assert.Equal(t, tetris.Color(4), got[17][4])
	assert.Equal(t, tetris.Color(4), got[18][5])
}

func TestClearSingleFullRow(t *testing.T) {
	e := newEngine(t)
	var g tetris.Grid
	g[19] = fullRow(1)
	for x := range 5 {
		g[18][x] = 2
	}
	g[17][0] = 3
	g[16][9] = 4
	e.SetGrid(g)

	assert.Equal(t, 1, e.ClearFullRows())
	assert.Equal(t, 1, e.Score())

	got := e.Grid()
	assert.Equal(t, g[18], got[19])
	assert.Equal(t, g[17], got[18])
	assert.Equal(t, g[16], got[17])
	assert.Equal(t, [tetris.Cols]tetris.Color{}, got[16])
	assert.Equal(t, tetris.Running, e.State())
}

func TestClearSeparatedFullRows(t *testing.T) {
	e := newEngine(t)
	var g tetris.Grid
	g[19] = fullRow(1)
	g[18][0] = 2
	g[17] = fullRow(5)
	g[16][9] = 4
	e.SetGrid(g)

	assert.Equal(t, 2, e.ClearFullRows())
	assert.Equal(t, 2, e.Score())

	got := e.Grid()
	assert.Equal(t, g[18], got[19])
	assert.Equal(t, g[16], got[18])
	for y := 1; y < 18; y++ {
		assert.Zero(t, got.Filled(y), "row %d", y)
	}
}

func TestClearNothing(t *testing.T) {
	e := newEngine(t)
	var g tetris.Grid
	g[19][3] = 2
	g[15][7] = 6
	e.SetGrid(g)

	assert.Zero(t, e.ClearFullRows())
	assert.Zero(t, e.Score())
	assert.Equal(t, g, e.Grid())
}

func TestClearLeavesRowZero(t *testing.T) {
	e := newEngine(t)
	var g tetris.Grid
	g[0][2] = 7
	g[19] = fullRow(2)
	e.SetGrid(g)

	e.ClearFullRows()
	got := e.Grid()
	assert.Equal(t, tetris.Color(7), got[0][2])
}

func TestTopOutInRowOne(t *testing.T) {
	e := newEngine(t)
	var g tetris.Grid
	g[1][4] = 2
	e.SetGrid(g)

	e.ClearFullRows()
	assert.Equal(t, tetris.GameOver, e.State())

	before := e.Piece()
	assert.False(t, e.MoveHorizontal(1))
	assert.False(t, e.Rotate())
	assert.False(t, e.Tick(5))
	assert.Zero(t, e.HardDrop())
	assert.Equal(t, before, e.Piece())
}

func TestTopOutWhenSpawnBlocked(t *testing.T) {
	e := newEngine(t)
	var g tetris.Grid
	for y := 0; y < 4; y++ {
		g[y][0] = 1
		g[y][4] = 1
		g[y][5] = 1
	}
	e.SetGrid(g)
	e.SetPiece(tetris.Piece{pt(0, 10), pt(1, 10), pt(2, 10), pt(3, 10)}, 2)

	e.HardDrop()
	assert.Equal(t, tetris.GameOver, e.State())
}

func TestResetAfterGameOver(t *testing.T) {
	e := newEngine(t)
	var g tetris.Grid
	g[19] = fullRow(3)
	g[1][0] = 5
	e.SetGrid(g)
	e.ClearFullRows()
	require.Equal(t, tetris.GameOver, e.State())
	require.Equal(t, 1, e.Score())

	e.Reset()

	assert.Equal(t, tetris.Running, e.State())
	assert.Zero(t, e.Score())
	assert.Equal(t, tetris.Grid{}, e.Grid())
	assert.False(t, e.IsBlocked())
	assert.True(t, e.Color().Valid())
}

func TestStepSoftDrop(t *testing.T) {
	e := newEngine(t)
	e.Spawn(tetris.ShapeO, 5)
	start := e.Piece()

	e.Step(0.1, tetris.SoftDrop)
	assert.Equal(t, start.Translate(0, 1), e.Piece())

	e.Step(0.1, 0)
	assert.Equal(t, start.Translate(0, 1), e.Piece(), "delay returns to base after the frame")
}

func TestStepAppliesMoveAndRotate(t *testing.T) {
	e := newEngine(t)
	e.Spawn(tetris.ShapeT, 2)
	e.SetPiece(e.Piece().Translate(0, 4), 2)
	start := e.Piece()

	e.Step(0, tetris.MoveRight)
	assert.Equal(t, start.Translate(1, 0), e.Piece())

	e.Step(0, tetris.MoveLeft|tetris.MoveRight)
	assert.Equal(t, start.Translate(1, 0), e.Piece())

	e.Step(0, tetris.Rotate)
	assert.Equal(t, start.Translate(1, 0).Rotate(), e.Piece())
}

func TestStepHardDropReportsLock(t *testing.T) {
	e := newEngine(t)
	var g tetris.Grid
	g[19] = fullRow(1)
	for x := 4; x < 6; x++ {
		g[19][x] = tetris.Empty
		g[18][x] = tetris.Empty
	}
	for x := range tetris.Cols {
		if x < 4 || x > 5 {
			g[18][x] = 2
		}
	}
	e.SetGrid(g)
	e.Spawn(tetris.ShapeO, 6)

	ev := e.Step(0, tetris.HardDrop)
	assert.Equal(t, 1, ev.Locked)
	assert.Equal(t, 2, ev.RowsCleared)
	assert.False(t, ev.ToppedOut)
	assert.Equal(t, 2, e.Score())
	assert.Equal(t, tetris.Grid{}, e.Grid())
}

func TestStepWhileGameOver(t *testing.T) {
	e := newEngine(t)
	var g tetris.Grid
	g[1][1] = 1
	e.SetGrid(g)

	ev := e.Step(0, 0)
	require.True(t, ev.ToppedOut)

	before := e.Snapshot()
	ev = e.Step(5, tetris.MoveLeft|tetris.Rotate|tetris.HardDrop|tetris.SoftDrop)
	assert.Equal(t, tetris.Events{}, ev)
	assert.Equal(t, before, e.Snapshot())

	ev = e.Step(0, tetris.Reset)
	assert.True(t, ev.Restarted)
	assert.False(t, ev.ToppedOut)
	assert.Equal(t, tetris.Running, e.State())
	assert.Zero(t, e.Score())
}

func TestStepIgnoresResetWhileRunning(t *testing.T) {
	e := newEngine(t)
	var g tetris.Grid
	g[19][0] = 3
	e.SetGrid(g)

	ev := e.Step(0, tetris.Reset)
	assert.False(t, ev.Restarted)
	assert.Equal(t, tetris.Color(3), e.Grid()[19][0])
}

func TestRandomPlayKeepsBoardConsistent(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			rng := tetris.NewRand(seed)
			e := tetris.New(tetris.DefaultConfig(), tetris.NewRand(seed+100))
			score := 0

			for range 3000 {
				in := tetris.Intents(rng.IntN(1 << 6))
				ev := e.Step(rng.Float64()*0.4, in)
				if ev.Restarted {
					score = 0
				}

				snap := e.Snapshot()
				for y := range snap.Grid {
					for x, c := range snap.Grid[y] {
						require.LessOrEqual(t, c, tetris.Color(tetris.NumColors), "cell (%d,%d)", x, y)
					}
				}
				require.GreaterOrEqual(t, snap.Score, score)
				score = snap.Score
				require.True(t, snap.Color.Valid())
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  tetris.Config
		ok   bool
	}{
		{"default", tetris.DefaultConfig(), true},
		{"equal delays", tetris.Config{BaseDelay: 0.1, SoftDropDelay: 0.1}, true},
		{"zero base", tetris.Config{BaseDelay: 0, SoftDropDelay: 0.05}, false},
		{"negative soft", tetris.Config{BaseDelay: 0.3, SoftDropDelay: -1}, false},
		{"soft slower than base", tetris.Config{BaseDelay: 0.1, SoftDropDelay: 0.2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestIntents(t *testing.T) {
	in := tetris.Rotate.With(tetris.MoveLeft)

	assert.True(t, in.Has(tetris.Rotate))
	assert.True(t, in.Has(tetris.Rotate|tetris.MoveLeft))
	assert.False(t, in.Has(tetris.Rotate|tetris.HardDrop))
	assert.Equal(t, -1, in.Horizontal())
	assert.Equal(t, 0, in.With(tetris.MoveRight).Horizontal())
	assert.Equal(t, "rotate|left", in.String())
	assert.Equal(t, "none", tetris.Intents(0).String())
}

func TestSnapshotComposite(t *testing.T) {
	e := newEngine(t)
	e.Spawn(tetris.ShapeO, 5)
	var g tetris.Grid
	g[19][0] = 1
	e.SetGrid(g)

	snap := e.Snapshot()
	comp := snap.Composite()
	assert.Equal(t, tetris.Color(1), comp[19][0])
	for _, c := range snap.Piece {
		assert.Equal(t, tetris.Color(5), comp[c.Y][c.X])
	}
	assert.Equal(t, 1, snap.Occupied())
	assert.Equal(t, tetris.Empty, snap.Grid[1][4], "composite must not alias the snapshot grid")
}

func TestSnapshotLanding(t *testing.T) {
	e := newEngine(t)
	e.Spawn(tetris.ShapeO, 2)
	assert.Equal(t, e.Piece().Translate(0, 17), e.Snapshot().Landing())

	var g tetris.Grid
	g[19] = fullRow(1)
	g[19][0] = tetris.Empty
	e.SetGrid(g)
	snap := e.Snapshot()
	landing := snap.Landing()
	assert.Equal(t, e.Piece().Translate(0, 16), landing)
	assert.False(t, snap.Grid.Blocks(landing))
	assert.True(t, snap.Grid.Blocks(landing.Translate(0, 1)))
}

func TestGridBlocks(t *testing.T) {
	var g tetris.Grid
	g[10][3] = 2
	p := tetris.SpawnPiece(tetris.ShapeO)

	assert.False(t, g.Blocks(p))
	assert.True(t, g.Blocks(p.Translate(0, -2)), "above the grid")
	assert.True(t, g.Blocks(p.Translate(5, 0)), "past the right wall")
	assert.True(t, g.Blocks(p.Translate(-1, 8)), "overlaps (3,10)")
}
