package tetris

// Snapshot is a read-only copy of the engine state for one frame.
type Snapshot struct {
	Grid  Grid
	Piece Piece
	Color Color
	Score int
	State State
}

func (s Snapshot) GameOver() bool {
	return s.State == GameOver
}

// Composite returns the grid with the active piece painted in.
func (s Snapshot) Composite() Grid {
	g := s.Grid
	for _, c := range s.Piece {
		if g.Inside(c) {
			g[c.Y][c.X] = s.Color
		}
	}
	return g
}

// Occupied returns the number of filled grid cells, ignoring the active piece.
func (s Snapshot) Occupied() int {
	n := 0
	for row := range s.Grid {
		n += s.Grid.Filled(row)
	}
	return n
}

// Landing returns where the active piece would come to rest if hard
// dropped now.
func (s Snapshot) Landing() Piece {
	p := s.Piece
	for {
		next := p.Translate(0, 1)
		if s.Grid.Blocks(next) {
			return p
		}
		p = next
	}
}
