package tetris

// SetGrid replaces the grid wholesale.
func (e *Engine) SetGrid(g Grid) {
	e.grid = g
}

// SetPiece replaces the active piece without any legality check.
func (e *Engine) SetPiece(p Piece, c Color) {
	e.piece = p
	e.color = c
}

// Timer exposes the fall accumulator.
func (e *Engine) Timer() float64 {
	return e.timer
}
