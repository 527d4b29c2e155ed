package tetris

const (
	// Lines is the number of grid rows. Row 0 is the hidden spawn row.
	Lines = 20
	// Cols is the number of grid columns.
	Cols = 10
)

// Color identifies the shape colour occupying a cell. Empty cells hold 0.
type Color uint8

const (
	Empty     Color = 0
	NumColors       = 7
)

// Valid reports whether c is a shape colour in 1..NumColors.
func (c Color) Valid() bool {
	return c >= 1 && c <= NumColors
}

// Point is a grid coordinate. X grows to the right and Y grows downwards.
type Point struct {
	X, Y int
}

// Grid is the playfield, indexed [row][column].
type Grid [Lines][Cols]Color

// Inside reports whether p addresses a cell of the grid.
func (g *Grid) Inside(p Point) bool {
	return p.X >= 0 && p.X < Cols && p.Y >= 0 && p.Y < Lines
}

// At returns the colour at p, or Empty when p is off the grid.
func (g *Grid) At(p Point) Color {
	if !g.Inside(p) {
		return Empty
	}
	return g[p.Y][p.X]
}

// Blocks is the legality predicate for a candidate position: p is blocked
// when any cell leaves the grid, rows above it included, or overlaps a
// filled cell.
func (g *Grid) Blocks(p Piece) bool {
	for _, c := range p {
		if !g.Inside(c) || g[c.Y][c.X] != Empty {
			return true
		}
	}
	return false
}

// Filled returns the number of non-empty cells in row.
func (g *Grid) Filled(row int) int {
	n := 0
	for _, c := range g[row] {
		if c != Empty {
			n++
		}
	}
	return n
}

// Clear empties every cell in place.
func (g *Grid) Clear() {
	for y := range g {
		g.clearRow(y)
	}
}

func (g *Grid) clearRow(y int) {
	for x := range g[y] {
		g[y][x] = Empty
	}
}
