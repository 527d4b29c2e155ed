package tetris

import "fmt"

// ShapeKind selects one of the seven tetrominoes.
type ShapeKind int

const (
	ShapeI ShapeKind = iota
	ShapeZ
	ShapeS
	ShapeT
	ShapeL
	ShapeJ
	ShapeO

	NumShapes = 7
)

// SquaresPerShape is the number of cells in every tetromino.
const SquaresPerShape = 4

// shapeLibrary encodes each tetromino on a 2-wide board: offset n is the
// cell (n%2, n/2).
var shapeLibrary = [NumShapes][SquaresPerShape]int{
	ShapeI: {1, 3, 5, 7},
	ShapeZ: {2, 4, 5, 7},
	ShapeS: {3, 5, 4, 6},
	ShapeT: {3, 5, 4, 7},
	ShapeL: {2, 3, 5, 7},
	ShapeJ: {3, 5, 7, 6},
	ShapeO: {2, 3, 4, 5},
}

var shapeNames = [NumShapes]string{"I", "Z", "S", "T", "L", "J", "O"}

// Valid reports whether k names a shape in the library.
func (k ShapeKind) Valid() bool {
	return k >= 0 && k < NumShapes
}

func (k ShapeKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
	return shapeNames[k]
}

// Offsets returns the library encoding of k.
func (k ShapeKind) Offsets() [SquaresPerShape]int {
	return shapeLibrary[k]
}

// Piece holds the four grid coordinates of a falling tetromino. Index 1 is
// the rotation pivot.
type Piece [SquaresPerShape]Point

// spawnColumn is the column the left half of the 2-wide library board maps to.
const spawnColumn = Cols/2 - 1

// SpawnPiece lays out k at the spawn position.
func SpawnPiece(k ShapeKind) Piece {
	var p Piece
	for i, off := range shapeLibrary[k] {
		p[i] = Point{X: off%2 + spawnColumn, Y: off / 2}
	}
	return p
}

// Translate returns p shifted by (dx, dy).
func (p Piece) Translate(dx, dy int) Piece {
	for i := range p {
		p[i].X += dx
		p[i].Y += dy
	}
	return p
}

// Rotate returns p turned a quarter about p[1]. The pivot is always the
// second cell, so some shapes drift instead of spinning in place.
func (p Piece) Rotate() Piece {
	pivot := p[1]
	for i, c := range p {
		p[i] = Point{
			X: pivot.X - (c.Y - pivot.Y),
			Y: pivot.Y + (c.X - pivot.X),
		}
	}
	return p
}
