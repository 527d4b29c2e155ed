package tetris

import "strings"

// Intents is the set of player requests observed during one frame.
type Intents uint8

const (
	Rotate Intents = 1 << iota
	MoveLeft
	MoveRight
	HardDrop
	// Reset is only honoured while the game is over.
	Reset
	// SoftDrop is a held key; it shortens the fall delay for the frame.
	SoftDrop
)

var intentNames = []struct {
	bit  Intents
	name string
}{
	{Rotate, "rotate"},
	{MoveLeft, "left"},
	{MoveRight, "right"},
	{HardDrop, "hard-drop"},
	{Reset, "reset"},
	{SoftDrop, "soft-drop"},
}

// Has reports whether every bit of want is set.
func (in Intents) Has(want Intents) bool {
	return in&want == want
}

// With returns in plus more.
func (in Intents) With(more Intents) Intents {
	return in | more
}

// Horizontal folds the left and right requests into a delta in {-1, 0, 1}.
func (in Intents) Horizontal() int {
	dx := 0
	if in.Has(MoveLeft) {
		dx--
	}
	if in.Has(MoveRight) {
		dx++
	}
	return dx
}

func (in Intents) String() string {
	if in == 0 {
		return "none"
	}
	var parts []string
	for _, n := range intentNames {
		if in.Has(n.bit) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
