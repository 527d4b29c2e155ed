package input

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/tetris"
)

// Random is a seeded autoplayer for headless runs. It jiggles the piece,
// sometimes drops it, and restarts after a game over.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Poll() tetris.Intents {
	var in tetris.Intents
	switch n := r.rng.IntN(20); {
	case n < 4:
		in |= tetris.MoveLeft
	case n < 8:
		in |= tetris.MoveRight
	case n < 10:
		in |= tetris.Rotate
	case n == 10:
		in |= tetris.HardDrop
	}
	if r.rng.IntN(3) == 0 {
		in |= tetris.SoftDrop
	}
	if r.rng.IntN(30) == 0 {
		in |= tetris.Reset
	}
	return in
}
