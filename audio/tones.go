package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// note is a pitch in Hz held for a duration. A zero pitch is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

const (
	a4 = 440.00
	b4 = 493.88
	c5 = 523.25
	d5 = 587.33
	e5 = 659.25
	f5 = 698.46
	g5 = 783.99
	a5 = 880.00

	quarter = 300 * time.Millisecond
	eighth  = quarter / 2
)

// theme is the opening of Korobeiniki.
var theme = []note{
	{e5, quarter}, {b4, eighth}, {c5, eighth}, {d5, quarter}, {c5, eighth}, {b4, eighth},
	{a4, quarter}, {a4, eighth}, {c5, eighth}, {e5, quarter}, {d5, eighth}, {c5, eighth},
	{b4, quarter + eighth}, {c5, eighth}, {d5, quarter}, {e5, quarter},
	{c5, quarter}, {a4, quarter}, {a4, quarter}, {0, quarter},
	{d5, quarter + eighth}, {f5, eighth}, {a5, quarter}, {g5, eighth}, {f5, eighth},
	{e5, quarter + eighth}, {c5, eighth}, {e5, quarter}, {d5, eighth}, {c5, eighth},
	{b4, quarter}, {b4, eighth}, {c5, eighth}, {d5, quarter}, {e5, quarter},
	{c5, quarter}, {a4, quarter}, {a4, quarter}, {0, quarter},
}

var lockCue = []note{{196, 40 * time.Millisecond}}

var clearNotes = []float64{c5, e5, g5, 2 * c5}

var gameOverCue = []note{
	{g5 / 2, 180 * time.Millisecond},
	{e5 / 2, 180 * time.Millisecond},
	{c5 / 2, 180 * time.Millisecond},
	{g5 / 4, 400 * time.Millisecond},
}

// tone renders one note at the given volume (beep's base-2 scale).
func tone(n note, volume float64) beep.Streamer {
	samples := sampleRate.N(n.dur)
	if n.freq == 0 {
		return beep.Silence(samples)
	}
	sine, err := generators.SineTone(sampleRate, n.freq)
	if err != nil {
		return beep.Silence(samples)
	}
	return &effects.Volume{
		Streamer: beep.Take(samples, sine),
		Base:     2,
		Volume:   volume,
	}
}

// phrase renders notes back to back.
func phrase(notes []note, volume float64) beep.Streamer {
	streamers := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		streamers[i] = tone(n, volume)
	}
	return beep.Seq(streamers...)
}

// clearArpeggio rises one step per cleared row.
func clearArpeggio(rows int) []note {
	rows = min(max(rows, 1), len(clearNotes))
	notes := make([]note, rows)
	for i := range notes {
		notes[i] = note{clearNotes[i], 70 * time.Millisecond}
	}
	return notes
}

// duration is the total length of notes.
func duration(notes []note) time.Duration {
	var d time.Duration
	for _, n := range notes {
		d += n.dur
	}
	return d
}
