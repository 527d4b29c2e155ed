package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// Options tune a Player. Volumes are on beep's base-2 scale; 0 leaves
// the synthesised level unchanged and -1 halves it.
type Options struct {
	MusicVolume float64
	CueVolume   float64
	NoMusic     bool
}

// DefaultOptions keeps the music under the cues.
func DefaultOptions() Options {
	return Options{
		MusicVolume: -3,
		CueVolume:   -1,
	}
}

// Player mixes the background loop and the gameplay cues into one sink.
type Player struct {
	mu    sync.Mutex
	sink  Sink
	opts  Options
	mixer *beep.Mixer
	music *beep.Ctrl
}

// NewPlayer starts the mixer on sink and, unless disabled, the music loop.
func NewPlayer(sink Sink, opts Options) *Player {
	p := &Player{
		sink:  sink,
		opts:  opts,
		mixer: &beep.Mixer{},
	}
	if !opts.NoMusic {
		p.music = &beep.Ctrl{Streamer: beep.Iterate(p.themeOnce)}
		p.mixer.Add(p.music)
	}
	sink.Play(p.mixer)
	return p
}

func (p *Player) themeOnce() beep.Streamer {
	return phrase(theme, p.opts.MusicVolume)
}

func (p *Player) add(s beep.Streamer) {
	p.sink.Lock()
	p.mixer.Add(s)
	p.sink.Unlock()
}

func (p *Player) setMusicPaused(paused bool) {
	if p.music == nil {
		return
	}
	p.sink.Lock()
	p.music.Paused = paused
	p.sink.Unlock()
}

// Locked plays a short thud.
func (p *Player) Locked() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.add(phrase(lockCue, p.opts.CueVolume))
}

// Cleared plays an arpeggio with one note per row.
func (p *Player) Cleared(rows int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.add(phrase(clearArpeggio(rows), p.opts.CueVolume))
}

// GameOver stops the music and plays a falling phrase.
func (p *Player) GameOver() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setMusicPaused(true)
	p.add(phrase(gameOverCue, p.opts.CueVolume))
}

// Restarted resumes the music.
func (p *Player) Restarted() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setMusicPaused(false)
}

// MusicPlaying reports whether the background loop is audible.
func (p *Player) MusicPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.music == nil {
		return false
	}
	p.sink.Lock()
	defer p.sink.Unlock()
	return !p.music.Paused
}

// Voices returns the number of streamers in the mixer, music included.
func (p *Player) Voices() int {
	p.sink.Lock()
	defer p.sink.Unlock()
	return p.mixer.Len()
}

// Close silences everything.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sink.Lock()
	p.mixer.Clear()
	p.sink.Unlock()
}
