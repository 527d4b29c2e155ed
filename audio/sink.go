// Package audio synthesises the game's cues and background loop with beep.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sink is where streamers end up. Lock and Unlock guard streamers that are
// already playing.
type Sink interface {
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
}

type speakerSink struct{}

func (speakerSink) Play(s ...beep.Streamer) {
	speaker.Play(s...)
}

func (speakerSink) Lock() {
	speaker.Lock()
}

func (speakerSink) Unlock() {
	speaker.Unlock()
}

// Speaker opens the default output device.
func Speaker() (Sink, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return speakerSink{}, nil
}

// CloseSpeaker releases the output device opened by Speaker.
func CloseSpeaker() {
	speaker.Close()
}
