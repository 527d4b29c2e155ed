package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/debugui"
	debugebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/frontend/ebitenui"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	defaults := tetris.DefaultConfig()
	seed := flag.Uint64("seed", 0, "Seed for the piece generator. 0 seeds from the clock.")
	mute := flag.Bool("mute", false, "Disable music and sound effects.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui developer windows.")
	scale := flag.Int("scale", 2, "Window scale factor.")
	baseDelay := flag.Float64("base-delay", defaults.BaseDelay, "Seconds between gravity steps.")
	softDropDelay := flag.Float64("soft-drop-delay", defaults.SoftDropDelay, "Seconds between gravity steps while soft dropping.")
	flag.Parse()

	opts := game.Options{
		Config: tetris.Config{
			BaseDelay:     *baseDelay,
			SoftDropDelay: *softDropDelay,
		},
	}
	if *seed != 0 {
		opts.Rand = tetris.NewRand(*seed)
	}

	keys := ebitenui.NewKeySource(ebitenui.DefaultKeys())
	renderer := ebitenui.NewRenderer()
	opts.Source = keys
	opts.Renderer = renderer

	if !*mute {
		if player := openAudio(); player != nil {
			defer player.Close()
			opts.Sounds = player
		}
	}

	g, err := game.New(opts)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	app := ebitenui.NewApp(g, renderer)
	if *debug {
		backend := debugebiten.NewImguiBackend("blockfall (debug)", 1280, 900)
		state := debugui.Install(g, 120)
		keys.MuteWhile(func() bool { return state.WantCaptureKeyboard })
		app.WithOverlay(backend)
	} else {
		w, h := ebitenui.ScreenSize()
		ebiten.SetWindowSize(w**scale, h**scale)
		ebiten.SetWindowTitle("blockfall")
	}

	if err := ebiten.RunGame(app); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}

	s := g.Session()
	log.Printf("Played %d game(s), best score %d, %d rows cleared.", s.Games, s.BestScore, s.Rows)
}

// openAudio returns nil when no output device is available.
func openAudio() *audio.Player {
	sink, err := audio.Speaker()
	if err != nil {
		log.Printf("Audio disabled: %v", err)
		return nil
	}
	return audio.NewPlayer(sink, audio.DefaultOptions())
}
