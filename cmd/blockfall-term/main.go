package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/frontend/term"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	seed := flag.Uint64("seed", 0, "Seed for the piece generator. 0 seeds from the clock.")
	mute := flag.Bool("mute", false, "Disable music and sound effects.")
	fps := flag.Int("fps", 60, "Frames per second.")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	frontend := term.New(screen, term.DefaultKeymap())
	opts := game.Options{
		Source:   frontend.Source(),
		Renderer: frontend.Renderer(),
	}
	if *seed != 0 {
		opts.Rand = tetris.NewRand(*seed)
	}

	// the terminal is ours until Fini; hold log output until then
	var audioErr error
	if !*mute {
		sink, err := audio.Speaker()
		if err != nil {
			audioErr = err
		} else {
			player := audio.NewPlayer(sink, audio.DefaultOptions())
			defer player.Close()
			opts.Sounds = player
		}
	}

	g, err := game.New(opts)
	if err != nil {
		screen.Fini()
		log.Fatalf("Failed to create game: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := frontend.Run(ctx, g, *fps)
	screen.Fini()

	if audioErr != nil {
		log.Printf("Audio disabled: %v", audioErr)
	}
	if runErr != nil {
		log.Fatalf("Game exited with error: %v", runErr)
	}

	s := g.Session()
	log.Printf("Played %d game(s), best score %d, %d rows cleared.", s.Games, s.BestScore, s.Rows)
}
