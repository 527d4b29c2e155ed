package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The longest the benchmark may run for.")
	seed := flag.Uint64("seed", 1, "Seed for the engine and the autoplayer.")
	games := flag.Int("games", 0, "Stop after this many games have ended. 0 runs for the full duration.")
	step := flag.Duration("dt", time.Second/60, "Simulated time per frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting blockfall benchmark...")

	g, err := game.New(game.Options{
		Rand:   tetris.NewRand(*seed),
		Source: input.NewRandom(tetris.NewRand(*seed + 1)),
	})
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		GameLimit:      *games,
		Step:           *step,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running autoplayer for up to %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	dt := step.Seconds()
	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			g.Frame(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))

			if *games > 0 && finishedGames(g) >= *games {
				break Loop
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Session = g.Session()
	report.Scheduler = g.Scheduler().Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Benchmark finished.")

	fmt.Println("\n\n--- Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// finishedGames counts games that reached game over.
func finishedGames(g *game.Game) int {
	n := g.Session().Games - 1
	if g.Snapshot().GameOver() {
		n++
	}
	return n
}
