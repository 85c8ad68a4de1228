package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	seed := flag.Uint64("seed", 0, "Seed for pieces and the command policy, 0 for random.")
	width := flag.Int("width", tetris.DefaultWidth, "Board width in cells.")
	height := flag.Int("height", tetris.DefaultHeight, "Board height in cells.")
	maxMoves := flag.Int("moves", 4, "Maximum commands submitted before each tick.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *seed == 0 {
		*seed = rand.Uint64()
	}

	log.Println("Starting tetris stress test...")

	pieces := rand.New(rand.NewPCG(*seed, *seed))
	sess, err := session.New(func() (*tetris.Game, error) {
		return tetris.NewGame(*width, *height, tetris.WithSource(tetris.NewBagSource(pieces.Uint64())))
	}, session.WithQueueSize(*maxMoves+1))
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	defer sess.Stop()

	player := newAutoplayer(*seed, *maxMoves)
	lines := newHistogram()

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		Width:          *width,
		Height:         *height,
		MaxMoves:       *maxMoves,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running autoplay for %s (seed %d)...\n", *duration, *seed)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if st := sess.State(); st.Over {
				report.recordGame(st)
				lines.add(st.Lines)
				if !sess.Apply(session.Restart) {
					break Loop
				}
			}

			updateStart := time.Now()
			if err := player.submit(ctx, sess); err != nil {
				break Loop
			}
			sess.Tick()
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.LinesHistogram = lines.buckets()
	report.Commands = sess.Stats().Commands
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Autoplay finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
