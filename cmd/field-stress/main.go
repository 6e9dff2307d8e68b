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

	"github.com/plus3/blockfield/field"
	"github.com/plus3/blockfield/game"
)

// Relative weight of each command in the random input stream.
var commandWeights = map[game.Command]int{
	game.Tick:   6,
	game.Left:   3,
	game.Right:  3,
	game.Rotate: 2,
	game.Drop:   1,
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for piece order and command choice.")
	restart := flag.Bool("restart", true, "Start a new game whenever the current one ends.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting field stress test...")

	opts := game.DefaultOptions()
	opts.Seed = *seed
	session, err := game.New(opts)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	picker := newCommandPicker(*seed, commandWeights)
	// Stands in for a renderer that redraws only the cells that changed.
	observer := field.NewObserver(session.Field())

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		Rows:           opts.Field.Rows,
		Cols:           opts.Field.Cols,
		SpawnBuffer:    opts.Field.SpawnBuffer,
		Restart:        *restart,
		GCPauseMetrics: *gcPauseMetrics,
		Commands:       make(map[game.Command]*Stats),
	}
	for _, cmd := range game.Commands {
		report.Commands[cmd] = &Stats{Name: cmd.String()}
	}
	report.Games = 1

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s (seed %d)...\n", *duration, *seed)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			cmd := picker.next()

			updateStart := time.Now()
			ev := session.Apply(cmd)
			report.Commands[cmd].Add(time.Since(updateStart))
			report.TotalUpdates++
			report.addRedraw(observer.Changes().Len())

			if !ev.GameOver {
				continue
			}
			report.record(session.Stats())
			if !*restart {
				log.Println("Game over, stopping.")
				break Loop
			}
			session.Restart()
			report.Games++
		}
	}
	if !session.Over() {
		report.record(session.Stats())
	}

	report.TotalTime = time.Since(startTime)
	report.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Field Stress Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

type commandPicker struct {
	rng     *rand.Rand
	choices []game.Command
}

func newCommandPicker(seed uint64, weights map[game.Command]int) *commandPicker {
	p := &commandPicker{rng: rand.New(rand.NewPCG(seed, seed>>1))}
	for _, cmd := range game.Commands {
		for range weights[cmd] {
			p.choices = append(p.choices, cmd)
		}
	}
	return p
}

func (p *commandPicker) next() game.Command {
	return p.choices[p.rng.IntN(len(p.choices))]
}
