package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	cols := flag.Int("cols", tetris.DefaultCols, "Board width in columns.")
	rows := flag.Int("rows", tetris.DefaultRows, "Visible board height in rows.")
	hidden := flag.Int("hidden", tetris.DefaultHiddenRows, "Buffer rows above the visible board.")
	previews := flag.Int("previews", tetris.DefaultPreviews, "Number of queued upcoming pieces.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Randomizer seed.")
	bag := flag.Bool("bag", false, "Deal pieces from shuffled 7-bags instead of uniformly.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.SetPrefix("tetris-stress: ")
	log.Println("Starting stress test...")

	// 1. Setup session, bot and scheduler
	cfg := tetris.Config{
		Cols:       *cols,
		Rows:       *rows,
		HiddenRows: *hidden,
		Previews:   *previews,
		Randomizer: tetris.NewRandom(*seed),
	}
	if *bag {
		cfg.Randomizer = tetris.NewBag(*seed)
	}

	session, err := play.NewSession(cfg, play.Instant())
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	bot := &Bot{}
	scheduler := loop.NewScheduler(session)
	scheduler.Register(bot)
	play.Install(scheduler)

	// 2. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Cols:           *cols,
		Rows:           *rows,
		Hidden:         *hidden,
		Previews:       *previews,
		Seed:           *seed,
		Bag:            *bag,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats[time.Duration]{
			Samples: make([]time.Duration, 0),
		},
		LinesPerGame: NewHistogram(),
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Once(deltaTime.Seconds())
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.collect(scheduler, bot)

	log.Printf("Simulation finished: %d games, %d pieces.\n", report.Games, report.Pieces)

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// collect copies the gameplay and scheduler results into the report.
func (r *Report) collect(scheduler *loop.Scheduler[play.Session], bot *Bot) {
	stats := scheduler.State().Stats

	r.Systems = scheduler.GetStats().Systems
	r.Games = len(bot.Games)
	r.Pieces = stats.Pieces()
	r.Lines = stats.Lines()
	for i := range r.Clears {
		r.Clears[i] = stats.Clears(i + 1)
	}

	for _, g := range bot.Games {
		r.Score.Samples = append(r.Score.Samples, g.Score)
		r.LinesPerGame.Add(g.Lines)
	}
	r.Score.Finalize()
}
