package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetris/debugui"
	debugui_ebiten "github.com/plus3/tetris/debugui/ebiten"
	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
)

const title = "Tetris"

func main() {
	cols := flag.Int("cols", tetris.DefaultCols, "Board width in columns.")
	rows := flag.Int("rows", tetris.DefaultRows, "Visible board height in rows.")
	hidden := flag.Int("hidden", tetris.DefaultHiddenRows, "Buffer rows above the visible board.")
	previews := flag.Int("previews", tetris.DefaultPreviews, "Number of queued upcoming pieces.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Randomizer seed.")
	bag := flag.Bool("bag", false, "Deal pieces from shuffled 7-bags instead of uniformly.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui inspector windows.")
	flag.Parse()

	log.SetPrefix("tetris: ")

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

	session, err := play.NewSession(cfg, play.DefaultTiming())
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	scheduler := loop.NewScheduler(session)
	play.Install(scheduler)

	game := NewGame(session, scheduler)

	width, height := screenSize(*cols, *rows)
	if *debug {
		game.UI = debugui.New(scheduler)
		scheduler.Register(game.UI)
		game.Imgui = debugui_ebiten.New(title, width+480, height+240)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("seed %d, %dx%d board", *seed, *cols, *rows)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
