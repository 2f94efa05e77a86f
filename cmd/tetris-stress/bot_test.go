package main

import (
	"testing"

	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanPrefersFlatBoard(t *testing.T) {
	grid := tetris.NewGrid(10, 20, 2)
	piece := tetris.NewPiece(tetris.KindI, 3, 0)

	best, ok := plan(grid, piece)
	require.True(t, ok)
	assert.Equal(t, 0, best.rotations)
	assert.Equal(t, 0, best.x)
}

func TestPlanCompletesRow(t *testing.T) {
	grid := tetris.NewGrid(10, 20, 2)
	for x := 0; x < 9; x++ {
		grid.Set(x, grid.Rows()-1, tetris.KindJ.Color())
	}
	piece := tetris.NewPiece(tetris.KindI, 3, 0)

	best, ok := plan(grid, piece)
	require.True(t, ok)
	assert.Equal(t, 1, best.rotations)
	assert.Equal(t, 7, best.x, "the vertical bar's column 2 lands in grid column 9")
}

func TestPlanAvoidsTopOut(t *testing.T) {
	grid := tetris.NewGrid(4, 4, 0)
	assert.Equal(t, float64(scoreTopOut), evaluate(grid, tetris.NewPiece(tetris.KindO, 1, 0)))
}

func TestEvaluateCountsHoles(t *testing.T) {
	grid := tetris.NewGrid(4, 6, 0)
	flat := evaluate(grid, tetris.NewPiece(tetris.KindO, 0, 4))

	// The same piece resting on a single block leaves a hole under it.
	grid.Set(1, 5, tetris.KindJ.Color())
	holed := evaluate(grid, tetris.NewPiece(tetris.KindO, 0, 3))

	assert.Greater(t, flat, holed)
}

func TestBotPlays(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Randomizer = tetris.NewBag(1)
	session, err := play.NewSession(cfg, play.Instant())
	require.NoError(t, err)

	bot := &Bot{}
	scheduler := loop.NewScheduler(session)
	scheduler.Register(bot)
	play.Install(scheduler)

	for range 500 {
		scheduler.Once(1.0 / 60)
	}

	assert.Greater(t, session.Stats.Pieces(), 100)
	assert.Positive(t, session.Stats.Lines())
	assert.Len(t, bot.Games, session.Stats.GameOvers())
	for _, g := range bot.Games {
		assert.Positive(t, g.Pieces)
		assert.GreaterOrEqual(t, g.Score, tetris.PointsSingle*g.Lines)
	}
}
