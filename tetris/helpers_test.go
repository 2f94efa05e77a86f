package tetris_test

import (
	"fmt"
	"testing"

	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/require"
)

// gridFrom builds a grid from one string per row, top first. '.' is empty and
// a digit is the color of an occupied cell.
func gridFrom(hidden int, rows ...string) *tetris.Grid {
	grid := tetris.NewGrid(len(rows[0]), len(rows)-hidden, hidden)
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] != '.' {
				grid.Set(x, y, tetris.Color(row[x]-'0'))
			}
		}
	}
	return grid
}

// fillRow occupies row y of grid except for the listed columns.
func fillRow(grid *tetris.Grid, y int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < grid.Cols(); x++ {
		if !skip[x] {
			grid.Set(x, y, tetris.KindJ.Color())
		}
	}
}

type recorder struct {
	tetris.BaseListener
	events []string
}

func (r *recorder) OnSpawn(p tetris.Piece) {
	r.events = append(r.events, "spawn:"+p.Kind.String())
}

func (r *recorder) OnMove(dir tetris.Direction) {
	r.events = append(r.events, "move:"+dir.String())
}

func (r *recorder) OnRotate(dir tetris.Direction) {
	r.events = append(r.events, "rotate:"+dir.String())
}

func (r *recorder) OnInvalidMove() {
	r.events = append(r.events, "invalid")
}

func (r *recorder) OnDropped() {
	r.events = append(r.events, "dropped")
}

func (r *recorder) OnRowsEliminated(rows int) {
	r.events = append(r.events, fmt.Sprintf("rows:%d", rows))
}

func (r *recorder) OnGameOver() {
	r.events = append(r.events, "gameover")
}

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.events = r.events[:0]
}

// newGame returns a started default-sized game that deals kinds in order,
// along with a recorder subscribed to it.
func newGame(t *testing.T, configure func(*tetris.Config), kinds ...tetris.Kind) (*tetris.Game, *recorder) {
	t.Helper()

	cfg := tetris.DefaultConfig()
	cfg.Randomizer = tetris.NewSequence(kinds...)
	if configure != nil {
		configure(&cfg)
	}

	game, err := tetris.NewGame(cfg)
	require.NoError(t, err)

	rec := &recorder{}
	game.AddListener(rec)
	game.Start()
	return game, rec
}
