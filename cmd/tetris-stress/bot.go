package main

import (
	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
)

// Placement weights over the board left after a landing.
const (
	weightHeight = -0.51
	weightLines  = 0.76
	weightHoles  = -0.36
	weightBumps  = -0.18
	// landing on the spawn row ends the round
	scoreTopOut = -1e9
)

// placement is a target for the active piece: extra clockwise quarter turns
// from its current orientation and the column to drop it in.
type placement struct {
	rotations int
	x         int
	score     float64
}

// GameResult summarizes one finished round.
type GameResult struct {
	Score  int
	Lines  int
	Pieces int
}

// Bot plays the session by pushing intents: for each new piece it picks the
// best reachable placement and queues rotations, moves and a hard drop. It
// restarts the round on game over. Register it before the play systems so
// its intents apply in the same frame.
type Bot struct {
	planned int
	Games   []GameResult
}

func (b *Bot) Execute(frame *loop.Frame[play.Session]) {
	s := frame.State
	game := s.Game

	switch game.State() {
	case tetris.StateEmpty:
		b.restart(s)
	case tetris.StateGameOver:
		b.Games = append(b.Games, GameResult{
			Score:  game.Score(),
			Lines:  game.Lines(),
			Pieces: game.Spawned(),
		})
		b.restart(s)
	case tetris.StateFalling:
		if game.Spawned() == b.planned {
			return
		}
		b.planned = game.Spawned()

		p, _ := game.Piece()
		if best, ok := plan(game.Grid(), p); ok {
			pushPlacement(s, best, p.X)
		}
		s.Push(play.IntentHardDrop)
	}
}

func (b *Bot) restart(s *play.Session) {
	b.planned = 0
	s.Push(play.IntentStart)
}

func pushPlacement(s *play.Session, target placement, fromX int) {
	switch target.rotations {
	case 1:
		s.Push(play.IntentRotateCW)
	case 2:
		s.Push(play.IntentRotateCW)
		s.Push(play.IntentRotateCW)
	case 3:
		s.Push(play.IntentRotateCCW)
	}

	move := play.IntentRight
	dx := target.x - fromX
	if dx < 0 {
		move = play.IntentLeft
		dx = -dx
	}
	for range dx {
		s.Push(move)
	}
}

// plan scores every orientation and column the piece can drop from its
// current row and returns the best one.
func plan(grid *tetris.Grid, p tetris.Piece) (placement, bool) {
	var best placement
	found := false

	shape := p.Shape
	for r := 0; r < 4; r++ {
		if r > 0 {
			shape = shape.Rotate(tetris.Right)
		}
		for x := -shape.Size(); x <= grid.Cols(); x++ {
			if grid.Intersects(shape, x, p.Y) {
				continue
			}
			y := p.Y
			for !grid.Intersects(shape, x, y+1) {
				y++
			}

			score := evaluate(grid, tetris.Piece{Kind: p.Kind, Shape: shape, X: x, Y: y, Color: p.Color})
			if !found || score > best.score {
				best = placement{rotations: r, x: x, score: score}
				found = true
			}
		}
	}
	return best, found
}

// evaluate scores the board after landing p, higher is better.
func evaluate(grid *tetris.Grid, p tetris.Piece) float64 {
	if p.Y == 0 {
		return scoreTopOut
	}

	scratch := grid.Clone()
	scratch.Merge(p)
	lines := len(scratch.ClearRows(p.Y, p.Bottom()))

	height, holes, bumps := 0, 0, 0
	prev := -1
	for x := 0; x < scratch.Cols(); x++ {
		h := scratch.Height(x)
		height += h
		for y := scratch.Rows() - h; y < scratch.Rows(); y++ {
			if !scratch.Occupied(x, y) {
				holes++
			}
		}
		if prev >= 0 {
			bumps += abs(h - prev)
		}
		prev = h
	}

	return weightHeight*float64(height) +
		weightLines*float64(lines) +
		weightHoles*float64(holes) +
		weightBumps*float64(bumps)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
