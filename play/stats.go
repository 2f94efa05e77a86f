package play

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/tetris/tetris"
)

// Stats counts kernel notifications across rounds until Reset.
type Stats struct {
	tetris.BaseListener
	spawns  *intmap.Map[tetris.Kind, int]
	clears  *intmap.Map[int, int]
	moves   int
	rotates int
	invalid int
	drops   int
	lines   int
	games   int
}

// NewStats returns empty counters.
func NewStats() *Stats {
	return &Stats{
		spawns: intmap.New[tetris.Kind, int](tetris.KindCount),
		clears: intmap.New[int, int](4),
	}
}

func (s *Stats) OnSpawn(p tetris.Piece) {
	n, _ := s.spawns.Get(p.Kind)
	s.spawns.Put(p.Kind, n+1)
}

func (s *Stats) OnMove(tetris.Direction) { s.moves++ }

func (s *Stats) OnRotate(tetris.Direction) { s.rotates++ }

func (s *Stats) OnInvalidMove() { s.invalid++ }

func (s *Stats) OnDropped() { s.drops++ }

func (s *Stats) OnRowsEliminated(rows int) {
	n, _ := s.clears.Get(rows)
	s.clears.Put(rows, n+1)
	s.lines += rows
}

func (s *Stats) OnGameOver() { s.games++ }

// Spawns returns how many pieces of kind k spawned.
func (s *Stats) Spawns(k tetris.Kind) int {
	n, _ := s.spawns.Get(k)
	return n
}

// Pieces returns the total number of spawned pieces.
func (s *Stats) Pieces() int {
	total := 0
	for _, k := range tetris.Kinds {
		total += s.Spawns(k)
	}
	return total
}

// Clears returns how many landings cleared exactly rows rows.
func (s *Stats) Clears(rows int) int {
	n, _ := s.clears.Get(rows)
	return n
}

// Moves returns the number of accepted moves.
func (s *Stats) Moves() int { return s.moves }

// Rotations returns the number of accepted rotations.
func (s *Stats) Rotations() int { return s.rotates }

// InvalidMoves returns the number of rejected moves and rotations.
func (s *Stats) InvalidMoves() int { return s.invalid }

// Drops returns the number of landed pieces.
func (s *Stats) Drops() int { return s.drops }

// Lines returns the total number of cleared rows.
func (s *Stats) Lines() int { return s.lines }

// GameOvers returns the number of rounds that ended.
func (s *Stats) GameOvers() int { return s.games }

// Reset zeroes every counter.
func (s *Stats) Reset() {
	s.spawns.Clear()
	s.clears.Clear()
	s.moves, s.rotates, s.invalid, s.drops, s.lines, s.games = 0, 0, 0, 0, 0, 0
}
