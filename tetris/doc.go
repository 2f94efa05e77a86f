// Package tetris is the grid/piece kernel of a falling-block game: an
// occupancy grid with hidden spawn rows, square shape matrices, intersection
// testing, movement, rotation, merging, row clearing and scoring.
//
// The package is synchronous and has no rendering, input or timing concerns.
// A driver calls the Game operations (Start, Move, Rotate, Descend, HardDrop)
// and observes the round through Listener notifications.
package tetris
