package tetris

// Listener receives notifications from a Game. Calls happen synchronously
// on the goroutine driving the game, in the order listeners were added.
type Listener interface {
	// OnSpawn is called after a new piece entered the grid.
	OnSpawn(p Piece)
	// OnMove is called after the piece moved one column.
	OnMove(dir Direction)
	// OnRotate is called after the piece turned.
	OnRotate(dir Direction)
	// OnInvalidMove is called when a move or rotation was rejected.
	OnInvalidMove()
	// OnDropped is called once the piece has landed and merged.
	OnDropped()
	// OnRowsEliminated is called with the number of rows a landing cleared.
	OnRowsEliminated(rows int)
	// OnGameOver is called once when the round ends.
	OnGameOver()
}

// BaseListener implements Listener with no-ops. Embed it to handle only the
// notifications you care about.
type BaseListener struct{}

func (BaseListener) OnSpawn(Piece) {}
func (BaseListener) OnMove(Direction) {}
func (BaseListener) OnRotate(Direction) {}
func (BaseListener) OnInvalidMove() {}
func (BaseListener) OnDropped() {}
func (BaseListener) OnRowsEliminated(int) {}
func (BaseListener) OnGameOver() {}

var _ Listener = BaseListener{}
