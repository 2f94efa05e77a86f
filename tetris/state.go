package tetris

//go:generate go tool stringer -type=State -trimprefix=State

// State is the phase of a round.
type State uint8

const (
	// StateEmpty means no round is in progress.
	StateEmpty State = iota
	// StateFalling means a piece is active.
	StateFalling
	// StateLanded means a piece merged without clearing rows and the next
	// spawn is pending.
	StateLanded
	// StateLineClear means a piece merged and cleared rows; the next spawn is
	// pending.
	StateLineClear
	// StateGameOver means the round has ended.
	StateGameOver
)
