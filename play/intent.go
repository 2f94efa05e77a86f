package play

//go:generate go tool stringer -type=Intent -trimprefix=Intent

// Intent is a player command, independent of the input device.
type Intent uint8

const (
	IntentLeft Intent = iota
	IntentRight
	IntentRotateCW
	IntentRotateCCW
	// IntentSoftDropStart switches gravity to the fast timing until
	// IntentSoftDropStop.
	IntentSoftDropStart
	IntentSoftDropStop
	IntentHardDrop
	IntentTogglePause
	IntentStart
	IntentStop
)

// allowedWhilePaused reports whether the intent applies to a paused session.
func (i Intent) allowedWhilePaused() bool {
	return i == IntentTogglePause || i == IntentStart || i == IntentStop
}
