package loop

// Frame is what a system sees during one scheduler tick.
type Frame[S any] struct {
	// DeltaTime is the time since the previous tick, in seconds.
	DeltaTime float64
	Commands  *Commands
	State     *S
}
