package play

import "time"

// Timing holds the driver's animation and gravity durations.
type Timing struct {
	// Fall is how long one row of descent takes at normal speed.
	Fall time.Duration
	// Rest is the pause between two descents at normal speed.
	Rest time.Duration
	// Fast is the duration of one row of descent during a soft drop. There is
	// no rest between fast descents.
	Fast time.Duration
	// Drop is how long the hard drop trail stays visible.
	Drop time.Duration
	// Clear is the pause after a line clear before the next piece spawns.
	Clear time.Duration
}

// DefaultTiming returns the classic pacing: a 0.3s descent followed by a 0.3s
// rest, 0.08s per row while soft dropping, and a 0.91s line clear.
func DefaultTiming() Timing {
	return Timing{
		Fall:  300 * time.Millisecond,
		Rest:  300 * time.Millisecond,
		Fast:  80 * time.Millisecond,
		Drop:  100 * time.Millisecond,
		Clear: 910 * time.Millisecond,
	}
}

// Instant returns timings with no delays. Every frame advances the piece by
// one row; headless drivers and tests use it.
func Instant() Timing {
	return Timing{}
}
