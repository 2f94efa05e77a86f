package play

import (
	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/tetris"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Session is the driver state around one kernel game: queued intents, the
// pause flag, gravity timers and the notification consumers. The systems in
// this package operate on it through a loop.Scheduler.
type Session struct {
	Game   *tetris.Game
	Timing Timing
	Log    *EventLog
	Stats  *Stats

	paused  bool
	fast    bool
	intents []Intent

	descent *gween.Tween
	offset  float32
	rest    float32
	clear   float32
	elapsed float64

	landing *tetris.Landing
	landed  int
}

// NewSession creates a session for a new game. Spawning is always deferred
// so that the line clear pause can run before the next piece appears.
func NewSession(cfg tetris.Config, timing Timing) (*Session, error) {
	cfg.DeferSpawn = true
	game, err := tetris.NewGame(cfg)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Game:   game,
		Timing: timing,
		Log:    NewEventLog(DefaultLogSize),
		Stats:  NewStats(),
	}
	game.AddListener(s.Log)
	game.AddListener(s.Stats)
	return s, nil
}

// Install registers the session systems on a scheduler in the order they
// must run.
func Install(scheduler *loop.Scheduler[Session]) {
	scheduler.Register(&IntentSystem{})
	scheduler.Register(&GravitySystem{})
	scheduler.Register(&SpawnSystem{})
}

// Push queues an intent for the next frame.
func (s *Session) Push(intent Intent) {
	s.intents = append(s.intents, intent)
}

// Pending returns the number of queued intents.
func (s *Session) Pending() int { return len(s.intents) }

// Paused reports whether timers and piece intents are frozen.
func (s *Session) Paused() bool { return s.paused }

// SetPaused pauses or resumes a running round. It has no effect when no
// round is in progress.
func (s *Session) SetPaused(paused bool) {
	if !s.Running() {
		paused = false
	}
	s.paused = paused
}

// Running reports whether a round is in progress, paused or not.
func (s *Session) Running() bool {
	switch s.Game.State() {
	case tetris.StateEmpty, tetris.StateGameOver:
		return false
	default:
		return true
	}
}

// Fast reports whether a soft drop is held.
func (s *Session) Fast() bool { return s.fast }

// Descending reports whether the active piece is animating towards the next
// row.
func (s *Session) Descending() bool { return s.descent != nil }

// Offset returns how far the active piece has travelled towards the next row,
// from 0 to 1.
func (s *Session) Offset() float32 { return s.offset }

// ClearProgress returns how far the line clear pause has advanced, from 0 to
// 1. It is 0 when no line clear is pending.
func (s *Session) ClearProgress() float32 {
	if s.Game.State() != tetris.StateLineClear {
		return 0
	}
	total := seconds(s.Timing.Clear)
	if total <= 0 {
		return 1
	}
	return min(1, 1-s.clear/total)
}

// Elapsed returns the unpaused play time of the round in seconds.
func (s *Session) Elapsed() float64 { return s.elapsed }

// LastLanding returns the most recent landing of the round, or nil.
func (s *Session) LastLanding() *tetris.Landing { return s.landing }

// Landings returns the number of landings this round. Renderers compare it
// between frames to notice a new landing.
func (s *Session) Landings() int { return s.landed }

// Start begins a new round.
func (s *Session) Start() {
	s.resetTimers()
	s.paused = false
	s.landing = nil
	s.landed = 0
	s.elapsed = 0
	s.Game.Start()
}

// Stop ends the round and empties the board.
func (s *Session) Stop() {
	s.resetTimers()
	s.paused = false
	s.landing = nil
	s.landed = 0
	s.Game.Stop()
}

// Resize changes the board's visible dimensions. Like Stop, it ends the
// round. An invalid size leaves the session untouched.
func (s *Session) Resize(cols, rows int) error {
	if err := s.Game.Resize(cols, rows); err != nil {
		return err
	}
	s.resetTimers()
	s.paused = false
	s.fast = false
	s.landing = nil
	s.landed = 0
	return nil
}

func (s *Session) resetTimers() {
	s.descent = nil
	s.offset = 0
	s.rest = 0
	s.clear = 0
}

// land records a landing produced by a descent or a hard drop.
func (s *Session) land(landing *tetris.Landing) {
	if landing == nil {
		return
	}
	s.descent = nil
	s.offset = 0
	s.rest = 0
	s.landing = landing
	s.landed++
	if landing.Cleared() > 0 {
		s.clear = seconds(s.Timing.Clear)
	}
}

// hurryDescent finishes a descent already under way at fast speed, keeping
// the distance it has covered.
func (s *Session) hurryDescent() {
	if s.descent == nil {
		return
	}
	remaining := seconds(s.Timing.Fast) * (1 - s.offset)
	if remaining <= 0 {
		s.descent = nil
		s.offset = 0
		s.Game.CompleteDescent()
		return
	}
	s.descent = gween.New(s.offset, 1, remaining, ease.Linear)
}

// descentDuration is the length of one row of descent at the current speed.
func (s *Session) descentDuration() float32 {
	if s.fast {
		return seconds(s.Timing.Fast)
	}
	return seconds(s.Timing.Fall)
}
