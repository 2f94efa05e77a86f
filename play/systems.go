package play

import (
	"time"

	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/tetris"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}

// IntentSystem applies the intents queued since the previous frame. While
// paused only pause, start and stop are honoured; the rest are dropped.
// Starting and stopping take effect after the other systems have run.
type IntentSystem struct{}

func (IntentSystem) Execute(frame *loop.Frame[Session]) {
	s := frame.State
	intents := s.intents
	s.intents = s.intents[:0]

	for _, intent := range intents {
		if s.paused && !intent.allowedWhilePaused() {
			continue
		}

		switch intent {
		case IntentLeft:
			s.Game.Move(tetris.Left)
		case IntentRight:
			s.Game.Move(tetris.Right)
		case IntentRotateCW:
			s.Game.Rotate(tetris.Right)
		case IntentRotateCCW:
			s.Game.Rotate(tetris.Left)
		case IntentSoftDropStart:
			s.fast = true
			s.rest = 0
			s.hurryDescent()
		case IntentSoftDropStop:
			s.fast = false
		case IntentHardDrop:
			s.land(s.Game.HardDrop())
		case IntentTogglePause:
			s.SetPaused(!s.paused)
		case IntentStart:
			frame.Commands.Defer(s.Start)
		case IntentStop:
			frame.Commands.Defer(s.Stop)
		}
	}
}

// GravitySystem moves the falling piece down. Each descent starts with
// BeginDescent, animates the row offset with a linear tween and ends with
// CompleteDescent, followed by a rest unless a soft drop is held. A descent
// that finds the row below blocked lands the piece.
type GravitySystem struct{}

func (GravitySystem) Execute(frame *loop.Frame[Session]) {
	s := frame.State
	if s.paused || !s.Running() {
		return
	}
	dt := float32(frame.DeltaTime)
	s.elapsed += frame.DeltaTime

	if s.Game.State() != tetris.StateFalling {
		return
	}

	if s.descent != nil {
		offset, done := s.descent.Update(dt)
		s.offset = offset
		if !done {
			return
		}
		s.descent = nil
		s.offset = 0
		s.Game.CompleteDescent()
		if !s.fast {
			s.rest = seconds(s.Timing.Rest)
		}
		return
	}

	if s.fast {
		s.rest = 0
	}
	if s.rest > 0 {
		s.rest -= dt
		if s.rest > 0 {
			return
		}
		s.rest = 0
	}

	ok, landing := s.Game.BeginDescent()
	if landing != nil {
		s.land(landing)
		return
	}
	if !ok {
		return
	}

	duration := s.descentDuration()
	if duration <= 0 {
		s.Game.CompleteDescent()
		return
	}
	s.descent = gween.New(0, 1, duration, ease.Linear)
}

// SpawnSystem brings in the next piece after a landing. A plain landing
// spawns at once; a line clear first waits Timing.Clear.
type SpawnSystem struct{}

func (SpawnSystem) Execute(frame *loop.Frame[Session]) {
	s := frame.State
	if s.paused {
		return
	}

	switch s.Game.State() {
	case tetris.StateLanded:
	case tetris.StateLineClear:
		s.clear -= float32(frame.DeltaTime)
		if s.clear > 0 {
			return
		}
	default:
		return
	}

	s.clear = 0
	s.rest = 0
	s.Game.Spawn()
}
