package main

import (
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// effects animates what happens around a landing: the cleared rows flash and
// fade, and a hard drop leaves a short trail above the piece.
type effects struct {
	seen int

	rows  []int
	flash *gween.Tween
	glow  float32

	trail      tetris.Piece
	distance   int
	trailTween *gween.Tween
	trailAlpha float32
}

// update starts effects for a landing the session has not shown yet and
// advances the running ones by dt seconds. Running effects hold still while
// the session is paused.
func (e *effects) update(session *play.Session, dt float32) {
	if session.Landings() < e.seen {
		*e = effects{}
	}
	if n := session.Landings(); n != e.seen {
		e.seen = n
		e.start(session.LastLanding(), session.Timing)
	}
	if session.Paused() {
		return
	}

	if e.flash != nil {
		var done bool
		e.glow, done = e.flash.Update(dt)
		if done {
			e.flash = nil
			e.rows = nil
		}
	}
	if e.trailTween != nil {
		var done bool
		e.trailAlpha, done = e.trailTween.Update(dt)
		if done {
			e.trailTween = nil
		}
	}
}

func (e *effects) start(landing *tetris.Landing, timing play.Timing) {
	if landing == nil {
		return
	}

	if landing.Cleared() > 0 && timing.Clear > 0 {
		e.rows = landing.Rows
		e.flash = gween.New(1, 0, float32(timing.Clear.Seconds()), ease.OutBounce)
		e.glow = 1
	}

	if landing.Distance > 0 && timing.Drop > 0 {
		e.trail = landing.Piece
		e.distance = landing.Distance
		e.trailTween = gween.New(0.6, 0, float32(timing.Drop.Seconds()), ease.InQuad)
		e.trailAlpha = 0.6
	}
}
