package main

import (
	"testing"

	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHardDropTrail(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Randomizer = tetris.NewSequence(tetris.KindO)
	session, err := play.NewSession(cfg, play.DefaultTiming())
	require.NoError(t, err)

	scheduler := loop.NewScheduler(session)
	play.Install(scheduler)

	var e effects
	session.Push(play.IntentStart)
	scheduler.Once(0.01)
	e.update(session, 0.01)
	assert.Nil(t, e.trailTween)

	session.Push(play.IntentHardDrop)
	scheduler.Once(0.01)
	e.update(session, 0.01)

	require.NotNil(t, e.trailTween)
	assert.Equal(t, tetris.KindO, e.trail.Kind)
	assert.Positive(t, e.distance)
	assert.Less(t, e.trailAlpha, float32(0.6))
	assert.Nil(t, e.flash, "nothing was cleared")

	e.update(session, float32(session.Timing.Drop.Seconds()))
	assert.Nil(t, e.trailTween)
}

func TestEffectsHoldWhilePaused(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Randomizer = tetris.NewSequence(tetris.KindO)
	session, err := play.NewSession(cfg, play.DefaultTiming())
	require.NoError(t, err)

	scheduler := loop.NewScheduler(session)
	play.Install(scheduler)

	var e effects
	session.Push(play.IntentStart)
	scheduler.Once(0.01)
	session.Push(play.IntentHardDrop)
	session.Push(play.IntentTogglePause)
	scheduler.Once(0.01)
	require.True(t, session.Paused())

	e.update(session, 1)
	require.NotNil(t, e.trailTween, "the landing is picked up while paused")
	assert.InDelta(t, 0.6, e.trailAlpha, 0.001)

	session.Push(play.IntentTogglePause)
	scheduler.Once(0.01)
	e.update(session, 1)
	assert.Nil(t, e.trailTween)
}

func TestEffectsResetWithSession(t *testing.T) {
	e := effects{seen: 5, rows: []int{3}}
	session, err := play.NewSession(tetris.DefaultConfig(), play.DefaultTiming())
	require.NoError(t, err)

	e.update(session, 0.01)

	assert.Zero(t, e.seen)
	assert.Nil(t, e.rows)
}
