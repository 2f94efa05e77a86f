package play_test

import (
	"testing"

	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, timing play.Timing, kinds ...tetris.Kind) (*play.Session, *loop.Scheduler[play.Session]) {
	t.Helper()

	cfg := tetris.DefaultConfig()
	cfg.Randomizer = tetris.NewSequence(kinds...)
	session, err := play.NewSession(cfg, timing)
	require.NoError(t, err)

	scheduler := loop.NewScheduler(session)
	play.Install(scheduler)
	return session, scheduler
}

func started(t *testing.T, timing play.Timing, kinds ...tetris.Kind) (*play.Session, *loop.Scheduler[play.Session]) {
	t.Helper()
	session, scheduler := newSession(t, timing, kinds...)
	session.Push(play.IntentStart)
	scheduler.Once(0)
	require.Equal(t, tetris.StateFalling, session.Game.State())
	return session, scheduler
}

func piece(t *testing.T, session *play.Session) tetris.Piece {
	t.Helper()
	p, ok := session.Game.Piece()
	require.True(t, ok, "no active piece")
	return p
}

func TestNewSessionValidates(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Cols = 2

	_, err := play.NewSession(cfg, play.DefaultTiming())
	assert.ErrorIs(t, err, tetris.ErrInvalidDimensions)
}

func TestStartIntent(t *testing.T) {
	session, scheduler := newSession(t, play.DefaultTiming(), tetris.KindT)
	assert.False(t, session.Running())

	session.Push(play.IntentStart)
	assert.Equal(t, 1, session.Pending())
	scheduler.Once(0)

	assert.Zero(t, session.Pending())
	assert.True(t, session.Running())
	assert.Equal(t, 1, session.Stats.Spawns(tetris.KindT))
}

func TestMoveAndRotateIntents(t *testing.T) {
	session, scheduler := started(t, play.DefaultTiming(), tetris.KindT)

	session.Push(play.IntentLeft)
	session.Push(play.IntentLeft)
	session.Push(play.IntentRight)
	session.Push(play.IntentRotateCW)
	scheduler.Once(0)

	p := piece(t, session)
	assert.Equal(t, 2, p.X)
	assert.Equal(t, 1, p.Rotation)

	session.Push(play.IntentRotateCCW)
	session.Push(play.IntentRotateCCW)
	scheduler.Once(0)
	assert.Equal(t, 3, piece(t, session).Rotation)
	assert.Equal(t, 3, session.Stats.Moves())
	assert.Equal(t, 3, session.Stats.Rotations())
}

func TestGravity(t *testing.T) {
	session, scheduler := started(t, play.DefaultTiming(), tetris.KindO)

	scheduler.Once(0)
	assert.True(t, session.Descending())
	assert.True(t, session.Game.Moving())
	assert.Equal(t, 0, piece(t, session).Y)

	scheduler.Once(0.2)
	assert.InDelta(t, 2.0/3, session.Offset(), 0.01)
	assert.Equal(t, 0, piece(t, session).Y)

	scheduler.Once(0.2)
	assert.False(t, session.Descending())
	assert.Zero(t, session.Offset())
	assert.Equal(t, 1, piece(t, session).Y)

	// Resting before the next descent.
	scheduler.Once(0.2)
	assert.False(t, session.Descending())
	scheduler.Once(0.2)
	assert.True(t, session.Descending())
}

func TestGravityLandsPiece(t *testing.T) {
	session, scheduler := started(t, play.Instant(), tetris.KindO)

	for range 20 {
		scheduler.Once(0.016)
	}
	require.Equal(t, 20, piece(t, session).Y)
	require.Nil(t, session.LastLanding())

	scheduler.Once(0.016)

	landing := session.LastLanding()
	require.NotNil(t, landing)
	assert.Equal(t, 20, landing.Piece.Y)
	assert.Equal(t, 1, session.Landings())
	assert.Equal(t, tetris.StateFalling, session.Game.State(), "a plain landing spawns in the same frame")
	assert.Equal(t, 2, session.Stats.Pieces())
}

func TestSoftDrop(t *testing.T) {
	session, scheduler := started(t, play.DefaultTiming(), tetris.KindO)

	session.Push(play.IntentSoftDropStart)
	for range 10 {
		scheduler.Once(0.1)
	}
	assert.True(t, session.Fast())
	assert.Equal(t, 5, piece(t, session).Y)

	session.Push(play.IntentSoftDropStop)
	scheduler.Once(0)
	assert.False(t, session.Fast())
}

func TestSoftDropDuringDescent(t *testing.T) {
	t.Run("finishes the row at fast speed", func(t *testing.T) {
		session, scheduler := started(t, play.DefaultTiming(), tetris.KindO)
		scheduler.Once(0.01)
		require.True(t, session.Descending())

		session.Push(play.IntentSoftDropStart)
		scheduler.Once(0.1)

		assert.Equal(t, 1, piece(t, session).Y)
		assert.False(t, session.Descending())
	})

	t.Run("keeps the distance covered", func(t *testing.T) {
		session, scheduler := started(t, play.DefaultTiming(), tetris.KindO)
		scheduler.Once(0.01)
		scheduler.Once(0.15)
		require.InDelta(t, 0.5, session.Offset(), 0.001)

		session.Push(play.IntentSoftDropStart)
		scheduler.Once(0.03)
		assert.InDelta(t, 0.875, session.Offset(), 0.001)
		assert.Equal(t, 0, piece(t, session).Y)

		scheduler.Once(0.02)
		assert.Equal(t, 1, piece(t, session).Y)
	})

	t.Run("instant fast timing completes the row", func(t *testing.T) {
		timing := play.DefaultTiming()
		timing.Fast = 0
		session, scheduler := started(t, timing, tetris.KindO)
		scheduler.Once(0.01)
		require.True(t, session.Descending())

		session.Push(play.IntentSoftDropStart)
		scheduler.Once(0)

		assert.GreaterOrEqual(t, piece(t, session).Y, 1)
	})
}

func TestHardDropWithLineClear(t *testing.T) {
	session, scheduler := started(t, play.DefaultTiming(), tetris.KindI)
	grid := session.Game.Grid()
	for x := 0; x < grid.Cols(); x++ {
		if x != 5 {
			grid.Set(x, grid.Rows()-1, tetris.KindL.Color())
		}
	}

	session.Push(play.IntentRotateCW)
	session.Push(play.IntentHardDrop)
	scheduler.Once(0)

	require.NotNil(t, session.LastLanding())
	assert.Equal(t, 1, session.LastLanding().Cleared())
	assert.Equal(t, tetris.StateLineClear, session.Game.State())
	assert.False(t, session.Descending())
	assert.Zero(t, session.ClearProgress())

	scheduler.Once(0.5)
	assert.Equal(t, tetris.StateLineClear, session.Game.State())
	assert.InDelta(t, 0.5/0.91, session.ClearProgress(), 0.01)

	scheduler.Once(0.5)
	assert.Equal(t, tetris.StateFalling, session.Game.State())
	assert.Zero(t, session.ClearProgress())

	assert.Equal(t, 40, session.Game.Score())
	assert.Equal(t, 1, session.Stats.Clears(1))
	assert.Equal(t, 1, session.Stats.Lines())
}

func TestPause(t *testing.T) {
	session, scheduler := started(t, play.DefaultTiming(), tetris.KindT)

	session.Push(play.IntentTogglePause)
	scheduler.Once(0)
	require.True(t, session.Paused())
	elapsed := session.Elapsed()

	session.Push(play.IntentLeft)
	session.Push(play.IntentHardDrop)
	for range 10 {
		scheduler.Once(1)
	}

	p := piece(t, session)
	assert.Equal(t, 3, p.X)
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, elapsed, session.Elapsed())
	assert.Zero(t, session.Pending())

	session.Push(play.IntentTogglePause)
	session.Push(play.IntentLeft)
	scheduler.Once(0)
	assert.False(t, session.Paused())
	assert.Equal(t, 2, piece(t, session).X)
}

func TestSetPausedNeedsARound(t *testing.T) {
	session, _ := newSession(t, play.DefaultTiming(), tetris.KindT)

	session.SetPaused(true)
	assert.False(t, session.Paused())
}

func TestStopIntent(t *testing.T) {
	session, scheduler := started(t, play.DefaultTiming(), tetris.KindT)
	session.Push(play.IntentTogglePause)
	scheduler.Once(0)

	session.Push(play.IntentStop)
	scheduler.Once(0)

	assert.False(t, session.Running())
	assert.False(t, session.Paused())
	assert.Equal(t, tetris.StateEmpty, session.Game.State())
}

func TestPlaysUntilGameOver(t *testing.T) {
	session, scheduler := started(t, play.Instant(), tetris.KindO)

	for range 1000 {
		if !session.Running() {
			break
		}
		scheduler.Once(0.016)
	}

	assert.Equal(t, tetris.StateGameOver, session.Game.State())
	assert.Equal(t, 1, session.Stats.GameOvers())
	// The last piece could not leave the spawn row, so it landed without
	// being dropped into the grid.
	assert.Equal(t, session.Stats.Drops()+1, session.Landings())
	assert.Equal(t, "game over", session.Log.Entries()[session.Log.Len()-1].Text)

	// Start again from game over.
	session.Push(play.IntentStart)
	scheduler.Once(0)
	assert.True(t, session.Running())
	assert.Zero(t, session.Landings())
}

func TestResize(t *testing.T) {
	session, scheduler := started(t, play.DefaultTiming(), tetris.KindO)
	session.Push(play.IntentHardDrop)
	scheduler.Once(0)
	scheduler.Once(0.01)
	require.Equal(t, 1, session.Landings())
	require.True(t, session.Descending())

	t.Run("rejects invalid sizes", func(t *testing.T) {
		err := session.Resize(2, 20)
		assert.ErrorIs(t, err, tetris.ErrInvalidDimensions)
		assert.Equal(t, 1, session.Landings())
		assert.True(t, session.Running())
	})

	t.Run("ends the round", func(t *testing.T) {
		require.NoError(t, session.Resize(12, 16))

		assert.False(t, session.Running())
		assert.False(t, session.Descending())
		assert.Zero(t, session.Offset())
		assert.Nil(t, session.LastLanding())
		assert.Zero(t, session.Landings())
		assert.Equal(t, 12, session.Game.Grid().Cols())
		assert.Equal(t, 16, session.Game.Grid().VisibleRows())
	})

	t.Run("starts on the new board", func(t *testing.T) {
		session.Push(play.IntentStart)
		scheduler.Once(0)

		assert.Equal(t, 5, piece(t, session).X)
	})
}
