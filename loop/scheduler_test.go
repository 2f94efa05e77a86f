package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/tetris/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	Ticks   int
	Elapsed float64
	Trace   []string
}

type TickSystem struct {
	ExecuteCount int
}

func (s *TickSystem) Execute(frame *loop.Frame[counter]) {
	s.ExecuteCount++
	frame.State.Ticks++
	frame.State.Elapsed += frame.DeltaTime
	frame.State.Trace = append(frame.State.Trace, "tick")
}

type TraceSystem struct{}

func (TraceSystem) Execute(frame *loop.Frame[counter]) {
	frame.State.Trace = append(frame.State.Trace, "trace")
	frame.Commands.Defer(func() {
		frame.State.Trace = append(frame.State.Trace, "deferred")
	})
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order", func(t *testing.T) {
		state := &counter{}
		scheduler := loop.NewScheduler(state)

		tick := &TickSystem{}
		scheduler.Register(tick)
		scheduler.Register(TraceSystem{})
		scheduler.RegisterFunc("last", func(frame *loop.Frame[counter]) {
			frame.State.Trace = append(frame.State.Trace, "last")
		})

		scheduler.Once(0.5)
		scheduler.Once(0.25)

		assert.Equal(t, 2, tick.ExecuteCount)
		assert.Equal(t, 2, state.Ticks)
		assert.InDelta(t, 0.75, state.Elapsed, 1e-9)
		assert.Equal(t, []string{
			"tick", "trace", "last", "deferred",
			"tick", "trace", "last", "deferred",
		}, state.Trace)
		assert.Same(t, state, scheduler.State())
	})

	t.Run("stats", func(t *testing.T) {
		scheduler := loop.NewScheduler(&counter{})
		scheduler.Register(&TickSystem{})
		scheduler.RegisterFunc("noop", func(*loop.Frame[counter]) {})

		stats := scheduler.GetStats()
		assert.Equal(t, 2, stats.SystemCount)
		assert.Zero(t, stats.Systems[0].MinDuration)

		for range 3 {
			scheduler.Once(0.016)
		}

		stats = scheduler.GetStats()
		assert.Equal(t, int64(3), stats.Frames)
		assert.Equal(t, int64(6), stats.TotalExecutions)
		require.Len(t, stats.Systems, 2)
		assert.Equal(t, "TickSystem", stats.Systems[0].Name)
		assert.Equal(t, "noop", stats.Systems[1].Name)

		for _, sys := range stats.Systems {
			assert.Equal(t, int64(3), sys.ExecutionCount)
			assert.LessOrEqual(t, sys.MinDuration, sys.AvgDuration)
			assert.LessOrEqual(t, sys.AvgDuration, sys.MaxDuration)
			assert.LessOrEqual(t, sys.MaxDuration, sys.TotalDuration)
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		state := &counter{}
		scheduler := loop.NewScheduler(state)
		scheduler.Register(&TickSystem{})

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		assert.Positive(t, state.Ticks)
		assert.Positive(t, state.Elapsed)
	})
}

func TestCommands(t *testing.T) {
	var commands loop.Commands
	var order []int

	commands.Defer(func() { order = append(order, 1) })
	commands.Defer(func() {
		order = append(order, 2)
		commands.Defer(func() { order = append(order, 3) })
	})
	assert.Equal(t, 2, commands.Len())

	commands.Flush()
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Zero(t, commands.Len())

	commands.Flush()
	assert.Equal(t, []int{1, 2, 3}, order)
}
