package readiness

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/clock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeClock struct {
	now    time.Time
	sleeps int
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps++
	c.now = c.now.Add(d)
}

func newGate(c clock.Clock) (Gate, tally.TestScope, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	scope := tally.NewTestScope("testing", make(map[string]string, 0))
	return New(Params{Clock: c, Logger: zap.New(core).Sugar(), Stats: scope}), scope, logs
}

func TestEnsureReadyAlreadyRunning(t *testing.T) {
	fc := &fakeClock{now: time.Unix(0, 0)}
	g, scope, _ := newGate(fc)

	started := 0
	elapsed := g.EnsureReady(context.Background(),
		func(context.Context) bool { return true },
		func(context.Context) { started++ },
		time.Second, 100*time.Millisecond)

	assert.Zero(t, elapsed)
	assert.Zero(t, started)
	assert.Zero(t, fc.sleeps)
	assert.Empty(t, scope.Snapshot().Counters())
}

func TestEnsureReadyBecomesReady(t *testing.T) {
	fc := &fakeClock{now: time.Unix(0, 0)}
	g, scope, logs := newGate(fc)

	polls := 0
	started := 0
	elapsed := g.EnsureReady(context.Background(),
		func(context.Context) bool {
			polls++
			return polls > 4
		},
		func(context.Context) { started++ },
		time.Second, 100*time.Millisecond)

	// One poll before start, one right after it, then one per interval.
	assert.Equal(t, 300*time.Millisecond, elapsed)
	assert.Equal(t, 5, polls)
	assert.Equal(t, 1, started)
	assert.Equal(t, 3, fc.sleeps)
	assert.Empty(t, scope.Snapshot().Counters())
	assert.Equal(t, 1, logs.FilterMessage("coordination service ready").Len())
}

func TestEnsureReadyTimeout(t *testing.T) {
	fc := &fakeClock{now: time.Unix(0, 0)}
	g, scope, logs := newGate(fc)

	polls := 0
	started := 0
	elapsed := g.EnsureReady(context.Background(),
		func(context.Context) bool {
			polls++
			return false
		},
		func(context.Context) { started++ },
		300*time.Millisecond, 100*time.Millisecond)

	assert.Equal(t, 300*time.Millisecond, elapsed)
	assert.Equal(t, 1, started)
	assert.Equal(t, 3, fc.sleeps)
	assert.Equal(t, 5, polls)

	counter, ok := scope.Snapshot().Counters()["testing.coordination.timeout+"]
	if assert.True(t, ok) {
		assert.Equal(t, int64(1), counter.Value())
	}
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestEnsureReadyRealClock(t *testing.T) {
	g, _, _ := newGate(clock.New())

	begin := time.Now()
	elapsed := g.EnsureReady(context.Background(),
		func(context.Context) bool { return false },
		func(context.Context) {},
		300*time.Millisecond, 100*time.Millisecond)

	assert.GreaterOrEqual(t, elapsed, 300*time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(begin), 300*time.Millisecond)
}

func TestEnsureReadyCancelled(t *testing.T) {
	fc := &fakeClock{now: time.Unix(0, 0)}
	g, scope, _ := newGate(fc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	polls := 0
	elapsed := g.EnsureReady(ctx,
		func(context.Context) bool {
			polls++
			return false
		},
		func(context.Context) {},
		time.Second, 100*time.Millisecond)

	assert.Zero(t, elapsed)
	assert.Zero(t, fc.sleeps)
	assert.Equal(t, 1, polls)
	assert.Empty(t, scope.Snapshot().Counters())
}

func TestEnsureReadyCancelledWhileWaiting(t *testing.T) {
	fc := &fakeClock{now: time.Unix(0, 0)}
	g, scope, logs := newGate(fc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	polls := 0
	elapsed := g.EnsureReady(ctx,
		func(context.Context) bool {
			polls++
			if polls == 3 {
				cancel()
			}
			return false
		},
		func(context.Context) {},
		time.Second, 100*time.Millisecond)

	assert.Equal(t, 100*time.Millisecond, elapsed)
	assert.Empty(t, scope.Snapshot().Counters())
	assert.Equal(t, 1, logs.FilterMessage("stopped waiting for coordination service").Len())
}

func TestEnsureReadyWithoutTimeout(t *testing.T) {
	fc := &fakeClock{now: time.Unix(0, 0)}
	g, scope, _ := newGate(fc)

	polls := 0
	started := 0
	elapsed := g.EnsureReady(context.Background(),
		func(context.Context) bool {
			polls++
			return false
		},
		func(context.Context) { started++ },
		0, 100*time.Millisecond)

	assert.Zero(t, elapsed)
	assert.Equal(t, 1, started)
	assert.Equal(t, 2, polls)
	assert.Zero(t, fc.sleeps)
	_, ok := scope.Snapshot().Counters()["testing.coordination.timeout+"]
	assert.True(t, ok)
}
