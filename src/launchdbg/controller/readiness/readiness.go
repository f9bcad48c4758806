// Package readiness waits, on a best effort basis, for the coordination service to come up.
package readiness

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/uber-go/tally"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/clock"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _timeoutCounter = "coordination.timeout"

// Module provides the Gate.
var Module = fx.Provide(New)

// StatusFunc reports whether the service is ready.
type StatusFunc func(ctx context.Context) bool

// StartFunc asks the service to start. It does not wait for the service to become ready.
type StartFunc func(ctx context.Context)

// Gate polls a service until it is ready or a timeout elapses.
type Gate interface {
	// EnsureReady returns immediately with zero elapsed time when status is already true, without calling start.
	// Otherwise it calls start once and polls status every interval until it is true or timeout has elapsed.
	// A timeout is logged and counted but never returned as an error.
	EnsureReady(ctx context.Context, status StatusFunc, start StartFunc, timeout, interval time.Duration) time.Duration
}

// Params are the dependencies of the Gate.
type Params struct {
	fx.In

	Clock  clock.Clock
	Logger *zap.SugaredLogger
	Stats  tally.Scope
}

type gate struct {
	clock  clock.Clock
	logger *zap.SugaredLogger
	stats  tally.Scope
}

// New creates a Gate.
func New(p Params) Gate {
	return &gate{
		clock:  p.Clock,
		logger: p.Logger.With("component", "readiness"),
		stats:  p.Stats,
	}
}

func (g *gate) EnsureReady(ctx context.Context, status StatusFunc, start StartFunc, timeout, interval time.Duration) time.Duration {
	if status(ctx) {
		return 0
	}

	begin := g.clock.Now()
	start(ctx)

	poll := func() error {
		if ctx.Err() == nil && status(ctx) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		return errors.ErrCoordinationTimeout
	}
	err := backoff.RetryNotifyWithTimer(poll, backoff.WithContext(g.schedule(timeout, interval), ctx), nil, newClockTimer(g.clock))
	elapsed := g.clock.Now().Sub(begin)

	switch {
	case err == nil:
		g.logger.Infow("coordination service ready", "elapsed", elapsed)
	case ctx.Err() != nil:
		g.logger.Infow("stopped waiting for coordination service", "elapsed", elapsed, "reason", ctx.Err())
	default:
		g.logger.Warnw(errors.ErrCoordinationTimeout.Error(), "elapsed", elapsed, "timeout", timeout)
		g.stats.Counter(_timeoutCounter).Inc(1)
	}
	return elapsed
}

// schedule polls at a fixed interval and gives up once the next poll would land past timeout.
func (g *gate) schedule(timeout, interval time.Duration) backoff.BackOff {
	if interval <= 0 {
		interval = timeout
	}
	if timeout <= 0 {
		// MaxElapsedTime of zero never stops.
		timeout = time.Nanosecond
	}

	b := &backoff.ExponentialBackOff{
		InitialInterval:     interval,
		RandomizationFactor: 0,
		Multiplier:          1,
		MaxInterval:         interval,
		MaxElapsedTime:      timeout,
		Stop:                backoff.Stop,
		Clock:               g.clock,
	}
	b.Reset()
	return b
}

// clockTimer fires after sleeping on the gate's clock.
type clockTimer struct {
	clock clock.Clock
	c     chan time.Time
}

func newClockTimer(c clock.Clock) *clockTimer {
	return &clockTimer{clock: c, c: make(chan time.Time, 1)}
}

func (t *clockTimer) Start(d time.Duration) {
	t.clock.Sleep(d)
	t.c <- t.clock.Now()
}

func (t *clockTimer) Stop() {}

func (t *clockTimer) C() <-chan time.Time {
	return t.c
}
