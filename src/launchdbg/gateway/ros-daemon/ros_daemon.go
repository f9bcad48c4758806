// Package rosdaemon talks to the ros2 daemon, the discovery service nodes coordinate through.
package rosdaemon

import (
	"context"
	"os/exec"
	"strings"

	"github.com/uber/ros-launchdbg/src/launchdbg/internal/executor"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_ros2Command   = "ros2"
	_daemonCommand = "daemon"
	_statusVerb    = "status"
	_startVerb     = "start"

	_runningMarker    = "is running"
	_notRunningMarker = "not running"
)

// Module provides the Gateway.
var Module = fx.Provide(New)

// Gateway queries and starts the coordination service.
type Gateway interface {
	// Status reports whether the daemon is running. Any failure to query it counts as not running.
	Status(ctx context.Context) bool
	// Start asks the daemon to start and returns without waiting for it to be ready.
	Start(ctx context.Context)
}

// Params are the dependencies of the Gateway.
type Params struct {
	fx.In

	Executor executor.Executor
	Logger   *zap.SugaredLogger
}

type gateway struct {
	executor executor.Executor
	logger   *zap.SugaredLogger
}

// New creates a Gateway backed by the ros2 command line.
func New(p Params) Gateway {
	return &gateway{
		executor: p.Executor,
		logger:   p.Logger.With("component", "ros-daemon"),
	}
}

func (g *gateway) Status(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, _ros2Command, _daemonCommand, _statusVerb)
	stdout, _, _, err := g.executor.Run(cmd)
	if err != nil {
		g.logger.Debugw("daemon status unavailable", "error", err)
		return false
	}
	return IsRunning(stdout)
}

func (g *gateway) Start(ctx context.Context) {
	cmd := exec.CommandContext(ctx, _ros2Command, _daemonCommand, _startVerb)
	if _, stderr, _, err := g.executor.Run(cmd); err != nil {
		g.logger.Warnw("starting daemon", "error", err, "stderr", strings.TrimSpace(stderr))
	}
}

// IsRunning interprets the output of "ros2 daemon status".
func IsRunning(status string) bool {
	return strings.Contains(status, _runningMarker) && !strings.Contains(status, _notRunningMarker)
}
