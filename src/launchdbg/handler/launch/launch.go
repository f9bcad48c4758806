// Package launch binds a single resolution to the application lifecycle.
package launch

import (
	"context"

	launcher "github.com/uber/ros-launchdbg/src/launchdbg/controller/launcher"
	"github.com/uber/ros-launchdbg/src/launchdbg/entity"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/errors"
	"github.com/uber/ros-launchdbg/src/launchdbg/repository/process"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _exitCodeResolutionFailed = 1

// Module registers the resolution with the application lifecycle.
var Module = fx.Options(
	fx.Invoke(Register),
)

// Params are the dependencies of Register.
type Params struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *zap.SugaredLogger
	Controller launcher.Controller
	Registry   process.Registry
	Invocation entity.Invocation
}

// Register starts the resolution when the application starts. A resolution that fails before any node is started
// shuts the application down with a non-zero exit code. On stop, the resolution is cancelled and every node
// started without a debugger is terminated.
func Register(p Params) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	logger := p.Logger.With("component", "launch")

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				report, err := p.Controller.Resolve(ctx, p.Invocation)
				if err != nil && ctx.Err() != nil {
					logger.Infow("launch cancelled", "target", p.Invocation.Target)
					return
				}
				if err != nil {
					logger.Errorw("launch failed", "target", p.Invocation.Target, "fatal", errors.IsFatalToResolution(err), "error", err)
					if shutdownErr := p.Shutdowner.Shutdown(fx.ExitCode(_exitCodeResolutionFailed)); shutdownErr != nil {
						logger.Warnw("requesting shutdown", "error", shutdownErr)
					}
					return
				}
				logger.Infow("launch running", "resolution", report.ID.String(), "nodes", len(report.Nodes))
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				logger.Warnw("resolution still running at shutdown", "error", stopCtx.Err())
			}
			p.Registry.StopAll()
			return nil
		},
	})
}
