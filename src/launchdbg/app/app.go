package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/uber-go/tally"
	"github.com/uber/ros-launchdbg/src/launchdbg/controller"
	"github.com/uber/ros-launchdbg/src/launchdbg/entity"
	"github.com/uber/ros-launchdbg/src/launchdbg/gateway"
	"github.com/uber/ros-launchdbg/src/launchdbg/handler/launch"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/clock"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/core"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/executor"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/fs"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/logfilewriter"
	runtimeclassifier "github.com/uber/ros-launchdbg/src/launchdbg/internal/runtime-classifier"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/sessioninfofile"
	"github.com/uber/ros-launchdbg/src/launchdbg/repository/process"
	"go.uber.org/config"
	"go.uber.org/fx"
)

const _bareSpawnOutputName = "launchdbg-nodes"

// Module defines the launchdbg application module. The entity.Invocation to run is supplied by the caller.
var Module = fx.Options(
	gateway.Module, // outbounds
	launch.Module,  // inbounds
	controller.Module,
	process.Module,
	runtimeclassifier.Module,
	fs.Module,
	executor.Module,
	sessioninfofile.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(clock.New),
	fx.Provide(newPlatformProfile),
	fx.Provide(newLaunchConfig),
	fx.Provide(newBaseEnvironment),
	fx.Provide(fx.Annotate(newBareSpawnOutput, fx.ResultTags(`name:"bareSpawnOutput"`))),
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "launchdbg",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateConfigProvider),
)

// newPlatformProfile returns the profile of the running platform with any configured overrides applied.
func newPlatformProfile(cfg config.Provider) (entity.PlatformProfile, error) {
	var overrides entity.PlatformOverrides
	if err := cfg.Get(entity.PlatformConfigKey).Populate(&overrides); err != nil {
		return entity.PlatformProfile{}, fmt.Errorf("loading platform config: %w", err)
	}
	return entity.NewPlatformProfile(runtime.GOOS).WithOverrides(overrides), nil
}

func newLaunchConfig(cfg config.Provider) (entity.LaunchConfig, error) {
	var launchConfig entity.LaunchConfig
	if err := cfg.Get(entity.LaunchConfigKey).Populate(&launchConfig); err != nil {
		return entity.LaunchConfig{}, fmt.Errorf("loading launch config: %w", err)
	}
	if launchConfig.DumperScript == "" {
		return entity.LaunchConfig{}, fmt.Errorf("launch config: dumperScript is required")
	}
	return launchConfig, nil
}

// newBaseEnvironment captures the environment of this process, which every node inherits.
func newBaseEnvironment() entity.Environment {
	return entity.EnvironmentFromList(os.Environ())
}

// newBareSpawnOutput returns the side channel that nodes started without a debugger write to.
func newBareSpawnOutput(lc fx.Lifecycle, launchFS fs.LaunchFS, info sessioninfofile.SessionInfoFile) (io.Writer, error) {
	return logfilewriter.SetupOutputWriter(logfilewriter.Params{
		FS:          launchFS,
		Lifecycle:   lc,
		SessionInfo: info,
	}, _bareSpawnOutputName)
}
