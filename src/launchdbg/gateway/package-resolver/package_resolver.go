// Package packageresolver finds launch files that are given as a package name and a file name.
package packageresolver

import (
	"context"
	iofs "io/fs"
	"os/exec"
	"strings"

	"github.com/uber/ros-launchdbg/src/launchdbg/entity"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/errors"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/executor"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/fs"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the Resolver.
var Module = fx.Provide(New)

// Resolver maps a launch target to a readable launch file.
type Resolver interface {
	// Resolve returns target unchanged when it names an existing, readable file. Otherwise target is a package name and
	// file is looked up within its share directory. Any failure is a TargetUnreadableError.
	Resolve(ctx context.Context, target string, file string) (string, error)
}

// Params are the dependencies of the Resolver.
type Params struct {
	fx.In

	Executor executor.Executor
	FS       fs.LaunchFS
	Logger   *zap.SugaredLogger
	Platform entity.PlatformProfile
	Config   entity.LaunchConfig
}

type resolver struct {
	executor    executor.Executor
	fs          fs.LaunchFS
	logger      *zap.SugaredLogger
	interpreter string
	script      string
}

// New creates a Resolver.
func New(p Params) Resolver {
	return &resolver{
		executor:    p.Executor,
		fs:          p.FS,
		logger:      p.Logger.With("component", "package-resolver"),
		interpreter: p.Config.Interpreter(p.Platform),
		script:      p.Config.ResolverScript,
	}
}

func (r *resolver) Resolve(ctx context.Context, target string, file string) (string, error) {
	if file == "" {
		exists, err := r.fs.FileExists(target)
		if err != nil {
			return "", &errors.TargetUnreadableError{Target: target, Err: err}
		}
		if !exists {
			return "", &errors.TargetUnreadableError{Target: target, Err: iofs.ErrNotExist}
		}
		if err := r.fs.Readable(target); err != nil {
			return "", &errors.TargetUnreadableError{Target: target, Err: err}
		}
		return target, nil
	}

	cmd := exec.CommandContext(ctx, r.interpreter, r.script, target, file)
	stdout, stderr, _, err := r.executor.Run(cmd)
	if err != nil {
		r.logger.Warnw("resolving launch file", "package", target, "file", file, "stderr", strings.TrimSpace(stderr))
		return "", &errors.TargetUnreadableError{Target: target + " " + file, Err: err}
	}

	path := strings.TrimSpace(stdout)
	if path == "" {
		return "", &errors.TargetUnreadableError{Target: target + " " + file, Err: errors.New("resolver printed no path")}
	}
	if err := r.fs.Readable(path); err != nil {
		return "", &errors.TargetUnreadableError{Target: path, Err: err}
	}

	r.logger.Infow("resolved launch file", "package", target, "file", file, "path", path)
	return path, nil
}
