// Package launchdumper expands a launch description into the command lines of its nodes.
package launchdumper

import (
	"context"
	"os/exec"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/uber/ros-launchdbg/src/launchdbg/entity"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/errors"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/executor"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the Dumper.
var Module = fx.Provide(New)

// Output is what the dumper printed.
type Output struct {
	// Stdout holds one command line per node.
	Stdout string
	// Stderr is advisory, it never fails a dump on its own.
	Stderr string
}

// Lines returns the non-blank lines of Stdout, with surrounding whitespace removed.
func (o Output) Lines() []string {
	var lines []string
	for _, line := range strings.Split(o.Stdout, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Dumper runs the external launch dumper.
type Dumper interface {
	// Dump runs the dumper for target with the given launch arguments and environment.
	// It returns DumperFailureError when the dumper could not be started and NoNodesProducedError when it printed nothing.
	Dump(ctx context.Context, target string, args []string, env entity.Environment) (Output, error)
}

// Params are the dependencies of the Dumper.
type Params struct {
	fx.In

	Executor executor.Executor
	Logger   *zap.SugaredLogger
	Platform entity.PlatformProfile
	Config   entity.LaunchConfig
}

type dumper struct {
	executor    executor.Executor
	logger      *zap.SugaredLogger
	platform    entity.PlatformProfile
	interpreter string
	script      string
}

// New creates a Dumper.
func New(p Params) Dumper {
	return &dumper{
		executor:    p.Executor,
		logger:      p.Logger.With("component", "launch-dumper"),
		platform:    p.Platform,
		interpreter: p.Config.Interpreter(p.Platform),
		script:      p.Config.DumperScript,
	}
}

func (d *dumper) Dump(ctx context.Context, target string, args []string, env entity.Environment) (Output, error) {
	cmd := d.command(ctx, target, args)
	cmd.Env = env.List()

	stdout, stderr, exitCode, err := d.executor.Run(cmd)
	// A negative exit code means the process never ran to completion.
	if err != nil && exitCode < 0 {
		return Output{}, &errors.DumperFailureError{Err: err}
	}
	if err != nil {
		d.logger.Warnw("launch dumper exited with an error", "target", target, "exitCode", exitCode, "error", err)
	}

	out := Output{Stdout: stdout, Stderr: stderr}
	if trimmed := strings.TrimSpace(stderr); trimmed != "" {
		d.logger.Warnw("launch dumper reported errors", "target", target, "stderr", trimmed)
	}
	if strings.TrimSpace(stdout) == "" {
		return out, &errors.NoNodesProducedError{Target: target, Stderr: strings.TrimSpace(stderr)}
	}
	return out, nil
}

// command builds the dumper invocation. With a shell the arguments are quoted individually into a single line,
// otherwise they are passed to the interpreter directly.
func (d *dumper) command(ctx context.Context, target string, args []string) *exec.Cmd {
	argv := append([]string{d.script, target}, args...)
	if d.platform.IsWindows() || len(d.platform.Shell) == 0 {
		return exec.CommandContext(ctx, d.interpreter, argv...)
	}

	line := shellquote.Join(append([]string{d.interpreter}, argv...)...)
	shellArgs := append(append([]string{}, d.platform.Shell[1:]...), line)
	return exec.CommandContext(ctx, d.platform.Shell[0], shellArgs...)
}
