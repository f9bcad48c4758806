// Package launcher resolves a launch description into debug sessions and freely running nodes.
package launcher

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	nodepolicy "github.com/uber/ros-launchdbg/src/launchdbg/controller/node-policy"
	"github.com/uber/ros-launchdbg/src/launchdbg/controller/readiness"
	"github.com/uber/ros-launchdbg/src/launchdbg/entity"
	debughost "github.com/uber/ros-launchdbg/src/launchdbg/gateway/debug-host"
	launchdumper "github.com/uber/ros-launchdbg/src/launchdbg/gateway/launch-dumper"
	packageresolver "github.com/uber/ros-launchdbg/src/launchdbg/gateway/package-resolver"
	rosdaemon "github.com/uber/ros-launchdbg/src/launchdbg/gateway/ros-daemon"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/cmdline"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/errors"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/executor"
	runtimeclassifier "github.com/uber/ros-launchdbg/src/launchdbg/internal/runtime-classifier"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/sessioninfofile"
	"github.com/uber/ros-launchdbg/src/launchdbg/mapper"
	"github.com/uber/ros-launchdbg/src/launchdbg/repository/process"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// Session info keys
	_sessionKeyResolution = "resolution"
	_sessionKeyTarget     = "target"

	// Metric names
	_metricResolutions       = "resolutions"
	_metricResolutionsFailed = "resolutions.failed"
	_metricNodesDebugged     = "nodes.debugged"
	_metricNodesSpawned      = "nodes.spawned"
	_metricNodesFailed       = "nodes.failed"
)

// Module provides the Controller.
var Module = fx.Provide(New)

// Controller runs resolutions.
type Controller interface {
	// Resolve resolves the invocation's target, dumps its command lines and starts every node.
	// Failures before any node is started are returned as errors. Failures of individual nodes are recorded in the
	// returned Report and never stop the other nodes.
	Resolve(ctx context.Context, inv entity.Invocation) (*entity.Report, error)
}

// Params are the dependencies of the Controller.
type Params struct {
	fx.In

	Logger      *zap.SugaredLogger
	Stats       tally.Scope
	Config      entity.LaunchConfig
	Platform    entity.PlatformProfile
	BaseEnv     entity.Environment
	Executor    executor.Executor
	Resolver    packageresolver.Resolver
	Dumper      launchdumper.Dumper
	Daemon      rosdaemon.Gateway
	Gate        readiness.Gate
	Policy      nodepolicy.Policy
	Classifier  runtimeclassifier.Classifier
	DebugHost   debughost.Gateway
	Registry    process.Registry
	SessionInfo sessioninfofile.SessionInfoFile
	// Output receives the stdout and stderr of nodes started without a debugger.
	Output io.Writer `name:"bareSpawnOutput"`
}

type controller struct {
	logger      *zap.SugaredLogger
	stats       tally.Scope
	config      entity.LaunchConfig
	platform    entity.PlatformProfile
	baseEnv     entity.Environment
	executor    executor.Executor
	resolver    packageresolver.Resolver
	dumper      launchdumper.Dumper
	daemon      rosdaemon.Gateway
	gate        readiness.Gate
	policy      nodepolicy.Policy
	classifier  runtimeclassifier.Classifier
	debugHost   debughost.Gateway
	registry    process.Registry
	sessionInfo sessioninfofile.SessionInfoFile
	output      io.Writer
}

// New creates a Controller.
func New(p Params) Controller {
	return &controller{
		logger:      p.Logger.With("component", "launcher"),
		stats:       p.Stats,
		config:      p.Config,
		platform:    p.Platform,
		baseEnv:     p.BaseEnv,
		executor:    p.Executor,
		resolver:    p.Resolver,
		dumper:      p.Dumper,
		daemon:      p.Daemon,
		gate:        p.Gate,
		policy:      p.Policy,
		classifier:  p.Classifier,
		debugHost:   p.DebugHost,
		registry:    p.Registry,
		sessionInfo: p.SessionInfo,
		output:      p.Output,
	}
}

func (c *controller) Resolve(ctx context.Context, inv entity.Invocation) (*entity.Report, error) {
	c.stats.Counter(_metricResolutions).Inc(1)

	report, err := c.resolve(ctx, inv)
	if err != nil {
		c.stats.Counter(_metricResolutionsFailed).Inc(1)
		c.logger.Errorw("resolution failed", "target", inv.Target, "file", inv.TargetFile, "error", err)
		return nil, err
	}

	debugged, spawned, failed := report.Count(entity.OutcomeDebugging), report.Count(entity.OutcomeSpawned), report.Count(entity.OutcomeFailed)
	c.stats.Counter(_metricNodesDebugged).Inc(int64(debugged))
	c.stats.Counter(_metricNodesSpawned).Inc(int64(spawned))
	c.stats.Counter(_metricNodesFailed).Inc(int64(failed))

	logFields := []interface{}{
		"resolution", report.ID.String(),
		"description", report.Description.Path,
		"debugging", debugged,
		"spawned", spawned,
		"failed", failed,
	}
	if nodeErr := report.Err(); nodeErr != nil {
		c.logger.Warnw("resolution finished with node failures", append(logFields, "error", nodeErr)...)
	} else {
		c.logger.Infow("resolution finished", logFields...)
	}
	return report, nil
}

func (c *controller) resolve(ctx context.Context, inv entity.Invocation) (*entity.Report, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("generating resolution id: %w", err)
	}

	description, err := c.describe(ctx, inv)
	if err != nil {
		return nil, err
	}
	c.updateSessionInfo(_sessionKeyResolution, id.String())
	c.updateSessionInfo(_sessionKeyTarget, description.Path)

	c.gate.EnsureReady(ctx, c.daemon.Status, c.daemon.Start, c.config.CoordinationTimeout(), c.config.CoordinationInterval())

	env := c.baseEnv.Merge(inv.Policy.Env)
	out, err := c.dumper.Dump(ctx, description.Path, inv.Args, env)
	if err != nil {
		return nil, err
	}

	lines := out.Lines()
	results := make([]entity.NodeResult, len(lines))

	g := errgroup.Group{}
	g.SetLimit(c.parallelism())
	for i, line := range lines {
		g.Go(func() error {
			results[i] = c.handleLine(ctx, line, inv, env)
			return nil
		})
	}
	// Node tasks record their failures in results and never return an error.
	_ = g.Wait()

	return &entity.Report{
		ID:          id,
		Description: description,
		Nodes:       results,
	}, nil
}

// describe resolves and validates the launch description.
func (c *controller) describe(ctx context.Context, inv entity.Invocation) (entity.LaunchDescription, error) {
	path, err := c.resolver.Resolve(ctx, inv.Target, inv.TargetFile)
	if err != nil {
		return entity.LaunchDescription{}, err
	}

	kind, ok := entity.DescriptionKindForPath(path)
	if !ok {
		return entity.LaunchDescription{}, &errors.UnsupportedExtensionError{Path: path, Extension: entity.Extension(path)}
	}
	return entity.LaunchDescription{Path: path, Kind: kind}, nil
}

func (c *controller) handleLine(ctx context.Context, line string, inv entity.Invocation, env entity.Environment) entity.NodeResult {
	result := entity.NodeResult{Line: line}

	parsed, err := cmdline.Parse(line)
	if err == nil && (parsed == nil || parsed.Executable == "") {
		err = errors.ErrEmptyCommand
	}
	if err != nil {
		return c.failed(result, err)
	}

	decision := c.policy.Classify(parsed, inv.Policy)
	if decision.Action == nodepolicy.ActionBareSpawn {
		result.NodeName = nodeName(parsed)
		return c.spawn(result, parsed, inv.Policy.Cwd, env, decision.Reason)
	}

	request := decision.Request
	result.NodeName = request.NodeName

	runtime, err := c.classifier.Classify(request)
	if err != nil {
		return c.failed(result, err)
	}
	result.Runtime = runtime
	if runtime == entity.RuntimePython {
		request.DebuggerKind = entity.DebuggerPython
	}

	cfg := mapper.LaunchRequestToDebugConfiguration(*request, inv.StopOnEntry || c.config.StopOnEntry)
	if err := c.debugHost.StartDebugging(ctx, cfg); err != nil {
		return c.failed(result, &errors.DebugSessionStartError{NodeName: request.NodeName, Err: err})
	}

	c.logger.Infow("debugging node", "node", request.NodeName, "runtime", runtime.String(), "program", request.Executable)
	result.Outcome = entity.OutcomeDebugging
	return result
}

// spawn runs the command line through the platform shell, without a debugger.
func (c *controller) spawn(result entity.NodeResult, parsed *entity.ParsedCommand, cwd string, env entity.Environment, reason nodepolicy.Reason) entity.NodeResult {
	var cmd *exec.Cmd
	if len(c.platform.Shell) > 0 {
		args := append(append([]string{}, c.platform.Shell[1:]...), parsed.Line)
		cmd = exec.Command(c.platform.Shell[0], args...)
	} else {
		cmd = exec.Command(parsed.Executable, parsed.Args...)
	}
	cmd.Dir = cwd
	cmd.Stdout = c.output
	cmd.Stderr = c.output

	pid, wait, err := c.executor.Start(cmd, env.List())
	if err != nil {
		return c.failed(result, fmt.Errorf("starting %q: %w", parsed.Executable, err))
	}
	c.registry.Record(pid)

	go func() {
		if err := wait(); err != nil {
			c.logger.Warnw("node exited", "node", result.NodeName, "pid", pid, "error", err)
			return
		}
		c.logger.Infow("node exited", "node", result.NodeName, "pid", pid)
	}()

	c.logger.Infow("spawned node without debugger", "node", result.NodeName, "pid", pid, "reason", string(reason))
	result.Outcome = entity.OutcomeSpawned
	result.PID = pid
	return result
}

func (c *controller) failed(result entity.NodeResult, err error) entity.NodeResult {
	c.logger.Errorw("node failed", "node", result.NodeName, "line", result.Line, "error", err)
	result.Outcome = entity.OutcomeFailed
	result.Err = err
	return result
}

func (c *controller) updateSessionInfo(key, value string) {
	if err := c.sessionInfo.UpdateField(key, value); err != nil {
		c.logger.Warnw("updating session info", "key", key, "error", err)
	}
}

func (c *controller) parallelism() int {
	if c.config.MaxParallelNodes < 1 {
		return 1
	}
	return c.config.MaxParallelNodes
}

func nodeName(parsed *entity.ParsedCommand) string {
	if name := strings.TrimSpace(parsed.NodeIdentity); name != "" {
		return name
	}
	return entity.ExecutableName(parsed.Executable)
}
