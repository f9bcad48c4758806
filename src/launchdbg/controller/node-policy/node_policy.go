// Package nodepolicy decides, for each parsed command line, whether it is debugged or only run.
package nodepolicy

import (
	"strings"

	"github.com/uber/ros-launchdbg/src/launchdbg/entity"
	"go.uber.org/fx"
)

// Module provides the Policy.
var Module = fx.Provide(New)

// Action is what the launcher does with a command line.
type Action int

const (
	// ActionBareSpawn runs the command without a debugger, with its output sent to the side channel.
	ActionBareSpawn Action = iota
	// ActionDebug starts a debug session for the command.
	ActionDebug
)

// String implements fmt.Stringer.
func (a Action) String() string {
	if a == ActionDebug {
		return "debug"
	}
	return "bareSpawn"
}

// Reason explains why a command was not debugged.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonLaunchOnly      Reason = "launchOnly"
	ReasonScriptExtension Reason = "scriptExtension"
	ReasonNotSelected     Reason = "notSelected"
)

// Script extensions that are run but never debugged.
var _runOnlyExtensions = map[string]struct{}{
	".bash": {},
	".sh":   {},
	".bat":  {},
	".cmd":  {},
	".ps1":  {},
}

// Decision is the outcome of classifying a command line.
type Decision struct {
	Action Action
	Reason Reason
	// Request is set when Action is ActionDebug.
	Request *entity.LaunchRequest
}

// Policy maps parsed command lines to decisions.
type Policy interface {
	// Classify applies, in order: launch-only executables, run-only script extensions, and the attach list.
	// A command that matches launch-only is never debugged even if its identity is in the attach list.
	Classify(parsed *entity.ParsedCommand, cfg entity.LaunchPolicyConfig) Decision
}

// Params are the dependencies of the Policy.
type Params struct {
	fx.In

	BaseEnv  entity.Environment
	Platform entity.PlatformProfile
}

type policy struct {
	baseEnv  entity.Environment
	platform entity.PlatformProfile
}

// New creates a Policy that builds launch requests on top of the given base environment.
func New(p Params) Policy {
	return &policy{
		baseEnv:  p.BaseEnv,
		platform: p.Platform,
	}
}

func (p *policy) Classify(parsed *entity.ParsedCommand, cfg entity.LaunchPolicyConfig) Decision {
	if cfg.IsLaunchOnly(entity.ExecutableName(parsed.Executable)) {
		return Decision{Action: ActionBareSpawn, Reason: ReasonLaunchOnly}
	}

	if IsRunOnlyScript(parsed.Executable) {
		return Decision{Action: ActionBareSpawn, Reason: ReasonScriptExtension}
	}

	if !cfg.AttachesTo(parsed.NodeIdentity) {
		return Decision{Action: ActionBareSpawn, Reason: ReasonNotSelected}
	}

	return Decision{Action: ActionDebug, Request: p.launchRequest(parsed, cfg)}
}

func (p *policy) launchRequest(parsed *entity.ParsedCommand, cfg entity.LaunchPolicyConfig) *entity.LaunchRequest {
	name := parsed.NodeIdentity
	if name == "" {
		name = entity.ExecutableName(parsed.Executable)
	}

	debugger := cfg.Debugger
	if debugger == "" {
		debugger = p.platform.NativeDebugger
	}

	args := make([]string, len(parsed.Args))
	copy(args, parsed.Args)

	return &entity.LaunchRequest{
		NodeName:                  name,
		DebuggerKind:              debugger,
		Executable:                parsed.Executable,
		Arguments:                 args,
		Cwd:                       cfg.Cwd,
		Env:                       p.baseEnv.Merge(cfg.Env),
		SymbolSearchPath:          cfg.SymbolSearchPath,
		AdditionalSOLibSearchPath: cfg.AdditionalSOLibSearchPath,
		SourceFileMap:             cfg.SourceFileMap,
	}
}

// IsRunOnlyScript reports whether the executable is a shell or batch script.
func IsRunOnlyScript(executable string) bool {
	_, ok := _runOnlyExtensions[strings.ToLower(entity.Extension(executable))]
	return ok
}
