// Package entity contains the domain types for the launch resolution daemon.
package entity

import (
	"slices"
	"strings"
	"time"
)

// LaunchConfigKey is the key that contains launch resolution configuration.
const LaunchConfigKey = "launch"

// DescriptionKind hints at the runtime of a launch description file.
type DescriptionKind string

const (
	// DescriptionScript is a launch description written as a python script.
	DescriptionScript DescriptionKind = "script"
	// DescriptionMarkup is a declarative launch description (xml, yaml).
	DescriptionMarkup DescriptionKind = "markup"
)

var _descriptionExtensions = map[string]DescriptionKind{
	".py":     DescriptionScript,
	".xml":    DescriptionMarkup,
	".launch": DescriptionMarkup,
	".yaml":   DescriptionMarkup,
	".yml":    DescriptionMarkup,
}

// LaunchDescription is a resolved launch file on disk.
type LaunchDescription struct {
	Path string          `json:"path" zap:"path"`
	Kind DescriptionKind `json:"kind" zap:"kind"`
}

// DescriptionKindForPath returns the kind of launch description for the given path and false if the
// extension is not supported.
func DescriptionKindForPath(path string) (DescriptionKind, bool) {
	kind, ok := _descriptionExtensions[strings.ToLower(Extension(path))]
	return kind, ok
}

// ParsedCommand is a single command line produced by the launch dumper, split into its parts.
type ParsedCommand struct {
	// Line is the command line with any terminal wrapper removed, suitable for running through a shell.
	Line         string   `json:"line" zap:"line"`
	Executable   string   `json:"executable" zap:"executable"`
	Args         []string `json:"args" zap:"args"`
	NodeIdentity string   `json:"nodeIdentity" zap:"nodeIdentity"`
}

// LaunchPolicyConfig controls which nodes get a debugger and how their debug sessions are set up.
type LaunchPolicyConfig struct {
	// LaunchOnly lists executable names (without extension) that are run but never debugged.
	LaunchOnly []string `yaml:"launch"`
	// AttachDebugger lists node identities to debug. A nil list attaches to every node.
	AttachDebugger            []string          `yaml:"attachDebugger"`
	Env                       map[string]string `yaml:"env"`
	Cwd                       string            `yaml:"cwd"`
	Debugger                  string            `yaml:"debugger"`
	SymbolSearchPath          string            `yaml:"symbolSearchPath"`
	AdditionalSOLibSearchPath string            `yaml:"additionalSOLibSearchPath"`
	SourceFileMap             map[string]string `yaml:"sourceFileMap"`
}

// IsLaunchOnly reports whether the executable name was marked as run-only.
func (c LaunchPolicyConfig) IsLaunchOnly(name string) bool {
	return slices.Contains(c.LaunchOnly, name)
}

// AttachesAll reports whether the policy debugs every node.
func (c LaunchPolicyConfig) AttachesAll() bool {
	return c.AttachDebugger == nil
}

// AttachesTo reports whether a node with the given identity should be debugged.
// An empty identity only matches when the empty string is listed explicitly.
func (c LaunchPolicyConfig) AttachesTo(identity string) bool {
	if c.AttachesAll() {
		return true
	}
	return slices.Contains(c.AttachDebugger, identity)
}

// LaunchRequest describes a single node that should be started under a debugger.
type LaunchRequest struct {
	NodeName                  string            `json:"nodeName" zap:"nodeName"`
	DebuggerKind              string            `json:"debuggerKind" zap:"debuggerKind"`
	Executable                string            `json:"executable" zap:"executable"`
	Arguments                 []string          `json:"arguments" zap:"arguments"`
	Cwd                       string            `json:"cwd" zap:"cwd"`
	Env                       Environment       `json:"-" zap:"-"`
	SymbolSearchPath          string            `json:"symbolSearchPath,omitempty" zap:"symbolSearchPath"`
	AdditionalSOLibSearchPath string            `json:"additionalSOLibSearchPath,omitempty" zap:"additionalSOLibSearchPath"`
	SourceFileMap             map[string]string `json:"sourceFileMap,omitempty" zap:"-"`
}

// Invocation is a single request to resolve and start a launch description.
type Invocation struct {
	// Target is either a path to a launch file or a package name.
	Target string
	// TargetFile is the launch file name within the package when Target is a package name.
	TargetFile  string
	Args        []string
	Policy      LaunchPolicyConfig
	StopOnEntry bool
}

// LaunchConfig is the static configuration of the launch resolution pipeline.
type LaunchConfig struct {
	DumperScript      string             `yaml:"dumperScript"`
	ResolverScript    string             `yaml:"resolverScript"`
	PythonInterpreter string             `yaml:"pythonInterpreter"`
	StopOnEntry       bool               `yaml:"stopOnEntry"`
	MaxParallelNodes  int                `yaml:"maxParallelNodes"`
	Coordination      CoordinationConfig `yaml:"coordination"`
}

// CoordinationConfig bounds the wait for the coordination service.
type CoordinationConfig struct {
	TimeoutMs  int `yaml:"timeoutMs"`
	IntervalMs int `yaml:"intervalMs"`
}

// Interpreter returns the configured python interpreter, falling back to the platform default.
func (c LaunchConfig) Interpreter(platform PlatformProfile) string {
	if c.PythonInterpreter != "" {
		return c.PythonInterpreter
	}
	return platform.PythonInterpreter
}

// CoordinationTimeout returns the coordination wait bound.
func (c LaunchConfig) CoordinationTimeout() time.Duration {
	return time.Duration(c.Coordination.TimeoutMs) * time.Millisecond
}

// CoordinationInterval returns the delay between coordination status polls.
func (c LaunchConfig) CoordinationInterval() time.Duration {
	return time.Duration(c.Coordination.IntervalMs) * time.Millisecond
}
