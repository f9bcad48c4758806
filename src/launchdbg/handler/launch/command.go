package launch

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/uber/ros-launchdbg/src/launchdbg/entity"
	"go.uber.org/config"
)

const (
	_flagPolicy      = "policy"
	_flagStopOnEntry = "stop-on-entry"
	_flagLaunchOnly  = "launch-only"
	_flagAttach      = "attach"
	_flagCwd         = "cwd"
	_flagEnv         = "env"
	_flagDebugger    = "debugger"

	_launchArgMarker = ":="
)

// RunFunc runs a resolution for a parsed invocation.
type RunFunc func(inv entity.Invocation) error

// NewCommand returns the "launch" command. Its arguments are a launch file, or a package and a launch file
// within it, followed by launch arguments of the form name:=value.
func NewCommand(run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "launch TARGET [FILE] [-- ARGS...]",
		Short: "Resolve a launch description and start its nodes under debuggers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := invocationFromCommand(cmd, args)
			if err != nil {
				return err
			}
			return run(inv)
		},
	}

	flags := cmd.Flags()
	flags.String(_flagPolicy, "", "YAML file with the launch policy")
	flags.Bool(_flagStopOnEntry, false, "stop debugged nodes on their first instruction")
	flags.StringArray(_flagLaunchOnly, nil, "executable name to run without a debugger (repeatable)")
	flags.StringArray(_flagAttach, nil, "node name to debug, all nodes are debugged when omitted (repeatable)")
	flags.String(_flagCwd, "", "working directory of debugged nodes")
	flags.StringArray(_flagEnv, nil, "KEY=VALUE added to the environment of every node (repeatable)")
	flags.String(_flagDebugger, "", "debugger type for native nodes")
	return cmd
}

// invocationFromCommand builds the invocation from the policy file, then applies flags on top of it.
func invocationFromCommand(cmd *cobra.Command, args []string) (entity.Invocation, error) {
	var inv entity.Invocation

	positional, launchArgs := args, []string(nil)
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		positional, launchArgs = args[:dash], args[dash:]
	}
	if len(positional) == 0 {
		return inv, fmt.Errorf("missing launch target")
	}
	inv.Target = positional[0]
	rest := positional[1:]
	if len(rest) > 0 && !strings.Contains(rest[0], _launchArgMarker) {
		inv.TargetFile = rest[0]
		rest = rest[1:]
	}
	inv.Args = append(append([]string{}, rest...), launchArgs...)

	flags := cmd.Flags()
	if path, _ := flags.GetString(_flagPolicy); path != "" {
		policy, err := LoadPolicy(path)
		if err != nil {
			return inv, err
		}
		inv.Policy = policy
	}

	inv.StopOnEntry, _ = flags.GetBool(_flagStopOnEntry)
	if launchOnly, _ := flags.GetStringArray(_flagLaunchOnly); len(launchOnly) > 0 {
		inv.Policy.LaunchOnly = append(inv.Policy.LaunchOnly, launchOnly...)
	}
	if flags.Changed(_flagAttach) {
		attach, _ := flags.GetStringArray(_flagAttach)
		inv.Policy.AttachDebugger = append([]string{}, attach...)
	}
	if cwd, _ := flags.GetString(_flagCwd); cwd != "" {
		inv.Policy.Cwd = cwd
	}
	if debugger, _ := flags.GetString(_flagDebugger); debugger != "" {
		inv.Policy.Debugger = debugger
	}
	if env, _ := flags.GetStringArray(_flagEnv); len(env) > 0 {
		inv.Policy.Env = entity.Environment(inv.Policy.Env).Merge(entity.EnvironmentFromList(env))
	}
	return inv, nil
}

// LoadPolicy reads a launch policy file. An absent attachDebugger key debugs every node, an empty list debugs none.
// Unknown keys are rejected.
func LoadPolicy(path string) (entity.LaunchPolicyConfig, error) {
	var policy entity.LaunchPolicyConfig
	if _, err := os.Stat(path); err != nil {
		return policy, fmt.Errorf("reading launch policy: %w", err)
	}

	provider, err := config.NewYAML(config.File(path))
	if err != nil {
		return policy, fmt.Errorf("parsing launch policy %s: %w", path, err)
	}
	if err := provider.Get(config.Root).Populate(&policy); err != nil {
		return policy, fmt.Errorf("parsing launch policy %s: %w", path, err)
	}
	return policy, nil
}
