package mapper

import (
	"fmt"

	"github.com/uber/ros-launchdbg/src/launchdbg/entity"
)

const (
	_configNameFormat  = "ROS: %s"
	_defaultNativeCwd  = "."
	_prettyPrintingCmd = "-enable-pretty-printing"
	_prettyPrintingMsg = "Enable pretty-printing for gdb"
)

// LaunchRequestToDebugConfiguration builds the debug configuration for a classified launch request.
// The variant is chosen by request.DebuggerKind: python, cppvsdbg, or a gdb style adapter for anything else.
func LaunchRequestToDebugConfiguration(request entity.LaunchRequest, stopOnEntry bool) entity.DebugConfiguration {
	name := fmt.Sprintf(_configNameFormat, request.NodeName)
	args := request.Arguments
	if args == nil {
		args = []string{}
	}

	switch request.DebuggerKind {
	case entity.DebuggerPython:
		env := make(map[string]string, len(request.Env))
		for k, v := range request.Env {
			env[k] = v
		}
		return &entity.PythonConfig{
			Name:        name,
			Type:        entity.DebuggerPython,
			Request:     entity.RequestLaunch,
			Program:     request.Executable,
			Args:        args,
			Env:         env,
			Cwd:         request.Cwd,
			StopOnEntry: stopOnEntry,
			JustMyCode:  false,
		}
	case entity.DebuggerVsdbg:
		return &entity.VsdbgConfig{
			Name:             name,
			Type:             entity.DebuggerVsdbg,
			Request:          entity.RequestLaunch,
			Program:          request.Executable,
			Args:             args,
			Environment:      EnvironmentToEntries(request.Env),
			Cwd:              nativeCwd(request.Cwd),
			StopAtEntry:      stopOnEntry,
			SymbolSearchPath: request.SymbolSearchPath,
			SourceFileMap:    request.SourceFileMap,
		}
	default:
		debuggerType := request.DebuggerKind
		if debuggerType == "" {
			debuggerType = entity.DebuggerGdb
		}
		return &entity.GdbConfig{
			Name:                      name,
			Type:                      debuggerType,
			Request:                   entity.RequestLaunch,
			Program:                   request.Executable,
			Args:                      args,
			Environment:               EnvironmentToEntries(request.Env),
			Cwd:                       nativeCwd(request.Cwd),
			StopAtEntry:               stopOnEntry,
			ExternalConsole:           true,
			AdditionalSOLibSearchPath: request.AdditionalSOLibSearchPath,
			SourceFileMap:             request.SourceFileMap,
			SetupCommands: []entity.SetupCommand{
				{
					Text:           _prettyPrintingCmd,
					Description:    _prettyPrintingMsg,
					IgnoreFailures: true,
				},
			},
		}
	}
}

// EnvironmentToEntries converts an environment to the list form used by native debug adapters, sorted by name.
func EnvironmentToEntries(env entity.Environment) []entity.EnvironmentEntry {
	entries := make([]entity.EnvironmentEntry, 0, len(env))
	for _, k := range env.Keys() {
		entries = append(entries, entity.EnvironmentEntry{Name: k, Value: env[k]})
	}
	return entries
}

func nativeCwd(cwd string) string {
	if cwd == "" {
		return _defaultNativeCwd
	}
	return cwd
}
