package gateway

import (
	debughost "github.com/uber/ros-launchdbg/src/launchdbg/gateway/debug-host"
	launchdumper "github.com/uber/ros-launchdbg/src/launchdbg/gateway/launch-dumper"
	packageresolver "github.com/uber/ros-launchdbg/src/launchdbg/gateway/package-resolver"
	rosdaemon "github.com/uber/ros-launchdbg/src/launchdbg/gateway/ros-daemon"
	"go.uber.org/fx"
)

// Module provides every outbound collaborator.
var Module = fx.Options(
	debughost.Module,
	launchdumper.Module,
	packageresolver.Module,
	rosdaemon.Module,
)
