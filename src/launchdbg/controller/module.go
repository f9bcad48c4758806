package controller

import (
	launcher "github.com/uber/ros-launchdbg/src/launchdbg/controller/launcher"
	nodepolicy "github.com/uber/ros-launchdbg/src/launchdbg/controller/node-policy"
	"github.com/uber/ros-launchdbg/src/launchdbg/controller/readiness"
	"go.uber.org/fx"
)

// Module provides the resolution pipeline.
var Module = fx.Options(
	launcher.Module,
	nodepolicy.Module,
	readiness.Module,
)
