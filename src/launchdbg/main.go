package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/uber/ros-launchdbg/src/launchdbg/app"
	"github.com/uber/ros-launchdbg/src/launchdbg/entity"
	"github.com/uber/ros-launchdbg/src/launchdbg/handler/launch"
	"go.uber.org/fx"
)

const _version = "(to be added by the release build)"

func opts(inv entity.Invocation) fx.Option {
	return fx.Options(
		app.Module,
		fx.Supply(inv),
	)
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "launchdbg",
		Short:        "Start the nodes of a ROS launch description under debuggers",
		Version:      _version,
		SilenceUsage: true,
	}
	root.AddCommand(launch.NewCommand(func(inv entity.Invocation) error {
		// Run exits the process with the shutdown exit code when it is non-zero.
		fx.New(opts(inv)).Run()
		return nil
	}))
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
