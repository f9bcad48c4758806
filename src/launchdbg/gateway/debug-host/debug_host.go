// Package debughost hands debug configurations to the IDE bridge that starts the actual debug sessions.
package debughost

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/uber/ros-launchdbg/src/launchdbg/entity"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _eventStartDebugging = "startDebugging"

// Module provides the Gateway.
var Module = fx.Provide(New)

// Gateway starts debug sessions.
type Gateway interface {
	// StartDebugging requests a debug session for the configuration and reports whether the request was delivered.
	StartDebugging(ctx context.Context, cfg entity.DebugConfiguration) error
}

// Params are the dependencies of the Gateway.
type Params struct {
	fx.In

	Logger *zap.SugaredLogger
	// Output receives one JSON object per line. Defaults to stdout.
	Output io.Writer `name:"debugHostOutput" optional:"true"`
}

// Message is a single line written to the bridge.
type Message struct {
	Event         string                    `json:"event"`
	Configuration entity.DebugConfiguration `json:"configuration"`
}

type gateway struct {
	mu     sync.Mutex
	out    io.Writer
	logger *zap.SugaredLogger
}

// New creates a Gateway writing to p.Output.
func New(p Params) Gateway {
	out := p.Output
	if out == nil {
		out = os.Stdout
	}
	return &gateway{
		out:    out,
		logger: p.Logger.With("component", "debug-host"),
	}
}

func (g *gateway) StartDebugging(_ context.Context, cfg entity.DebugConfiguration) error {
	line, err := json.Marshal(Message{Event: _eventStartDebugging, Configuration: cfg})
	if err != nil {
		return fmt.Errorf("encoding debug configuration: %w", err)
	}
	line = append(line, '\n')

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, err := g.out.Write(line); err != nil {
		return fmt.Errorf("writing debug configuration: %w", err)
	}

	g.logger.Infow("requested debug session", "name", cfg.ConfigName(), "type", cfg.DebuggerType())
	return nil
}
