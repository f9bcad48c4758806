package entity

import (
	"github.com/gofrs/uuid"
	"go.uber.org/multierr"
)

// NodeOutcome is what happened to a single command line.
type NodeOutcome string

const (
	// OutcomeDebugging means a debug session was started for the node.
	OutcomeDebugging NodeOutcome = "debugging"
	// OutcomeSpawned means the node was started without a debugger.
	OutcomeSpawned NodeOutcome = "spawned"
	// OutcomeFailed means the node could not be started.
	OutcomeFailed NodeOutcome = "failed"
)

// NodeResult records the handling of one command line.
type NodeResult struct {
	Line     string      `json:"line" zap:"line"`
	NodeName string      `json:"nodeName" zap:"nodeName"`
	Outcome  NodeOutcome `json:"outcome" zap:"outcome"`
	Runtime  Runtime     `json:"runtime" zap:"runtime"`
	PID      int         `json:"pid,omitempty" zap:"pid"`
	Err      error       `json:"-" zap:"-"`
}

// Report is the result of a completed resolution.
type Report struct {
	ID          uuid.UUID         `json:"id" zap:"id"`
	Description LaunchDescription `json:"description" zap:"description"`
	Nodes       []NodeResult      `json:"nodes" zap:"nodes"`
}

// Count returns the number of nodes with the given outcome.
func (r *Report) Count(outcome NodeOutcome) int {
	n := 0
	for _, node := range r.Nodes {
		if node.Outcome == outcome {
			n++
		}
	}
	return n
}

// Err combines the errors of every failed node, or returns nil.
func (r *Report) Err() error {
	var err error
	for _, node := range r.Nodes {
		err = multierr.Append(err, node.Err)
	}
	return err
}
