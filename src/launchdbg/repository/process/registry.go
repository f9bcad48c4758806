// Package process keeps track of the processes started without a debugger so they can be stopped as a unit.
package process

import (
	"sync"

	"github.com/uber-go/tally"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _trackedGauge = "tracked_processes"

// Module provides the Registry and the Tree it signals through.
var Module = fx.Options(
	fx.Provide(NewTree),
	fx.Provide(New),
)

// Registry records spawned process ids.
type Registry interface {
	// Record adds a process id. The recorded process is usually a shell wrapping the real workload.
	Record(pid int)
	// PIDs returns the recorded ids in recording order.
	PIDs() []int
	// StopAll sends a termination request to every child of every recorded process, then empties the registry.
	// Recorded processes themselves are not signalled, and nothing waits for the children to exit.
	StopAll()
}

// Params are the dependencies of the Registry.
type Params struct {
	fx.In

	Tree   Tree
	Logger *zap.SugaredLogger
	Stats  tally.Scope
}

type registry struct {
	mu     sync.Mutex
	pids   []int
	tree   Tree
	logger *zap.SugaredLogger
	stats  tally.Scope
}

// New creates an empty Registry.
func New(p Params) Registry {
	return &registry{
		tree:   p.Tree,
		logger: p.Logger.With("component", "process-registry"),
		stats:  p.Stats,
	}
}

func (r *registry) Record(pid int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pids = append(r.pids, pid)
	r.stats.Gauge(_trackedGauge).Update(float64(len(r.pids)))
}

func (r *registry) PIDs() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	pids := make([]int, len(r.pids))
	copy(pids, r.pids)
	return pids
}

func (r *registry) StopAll() {
	r.mu.Lock()
	pids := r.pids
	r.pids = nil
	r.stats.Gauge(_trackedGauge).Update(0)
	r.mu.Unlock()

	for _, pid := range pids {
		children, err := r.tree.Children(pid)
		if err != nil {
			r.logger.Warnw("listing child processes", "pid", pid, "error", err)
			continue
		}
		for _, child := range children {
			if err := r.tree.Terminate(child); err != nil {
				r.logger.Warnw("terminating child process", "pid", pid, "child", child, "error", err)
				continue
			}
			r.logger.Infow("terminated child process", "pid", pid, "child", child)
		}
	}
}
