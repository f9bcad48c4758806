package process

import (
	"errors"
	"fmt"

	ps "github.com/shirou/gopsutil/v4/process"
)

// Tree inspects and signals processes of the host.
type Tree interface {
	// Children returns the direct children of pid. A process without children yields an empty list.
	Children(pid int) ([]int, error)
	// Terminate asks the process to exit without waiting for it to do so.
	Terminate(pid int) error
}

type psTree struct{}

// NewTree returns a Tree backed by the operating system process table.
func NewTree() Tree {
	return psTree{}
}

func (psTree) Children(pid int) ([]int, error) {
	p, err := ps.NewProcess(int32(pid))
	if err != nil {
		return nil, fmt.Errorf("finding process %d: %w", pid, err)
	}

	children, err := p.Children()
	if errors.Is(err, ps.ErrorNoChildren) {
		return []int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing children of %d: %w", pid, err)
	}

	pids := make([]int, 0, len(children))
	for _, child := range children {
		pids = append(pids, int(child.Pid))
	}
	return pids, nil
}

func (psTree) Terminate(pid int) error {
	p, err := ps.NewProcess(int32(pid))
	if err != nil {
		return fmt.Errorf("finding process %d: %w", pid, err)
	}
	return p.Terminate()
}
