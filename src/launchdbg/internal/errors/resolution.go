package errors

import (
	"fmt"
)

// TargetUnreadableError reports a launch description that could not be resolved or read.
type TargetUnreadableError struct {
	Target string
	Err    error
}

// Error is an implementation of the error interface.
func (e *TargetUnreadableError) Error() string {
	return fmt.Sprintf("launch target %q is not readable: %v", e.Target, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TargetUnreadableError) Unwrap() error { return e.Err }

// UnsupportedExtensionError reports a launch description with an extension that cannot be launched.
type UnsupportedExtensionError struct {
	Path      string
	Extension string
}

// Error is an implementation of the error interface.
func (e *UnsupportedExtensionError) Error() string {
	return fmt.Sprintf("launch file %q has unsupported extension %q", e.Path, e.Extension)
}

// DumperFailureError reports that the launch dumper could not be started.
type DumperFailureError struct {
	Err error
}

// Error is an implementation of the error interface.
func (e *DumperFailureError) Error() string {
	return fmt.Sprintf("running launch dumper: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *DumperFailureError) Unwrap() error { return e.Err }

// NoNodesProducedError reports that the launch dumper produced no command lines.
type NoNodesProducedError struct {
	Target string
	Stderr string
}

// Error is an implementation of the error interface.
func (e *NoNodesProducedError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("launch description %q produced no nodes", e.Target)
	}
	return fmt.Sprintf("launch description %q produced no nodes: %s", e.Target, e.Stderr)
}
