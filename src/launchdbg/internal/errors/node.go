package errors

import (
	stderr "errors"
	"fmt"
)

// ExecutableUnreadableError reports a node executable that cannot be read or executed.
// It only affects the node it was raised for.
type ExecutableUnreadableError struct {
	Executable string
	Err        error
}

// Error is an implementation of the error interface.
func (e *ExecutableUnreadableError) Error() string {
	return fmt.Sprintf("executable %q is not accessible: %v", e.Executable, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ExecutableUnreadableError) Unwrap() error { return e.Err }

// DebugSessionStartError reports that the debug host refused to start a session for a node.
type DebugSessionStartError struct {
	NodeName string
	Err      error
}

// Error is an implementation of the error interface.
func (e *DebugSessionStartError) Error() string {
	return fmt.Sprintf("starting debug session for %q: %v", e.NodeName, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DebugSessionStartError) Unwrap() error { return e.Err }

// UnreadableExecutable returns the executable and true if ExecutableUnreadableError is part of the error chain.
func UnreadableExecutable(e error) (_ string, ok bool) {
	var eu *ExecutableUnreadableError
	if !stderr.As(e, &eu) {
		return "", false
	}
	return eu.Executable, true
}
