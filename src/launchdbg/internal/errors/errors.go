package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// ErrCoordinationTimeout reports that the coordination service did not become ready in time.
	// It is never fatal to a resolution.
	ErrCoordinationTimeout = New("coordination service not ready before timeout")
	// ErrEmptyCommand reports a command line without an executable.
	ErrEmptyCommand = New("command line has no executable")
)

// IsFatalToResolution reports whether the error aborts a whole resolution before any node is started.
func IsFatalToResolution(e error) bool {
	var (
		targetUnreadable     *TargetUnreadableError
		unsupportedExtension *UnsupportedExtensionError
		dumperFailure        *DumperFailureError
		noNodes              *NoNodesProducedError
	)
	return stderr.As(e, &targetUnreadable) ||
		stderr.As(e, &unsupportedExtension) ||
		stderr.As(e, &dumperFailure) ||
		stderr.As(e, &noNodes)
}
