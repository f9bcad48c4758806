// Package runtimeclassifier decides whether a node executable is a native binary or a python program.
package runtimeclassifier

import (
	"strings"
	"unicode/utf8"

	"github.com/uber/ros-launchdbg/src/launchdbg/entity"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/errors"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/fs"
	"go.uber.org/fx"
)

const (
	_shebang     = "#!"
	_pythonToken = "python"
)

// Module provides the Classifier.
var Module = fx.Provide(New)

// Classifier determines the runtime of a launch request's executable.
type Classifier interface {
	// Classify returns the runtime of request.Executable. When a native executable has a co-located python source,
	// request.Executable is rewritten to point at the source.
	Classify(request *entity.LaunchRequest) (entity.Runtime, error)
}

// Params are the dependencies of the Classifier.
type Params struct {
	fx.In

	FS       fs.LaunchFS
	Platform entity.PlatformProfile
}

type classifier struct {
	fs       fs.LaunchFS
	platform entity.PlatformProfile
}

// New creates a Classifier for the given platform.
func New(p Params) Classifier {
	return &classifier{
		fs:       p.FS,
		platform: p.Platform,
	}
}

func (c *classifier) Classify(request *entity.LaunchRequest) (entity.Runtime, error) {
	executable := request.Executable
	ext := strings.ToLower(entity.Extension(executable))

	if err := c.fs.Readable(executable); err != nil {
		return entity.RuntimeNative, &errors.ExecutableUnreadableError{Executable: executable, Err: err}
	}

	if ext == c.platform.ScriptExtension {
		return entity.RuntimePython, nil
	}

	if c.platform.HasNativeExtension() {
		if ext != c.platform.NativeExtension {
			return entity.RuntimeNative, nil
		}
		if source, ok := c.pythonSource(executable); ok {
			request.Executable = source
			return entity.RuntimePython, nil
		}
		return entity.RuntimeNative, nil
	}

	if err := c.fs.Executable(executable); err != nil {
		return entity.RuntimeNative, &errors.ExecutableUnreadableError{Executable: executable, Err: err}
	}

	line, err := c.fs.FirstLine(executable)
	if err != nil {
		return entity.RuntimeNative, &errors.ExecutableUnreadableError{Executable: executable, Err: err}
	}
	if IsPythonShebang(line) {
		return entity.RuntimePython, nil
	}
	return entity.RuntimeNative, nil
}

// pythonSource maps a native executable onto its python source by swapping the binary layout segment for the
// source layout segment and the native extension for the script extension.
func (c *classifier) pythonSource(executable string) (string, bool) {
	if c.platform.BinarySegment == "" || !containsFold(executable, c.platform.BinarySegment) {
		return "", false
	}

	source := replaceFold(executable, c.platform.BinarySegment, c.platform.SourceSegment)
	source = strings.TrimSuffix(source, entity.Extension(source)) + c.platform.ScriptExtension
	if err := c.fs.Readable(source); err != nil {
		return "", false
	}
	return source, true
}

// IsPythonShebang reports whether the first line of a file is an interpreter directive naming python.
func IsPythonShebang(line string) bool {
	return strings.HasPrefix(line, _shebang) && strings.Contains(strings.ToLower(line), _pythonToken)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// replaceFold replaces the first case-insensitive occurrence of old in s.
// Candidates are compared in place so offsets stay valid when case mapping changes the byte length of a rune.
func replaceFold(s, old, replacement string) string {
	if old == "" {
		return s
	}
	runes := utf8.RuneCountInString(old)
	for start := 0; start < len(s); {
		end, n := start, 0
		for end < len(s) && n < runes {
			_, size := utf8.DecodeRuneInString(s[end:])
			end += size
			n++
		}
		if n < runes {
			break
		}
		if strings.EqualFold(s[start:end], old) {
			return s[:start] + replacement + s[end:]
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		start += size
	}
	return s
}
