// Package cmdline turns launch dumper output lines into executables, arguments and node identities.
package cmdline

import (
	"fmt"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/uber/ros-launchdbg/src/launchdbg/entity"
)

const (
	// NodeMarker precedes the node identity in a command line, as in __node:="talker".
	NodeMarker = "__node:="
	// WrapperToken is the terminal emulator the dumper wraps some commands in.
	WrapperToken = `"xterm"`

	_wrapperExecFlag = "-e"
)

// Parse splits a single dumper line. It returns nil for blank lines.
func Parse(line string) (*entity.ParsedCommand, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, nil
	}

	command, wrapped := stripWrapper(trimmed)
	tokens, err := shellquote.Split(command)
	if err != nil {
		return nil, fmt.Errorf("splitting command line %q: %w", trimmed, err)
	}

	if wrapped && len(tokens) > 0 && tokens[0] == _wrapperExecFlag {
		// The flag may have been quoted, so the line is rebuilt from the remaining tokens.
		tokens = tokens[1:]
		command = shellquote.Join(tokens...)
	}

	if len(tokens) == 0 {
		return nil, nil
	}

	return &entity.ParsedCommand{
		Line:         command,
		Executable:   tokens[0],
		Args:         tokens[1:],
		NodeIdentity: NodeIdentity(trimmed),
	}, nil
}

// stripWrapper removes a leading wrapper token and the whitespace after it.
func stripWrapper(line string) (string, bool) {
	if !strings.HasPrefix(line, WrapperToken) {
		return line, false
	}
	rest := strings.TrimPrefix(line, WrapperToken)
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		// "xterm"foo is a different token.
		return line, false
	}
	return strings.TrimLeft(rest, " \t"), true
}

// NodeIdentity returns the value following the node marker in a raw command line, or an empty string
// when the marker is missing or its value is malformed.
func NodeIdentity(line string) string {
	idx := strings.Index(line, NodeMarker)
	if idx < 0 {
		return ""
	}

	value := line[idx+len(NodeMarker):]
	if strings.HasPrefix(value, `"`) {
		end := strings.IndexByte(value[1:], '"')
		if end < 0 {
			return ""
		}
		return value[1 : end+1]
	}

	// Unquoted value, or the whole remapping was quoted as one token: "__node:=talker".
	if end := strings.IndexAny(value, " \t\"'"); end >= 0 {
		return value[:end]
	}
	return value
}
