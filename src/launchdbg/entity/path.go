package entity

import (
	"strings"
)

// Executables may carry either separator: dumper output is produced on the host platform, tests and
// IDE bridges may run elsewhere.
const _separators = `/\`

// BaseName returns the last element of a slash or backslash separated path.
func BaseName(path string) string {
	return path[strings.LastIndexAny(path, _separators)+1:]
}

// Extension returns the extension of the last path element, including the dot, or an empty string.
func Extension(path string) string {
	base := BaseName(path)
	if idx := strings.LastIndexByte(base, '.'); idx > 0 {
		return base[idx:]
	}
	return ""
}

// ExecutableName returns the last path element without its extension.
func ExecutableName(path string) string {
	base := BaseName(path)
	return strings.TrimSuffix(base, Extension(base))
}
