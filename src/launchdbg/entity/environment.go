package entity

import (
	"sort"
	"strings"
)

// Environment is a set of environment variables keyed by name.
type Environment map[string]string

// EnvironmentFromList parses KEY=VALUE pairs, such as the output of os.Environ.
// Entries without a separator are ignored.
func EnvironmentFromList(list []string) Environment {
	env := make(Environment, len(list))
	for _, entry := range list {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Merge returns a new Environment with the overrides applied on top of the receiver.
func (e Environment) Merge(overrides map[string]string) Environment {
	merged := make(Environment, len(e)+len(overrides))
	for k, v := range e {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// Keys returns the variable names in sorted order.
func (e Environment) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// List returns the environment as sorted KEY=VALUE pairs, as expected by os/exec.
func (e Environment) List() []string {
	list := make([]string, 0, len(e))
	for _, k := range e.Keys() {
		list = append(list, k+"="+e[k])
	}
	return list
}
