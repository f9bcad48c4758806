package entity

// Debugger types understood by the debug host.
const (
	DebuggerPython = "python"
	DebuggerVsdbg  = "cppvsdbg"
	DebuggerGdb    = "cppdbg"
)

// RequestLaunch is the request type of every configuration built by the pipeline.
const RequestLaunch = "launch"

// Runtime is the result of classifying an executable.
type Runtime int

const (
	// RuntimeNative is a compiled executable.
	RuntimeNative Runtime = iota
	// RuntimePython is an interpreted python program.
	RuntimePython
)

// String implements fmt.Stringer.
func (r Runtime) String() string {
	switch r {
	case RuntimePython:
		return "python"
	default:
		return "native"
	}
}

// DebugConfiguration is one of PythonConfig, VsdbgConfig or GdbConfig.
type DebugConfiguration interface {
	// ConfigName is the display name of the debug session.
	ConfigName() string
	// DebuggerType is the debug adapter type.
	DebuggerType() string

	isDebugConfiguration()
}

// EnvironmentEntry is a single variable in the list form used by the native debug adapters.
type EnvironmentEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SetupCommand is a gdb command executed before the debuggee starts.
type SetupCommand struct {
	Text           string `json:"text"`
	Description    string `json:"description"`
	IgnoreFailures bool   `json:"ignoreFailures"`
}

// PythonConfig launches a python node under debugpy.
type PythonConfig struct {
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Request     string            `json:"request"`
	Program     string            `json:"program"`
	Args        []string          `json:"args"`
	Env         map[string]string `json:"env"`
	Cwd         string            `json:"cwd,omitempty"`
	StopOnEntry bool              `json:"stopOnEntry"`
	JustMyCode  bool              `json:"justMyCode"`
}

// VsdbgConfig launches a native node under the Visual Studio debugger.
type VsdbgConfig struct {
	Name             string             `json:"name"`
	Type             string             `json:"type"`
	Request          string             `json:"request"`
	Program          string             `json:"program"`
	Args             []string           `json:"args"`
	Environment      []EnvironmentEntry `json:"environment"`
	Cwd              string             `json:"cwd"`
	StopAtEntry      bool               `json:"stopAtEntry"`
	SymbolSearchPath string             `json:"symbolSearchPath,omitempty"`
	SourceFileMap    map[string]string  `json:"sourceFileMap,omitempty"`
}

// GdbConfig launches a native node under gdb.
type GdbConfig struct {
	Name                      string             `json:"name"`
	Type                      string             `json:"type"`
	Request                   string             `json:"request"`
	Program                   string             `json:"program"`
	Args                      []string           `json:"args"`
	Environment               []EnvironmentEntry `json:"environment"`
	Cwd                       string             `json:"cwd"`
	StopAtEntry               bool               `json:"stopAtEntry"`
	ExternalConsole           bool               `json:"externalConsole"`
	AdditionalSOLibSearchPath string             `json:"additionalSOLibSearchPath,omitempty"`
	SourceFileMap             map[string]string  `json:"sourceFileMap,omitempty"`
	SetupCommands             []SetupCommand     `json:"setupCommands"`
}

func (c *PythonConfig) ConfigName() string   { return c.Name }
func (c *PythonConfig) DebuggerType() string { return c.Type }
func (*PythonConfig) isDebugConfiguration()  {}

func (c *VsdbgConfig) ConfigName() string   { return c.Name }
func (c *VsdbgConfig) DebuggerType() string { return c.Type }
func (*VsdbgConfig) isDebugConfiguration()  {}

func (c *GdbConfig) ConfigName() string   { return c.Name }
func (c *GdbConfig) DebuggerType() string { return c.Type }
func (*GdbConfig) isDebugConfiguration()  {}
