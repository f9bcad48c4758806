package entity

// PlatformConfigKey is the key that contains platform profile overrides.
const PlatformConfigKey = "platform"

const _windows = "windows"

// PlatformProfile declares every platform specific behavior of the pipeline in one place.
// It is consumed by runtime classification, debug configuration building and process spawning.
type PlatformProfile struct {
	OS string
	// NativeExtension is the extension carried by native executables, empty when the platform has none.
	NativeExtension string
	// ScriptExtension is the extension of interpreted python sources.
	ScriptExtension string
	// BinarySegment and SourceSegment define how a native executable path maps to a co-located python source.
	BinarySegment string
	SourceSegment string
	// NativeDebugger is the debugger type used for native nodes when no override is configured.
	NativeDebugger    string
	PythonInterpreter string
	// Shell runs a full command line. An empty Shell means arguments are passed to the program directly.
	Shell []string
}

// PlatformOverrides are the configurable parts of a PlatformProfile.
type PlatformOverrides struct {
	BinarySegment     string `yaml:"binarySegment"`
	SourceSegment     string `yaml:"sourceSegment"`
	PythonInterpreter string `yaml:"pythonInterpreter"`
}

// NewPlatformProfile returns the profile for the given GOOS value.
func NewPlatformProfile(goos string) PlatformProfile {
	if goos == _windows {
		return PlatformProfile{
			OS:                goos,
			NativeExtension:   ".exe",
			ScriptExtension:   ".py",
			BinarySegment:     `\build\`,
			SourceSegment:     `\src\`,
			NativeDebugger:    DebuggerVsdbg,
			PythonInterpreter: "python",
			Shell:             []string{"cmd", "/C"},
		}
	}

	return PlatformProfile{
		OS:                goos,
		ScriptExtension:   ".py",
		BinarySegment:     "/build/",
		SourceSegment:     "/src/",
		NativeDebugger:    DebuggerGdb,
		PythonInterpreter: "python3",
		Shell:             []string{"/bin/sh", "-c"},
	}
}

// WithOverrides returns a copy of the profile with any non-empty override applied.
func (p PlatformProfile) WithOverrides(o PlatformOverrides) PlatformProfile {
	if o.BinarySegment != "" {
		p.BinarySegment = o.BinarySegment
	}
	if o.SourceSegment != "" {
		p.SourceSegment = o.SourceSegment
	}
	if o.PythonInterpreter != "" {
		p.PythonInterpreter = o.PythonInterpreter
	}
	return p
}

// HasNativeExtension reports whether native executables are recognizable by extension alone.
func (p PlatformProfile) HasNativeExtension() bool {
	return p.NativeExtension != ""
}

// IsWindows reports whether the profile describes Windows.
func (p PlatformProfile) IsWindows() bool {
	return p.OS == _windows
}
