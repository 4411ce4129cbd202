package types

// ProjectConfig is the user-facing runner configuration found in the
// project directory.
type ProjectConfig struct {
	// Scripts maps a script name to the file executed by `run <name>`.
	// Paths are resolved relative to the project directory.
	Scripts map[string]string `yaml:"scripts" json:"scripts"`

	// Tests lists glob patterns (relative to the project directory)
	// whose matches are executed by `test`. Empty means the built-in
	// default pattern.
	Tests []string `yaml:"tests,omitempty" json:"tests,omitempty"`
}

// ConfigLocation identifies a discovered config file together with the
// format it has to be decoded as.
type ConfigLocation struct {
	Path   string
	Format ConfigFormat
}

// DecodeCapabilities enumerates the decoders a caller grants for one
// config load. YAML is the tool's source format: decoding it must be
// requested explicitly per call, never switched on process-wide.
type DecodeCapabilities struct {
	YAML bool
}
