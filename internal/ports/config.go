package ports

import "runfile/internal/types"

type ConfigSourcePort interface {
	// Locate returns the first candidate config file present in dir.
	Locate(dir string) (types.ConfigLocation, error)

	// Load decodes the located file. Formats outside the granted
	// capabilities are rejected, not silently decoded.
	Load(loc types.ConfigLocation, caps types.DecodeCapabilities) (types.ProjectConfig, error)
}
