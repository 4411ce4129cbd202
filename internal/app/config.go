package app

import (
	"context"

	"runfile/internal/adapters"
	"runfile/internal/core"
	"runfile/internal/types"
)

// loadProjectConfig discovers the config file (or takes an explicit
// path verbatim), derives the decode capabilities from the detected
// format, and loads and validates the config. YAML decoding is granted
// per call based on what was found, never switched on globally.
func (s Service) loadProjectConfig(ctx context.Context, dir string, explicitPath string) (types.ConfigLocation, types.ProjectConfig, error) {
	var loc types.ConfigLocation
	if explicitPath != "" {
		loc = adapters.ConfigLocationForPath(explicitPath)
	} else {
		found, err := s.Config.Locate(dir)
		if err != nil {
			return types.ConfigLocation{}, types.ProjectConfig{}, err
		}
		loc = found
	}
	caps := types.DecodeCapabilities{YAML: loc.Format == types.ConfigFormatYAML}
	cfg, err := s.Config.Load(loc, caps)
	if err != nil {
		return types.ConfigLocation{}, types.ProjectConfig{}, err
	}
	if err := core.NewConfigChecker().Validate(ctx, loc, cfg); err != nil {
		return types.ConfigLocation{}, types.ProjectConfig{}, err
	}
	return loc, cfg, nil
}
