package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"runfile/internal/ports"
	"runfile/internal/types"
)

// configCandidates lists the recognized config filenames in lookup
// order; the first one present in the project directory wins.
var configCandidates = []types.ConfigLocation{
	{Path: "runfile.yaml", Format: types.ConfigFormatYAML},
	{Path: "runfile.yml", Format: types.ConfigFormatYAML},
	{Path: "runfile.json", Format: types.ConfigFormatJSON},
}

type ConfigFileAdapter struct{}

func NewConfigFileAdapter() ConfigFileAdapter {
	return ConfigFileAdapter{}
}

func (a ConfigFileAdapter) Locate(dir string) (types.ConfigLocation, error) {
	if dir == "" {
		dir = "."
	}
	for _, candidate := range configCandidates {
		path := filepath.Join(dir, candidate.Path)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		return types.ConfigLocation{Path: path, Format: candidate.Format}, nil
	}
	names := make([]string, 0, len(configCandidates))
	for _, candidate := range configCandidates {
		names = append(names, candidate.Path)
	}
	return types.ConfigLocation{}, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("no config file found in %s (looked for %s)", dir, strings.Join(names, ", ")))
}

func (a ConfigFileAdapter) Load(loc types.ConfigLocation, caps types.DecodeCapabilities) (types.ProjectConfig, error) {
	data, err := os.ReadFile(loc.Path)
	if err != nil {
		return types.ProjectConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("config file not found").
			WithCause(err)
	}
	var cfg types.ProjectConfig
	switch loc.Format {
	case types.ConfigFormatYAML:
		if !caps.YAML {
			return types.ProjectConfig{}, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("yaml decoding not enabled for %s", loc.Path))
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return types.ProjectConfig{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse config yaml").
				WithCause(err)
		}
	case types.ConfigFormatJSON:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return types.ProjectConfig{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse config json").
				WithCause(err)
		}
	default:
		return types.ProjectConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown config format: %s", loc.Format))
	}
	return cfg, nil
}

// ConfigLocationForPath builds a location for an explicitly given
// config path, deriving the format from the file extension.
func ConfigLocationForPath(path string) types.ConfigLocation {
	format := types.ConfigFormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = types.ConfigFormatJSON
	}
	return types.ConfigLocation{Path: path, Format: format}
}

var _ ports.ConfigSourcePort = ConfigFileAdapter{}
