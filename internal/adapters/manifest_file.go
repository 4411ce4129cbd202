package adapters

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"runfile/internal/ports"
	"runfile/internal/types"
)

// ManifestFileName is the project manifest consulted for the version of
// this tool the project has pinned.
const ManifestFileName = "project.yaml"

type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) InstalledVersion(dir string, pkg string) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("project manifest not found at %s", path)).
			WithCause(err)
	}
	var manifest types.ProjectManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse project manifest").
			WithCause(err)
	}
	if version, ok := manifest.Dependencies[pkg]; ok {
		return version, nil
	}
	if version, ok := manifest.DevDependencies[pkg]; ok {
		return version, nil
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("%s is not a dependency of this project", pkg))
}

var _ ports.ManifestPort = ManifestFileAdapter{}
