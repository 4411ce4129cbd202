package types

// ProjectManifest is the invoking project's package manifest. The
// notifier reads it once per run to learn which version of this tool
// the project has pinned.
type ProjectManifest struct {
	Name            string            `yaml:"name"`
	Dependencies    map[string]string `yaml:"dependencies,omitempty"`
	DevDependencies map[string]string `yaml:"dev_dependencies,omitempty"`
}
