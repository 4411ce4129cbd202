package ports

type ManifestPort interface {
	InstalledVersion(dir string, pkg string) (string, error)
}
