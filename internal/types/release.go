package types

import "time"

// PackageName is the published identity of this tool: the package
// segment of release tags ("runfile@1.2.3"), the cache directory
// namespace, and the dependency key looked up in project manifests.
const PackageName = "runfile"

type ReleaseAsset struct {
	Name string
	URL  string
}

// Release is one entry of the remote release feed, reduced to the
// fields the notifier consumes. It is immutable once mapped from the
// feed response.
type Release struct {
	Tag         string
	PublishedAt time.Time
	Draft       bool
	Prerelease  bool
	HTMLURL     string
	Body        string
	Assets      []ReleaseAsset
}
