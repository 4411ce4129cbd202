package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"runfile/internal/ports"
	"runfile/internal/types"
)

// CacheFileName is the notifier state file kept under the platform
// cache directory, namespaced by the package name.
const CacheFileName = "version-notifier.json"

// VersionCacheFileAdapter persists the notifier state as a small JSON
// document. Dir overrides the platform cache directory when non-empty.
type VersionCacheFileAdapter struct {
	Dir string
}

func NewVersionCacheFileAdapter(dir string) VersionCacheFileAdapter {
	return VersionCacheFileAdapter{Dir: dir}
}

// cacheRecordFile tolerates the two historical shapes of the file:
// lastCheck as an RFC3339-ish string or a numeric epoch, and the
// counter under either its current or its original key.
type cacheRecordFile struct {
	LastCheck          json.RawMessage `json:"lastCheck"`
	UpcomingMajorShown *int            `json:"upcomingMajorShown"`
	V3TimesShown       *int            `json:"v3TimesShown"`
}

type cacheRecordOut struct {
	LastCheck          string `json:"lastCheck"`
	UpcomingMajorShown int    `json:"upcomingMajorShown"`
}

// Load reads the cache file. Every failure mode (missing file,
// unreadable, malformed JSON, missing fields) yields the zero record;
// a corrupt cache never surfaces as an error.
func (a VersionCacheFileAdapter) Load() types.VersionCacheRecord {
	dir, err := a.cacheDir()
	if err != nil {
		return types.VersionCacheRecord{}
	}
	data, err := os.ReadFile(filepath.Join(dir, CacheFileName))
	if err != nil {
		return types.VersionCacheRecord{}
	}
	return decodeCacheRecord(data)
}

func (a VersionCacheFileAdapter) Save(rec types.VersionCacheRecord) error {
	dir, err := a.cacheDir()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("cache directory is not resolvable").
			WithCause(err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create cache directory").
			WithCause(err)
	}
	out := cacheRecordOut{
		LastCheck:          rec.LastCheck.UTC().Format(time.RFC3339Nano),
		UpcomingMajorShown: rec.UpcomingMajorShown,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode cache record").
			WithCause(err)
	}
	if err := os.WriteFile(filepath.Join(dir, CacheFileName), data, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write cache file").
			WithCause(err)
	}
	return nil
}

func (a VersionCacheFileAdapter) cacheDir() (string, error) {
	if a.Dir != "" {
		return a.Dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, types.PackageName), nil
}

func decodeCacheRecord(data []byte) types.VersionCacheRecord {
	var file cacheRecordFile
	if err := json.Unmarshal(data, &file); err != nil {
		return types.VersionCacheRecord{}
	}
	rec := types.VersionCacheRecord{}
	if len(file.LastCheck) > 0 {
		var asString string
		var asNumber float64
		switch {
		case json.Unmarshal(file.LastCheck, &asString) == nil:
			rec.LastCheck = parseTimeFlexible(asString)
		case json.Unmarshal(file.LastCheck, &asNumber) == nil:
			rec.LastCheck = epochTime(asNumber)
		}
	}
	switch {
	case file.UpcomingMajorShown != nil && *file.UpcomingMajorShown > 0:
		rec.UpcomingMajorShown = *file.UpcomingMajorShown
	case file.V3TimesShown != nil && *file.V3TimesShown > 0:
		rec.UpcomingMajorShown = *file.V3TimesShown
	}
	return rec
}

var _ ports.VersionCachePort = VersionCacheFileAdapter{}
