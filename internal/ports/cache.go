package ports

import "runfile/internal/types"

type VersionCachePort interface {
	// Load never fails: any unreadable or malformed cache yields the
	// zero record.
	Load() types.VersionCacheRecord
	Save(rec types.VersionCacheRecord) error
}
