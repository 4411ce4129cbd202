package types

import "time"

// VersionCacheRecord is the state the update notifier persists between
// invocations. The zero value is the defined default for a missing or
// unreadable cache file: LastCheck at the epoch (always stale) and a
// zero display counter.
//
// UpcomingMajorShown only grows while the tool runs; it resets solely
// by external deletion of the cache file. LastCheck never moves
// backwards once a record has been written successfully.
type VersionCacheRecord struct {
	LastCheck          time.Time
	UpcomingMajorShown int
}
