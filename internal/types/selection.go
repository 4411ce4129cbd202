package types

// SelectionResult holds the outcome of one release-selection pass.
// Either slot is nil when no release qualified. The result lives only
// for the duration of a notifier cycle and is never persisted.
type SelectionResult struct {
	// Legacy is the most recent eligible release on the legacy major
	// line, present only when strictly newer than the installed version.
	Legacy *Release

	// Upcoming is the release whose version exactly matches the pinned
	// next-major target, present only when strictly newer than the
	// installed version.
	Upcoming *Release
}
