package ports

import "runfile/internal/types"

type AnnouncerPort interface {
	LegacyUpdate(rel types.Release, installed string) error

	// UpcomingMajor renders the next-major notice. An empty body means
	// the built-in template; a non-empty body is printed verbatim.
	UpcomingMajor(rel types.Release, body string) error
}
