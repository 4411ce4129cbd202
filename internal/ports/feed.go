package ports

import (
	"context"

	"runfile/internal/types"
)

type ReleaseFeedPort interface {
	// ListReleases issues a single request for the most recent page of
	// releases. No retries.
	ListReleases(ctx context.Context) ([]types.Release, error)

	// AssetText fetches a release asset and returns its body verbatim.
	AssetText(ctx context.Context, url string) (string, error)
}
