package core

import (
	"testing"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runfile/internal/types"
)

func release(tag string, published time.Time) types.Release {
	return types.Release{Tag: tag, PublishedAt: published}
}

func TestSelectorPicksNewestLegacyRelease(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	feed := []types.Release{
		release("runfile@0.6.0", base.Add(-48*time.Hour)),
		release("runfile@0.8.0", base),
		release("runfile@0.7.0", base.Add(-24*time.Hour)),
	}

	selector := NewReleaseSelector()
	result, err := selector.Select(t.Context(), feed, "0.5.0")
	require.NoError(t, err)
	require.NotNil(t, result.Legacy)
	if diff := cmp.Diff("runfile@0.8.0", result.Legacy.Tag); diff != "" {
		t.Fatalf("unexpected legacy pick (-want +got):\n%s", diff)
	}
	assert.Nil(t, result.Upcoming)
}

func TestSelectorPicksUpcomingTarget(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	feed := []types.Release{
		release("runfile@1.0.0", base),
		release("runfile@0.9.0", base.Add(-time.Hour)),
	}

	selector := NewReleaseSelector()
	result, err := selector.Select(t.Context(), feed, "0.5.0")
	require.NoError(t, err)
	require.NotNil(t, result.Upcoming)
	if diff := cmp.Diff("runfile@1.0.0", result.Upcoming.Tag); diff != "" {
		t.Fatalf("unexpected upcoming pick (-want +got):\n%s", diff)
	}
	require.NotNil(t, result.Legacy)
	assert.Equal(t, "runfile@0.9.0", result.Legacy.Tag)
}

func TestSelectorUpcomingRequiresExactTarget(t *testing.T) {
	// Versions past the target string do not count as the upcoming
	// announcement, even when they are on the next major line.
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	feed := []types.Release{
		release("runfile@1.2.0", base),
		release("runfile@1.0.0-rc1", base.Add(-time.Hour)),
	}

	selector := NewReleaseSelector()
	result, err := selector.Select(t.Context(), feed, "0.5.0")
	require.NoError(t, err)
	assert.Nil(t, result.Upcoming)
}

func TestSelectorSkipsDraftsAndPrereleases(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	feed := []types.Release{
		{Tag: "runfile@0.9.0", PublishedAt: base, Draft: true},
		{Tag: "runfile@0.8.0", PublishedAt: base.Add(-time.Hour), Prerelease: true},
		{Tag: "runfile@0.7.0", PublishedAt: base.Add(-2 * time.Hour)},
	}

	selector := NewReleaseSelector()
	result, err := selector.Select(t.Context(), feed, "0.5.0")
	require.NoError(t, err)
	require.NotNil(t, result.Legacy)
	if diff := cmp.Diff("runfile@0.7.0", result.Legacy.Tag); diff != "" {
		t.Fatalf("unexpected legacy pick (-want +got):\n%s", diff)
	}
}

func TestSelectorIgnoresForeignAndMalformedTags(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	feed := []types.Release{
		release("otherpkg@0.9.0", base),
		release("runfile", base.Add(-time.Hour)),
		release("@0.9.0", base.Add(-2*time.Hour)),
		release("runfile@", base.Add(-3*time.Hour)),
		release("runfile@not.semver", base.Add(-4*time.Hour)),
	}

	selector := NewReleaseSelector()
	result, err := selector.Select(t.Context(), feed, "0.1.0")
	require.NoError(t, err)
	assert.Nil(t, result.Legacy)
	assert.Nil(t, result.Upcoming)
}

func TestSelectorRequiresStrictlyNewer(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	feed := []types.Release{
		release("runfile@0.5.0", base),
		release("runfile@1.0.0", base.Add(-time.Hour)),
	}

	selector := NewReleaseSelector()

	// Same version installed: nothing to announce on the legacy line.
	result, err := selector.Select(t.Context(), feed, "0.5.0")
	require.NoError(t, err)
	assert.Nil(t, result.Legacy)
	require.NotNil(t, result.Upcoming)

	// Already on the target: the upcoming notice is gone too.
	result, err = selector.Select(t.Context(), feed, "1.0.0")
	require.NoError(t, err)
	assert.Nil(t, result.Legacy)
	assert.Nil(t, result.Upcoming)
}

func TestSelectorKeepsFirstLegacyMatch(t *testing.T) {
	// The newest-published legacy release is the candidate even when an
	// older entry carries a higher version. If that candidate is not
	// newer than the install, no downgrade is offered in its place.
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	feed := []types.Release{
		release("runfile@0.4.0", base),
		release("runfile@0.6.0", base.Add(-time.Hour)),
	}

	selector := NewReleaseSelector()
	result, err := selector.Select(t.Context(), feed, "0.5.0")
	require.NoError(t, err)
	assert.Nil(t, result.Legacy)
}

func TestSelectorStableOrderOnEqualTimestamps(t *testing.T) {
	published := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	feed := []types.Release{
		release("runfile@0.8.0", published),
		release("runfile@0.9.0", published),
	}

	selector := NewReleaseSelector()
	result, err := selector.Select(t.Context(), feed, "0.5.0")
	require.NoError(t, err)
	require.NotNil(t, result.Legacy)
	if diff := cmp.Diff("runfile@0.8.0", result.Legacy.Tag); diff != "" {
		t.Fatalf("unexpected legacy pick on tie (-want +got):\n%s", diff)
	}
}

func TestSelectorInvalidInstalledVersion(t *testing.T) {
	selector := NewReleaseSelector()
	_, err := selector.Select(t.Context(), []types.Release{
		release("runfile@0.9.0", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	}, "not-a-version")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestSelectorEmptyFeed(t *testing.T) {
	selector := NewReleaseSelector()
	result, err := selector.Select(t.Context(), nil, "0.5.0")
	require.NoError(t, err)
	assert.Nil(t, result.Legacy)
	assert.Nil(t, result.Upcoming)
}

func TestSplitTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		pkg     string
		version string
		ok      bool
	}{
		{name: "well formed", tag: "runfile@0.9.0", pkg: "runfile", version: "0.9.0", ok: true},
		{name: "version with at sign", tag: "runfile@1.0.0@beta", pkg: "runfile", version: "1.0.0@beta", ok: true},
		{name: "no separator", tag: "runfile-0.9.0", ok: false},
		{name: "empty package", tag: "@0.9.0", ok: false},
		{name: "empty version", tag: "runfile@", ok: false},
		{name: "empty tag", tag: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, version, ok := splitTag(tt.tag)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.pkg, pkg)
			assert.Equal(t, tt.version, version)
		})
	}
}
