package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"runfile/internal/types"
)

// Selector tuning. LegacyMajor marks the major line current installs
// live on; NextMajorTarget is the pinned version announcing the next
// major line. Both are configuration constants, never inferred from
// feed data.
const (
	LegacyMajor     = 0
	NextMajorTarget = "1.0.0"
)

// ReleaseSelector picks at most one legacy and one upcoming release out
// of an unordered feed page. Pure: no I/O, no clock.
type ReleaseSelector struct {
	PackageName     string
	LegacyMajor     uint64
	NextMajorTarget string
}

func NewReleaseSelector() ReleaseSelector {
	return ReleaseSelector{
		PackageName:     types.PackageName,
		LegacyMajor:     LegacyMajor,
		NextMajorTarget: NextMajorTarget,
	}
}

// Select filters and orders the feed page, then matches it against the
// installed version. An unparsable installed version is a hard error:
// a corrupt local install is reported, not skipped.
func (s ReleaseSelector) Select(ctx context.Context, releases []types.Release, localVersion string) (types.SelectionResult, error) {
	assert.NotEmpty(ctx, s.PackageName, "selector package name must be set")
	assert.NotEmpty(ctx, s.NextMajorTarget, "selector next-major target must be set")

	installed, err := semver.NewVersion(strings.TrimSpace(localVersion))
	if err != nil {
		return types.SelectionResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("installed version %q is not valid semver", localVersion)).
			WithCause(err)
	}

	eligible := make([]types.Release, 0, len(releases))
	for _, rel := range releases {
		if rel.Draft || rel.Prerelease {
			continue
		}
		eligible = append(eligible, rel)
	}
	// Stable: equal timestamps keep feed order, so the legacy pick is
	// deterministic.
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].PublishedAt.After(eligible[j].PublishedAt)
	})

	var (
		legacy      *types.Release
		legacyVer   *semver.Version
		upcoming    *types.Release
		upcomingVer *semver.Version
	)
	for i := range eligible {
		name, rawVersion, ok := splitTag(eligible[i].Tag)
		if !ok || name != s.PackageName {
			continue
		}
		version, err := semver.NewVersion(rawVersion)
		if err != nil {
			continue
		}
		if legacy == nil && version.Major() == s.LegacyMajor {
			legacy, legacyVer = &eligible[i], version
		}
		if upcoming == nil && rawVersion == s.NextMajorTarget {
			upcoming, upcomingVer = &eligible[i], version
		}
		if legacy != nil && upcoming != nil {
			break
		}
	}

	result := types.SelectionResult{}
	if legacy != nil && legacyVer.GreaterThan(installed) {
		result.Legacy = legacy
	}
	if upcoming != nil && upcomingVer.GreaterThan(installed) {
		result.Upcoming = upcoming
	}
	log.Ctx(ctx).Debug().
		Int("releases", len(releases)).
		Bool("legacy", result.Legacy != nil).
		Bool("upcoming", result.Upcoming != nil).
		Msg("release selection completed")
	return result, nil
}

// splitTag splits a "<package>@<version>" release tag into its two
// segments.
func splitTag(tag string) (string, string, bool) {
	parts := strings.SplitN(tag, "@", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
