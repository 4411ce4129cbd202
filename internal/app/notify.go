package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"runfile/internal/core"
	"runfile/internal/policies"
	"runfile/internal/types"
)

// OverrideAssetName is the release asset that replaces the built-in
// upcoming-major message when present.
const OverrideAssetName = "version-notifier-message.txt"

// Notify runs one update-notification cycle: freshness gate, feed
// fetch, release selection, presentation, cache rewrite.
//
// lastCheck moves forward only when a fetch cycle completed; a failed
// fetch leaves it untouched so the next run retries instead of waiting
// out a full window.
func (s Service) Notify(ctx context.Context, req NotifyRequest) (NotifyResult, error) {
	policy := policies.NewNotifyPolicy()
	record := s.Cache.Load()
	now := timeNow(s.Clock)

	if !policy.ShouldCheck(record.LastCheck, now) {
		log.Ctx(ctx).Debug().Time("last_check", record.LastCheck).Msg("update check still fresh")
		return NotifyResult{Performed: false, TimesShown: record.UpcomingMajorShown}, nil
	}

	installed, err := s.Manifest.InstalledVersion(req.ProjectDir, types.PackageName)
	if err != nil {
		return NotifyResult{}, err
	}
	releases, err := s.Feed.ListReleases(ctx)
	if err != nil {
		return NotifyResult{}, err
	}
	selection, err := core.NewReleaseSelector().Select(ctx, releases, installed)
	if err != nil {
		return NotifyResult{}, err
	}

	result := NotifyResult{Performed: true}
	if selection.Legacy != nil {
		if err := s.Announcer.LegacyUpdate(*selection.Legacy, installed); err != nil {
			return NotifyResult{}, err
		}
		result.LegacyTag = selection.Legacy.Tag
	}
	if selection.Upcoming != nil && policy.CanAnnounceUpcoming(record.UpcomingMajorShown) {
		body := s.upcomingBody(ctx, *selection.Upcoming)
		if err := s.Announcer.UpcomingMajor(*selection.Upcoming, body); err != nil {
			return NotifyResult{}, err
		}
		record.UpcomingMajorShown++
		result.UpcomingTag = selection.Upcoming.Tag
	}

	// lastCheck advances even when nothing was announced; that is what
	// keeps the next window quiet.
	record.LastCheck = now
	if err := s.Cache.Save(record); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("failed to persist version cache")
	}
	result.TimesShown = record.UpcomingMajorShown
	return result, nil
}

// upcomingBody returns the override asset's content when the release
// carries one, or "" for the built-in template. An override that fails
// to download falls back to the template rather than killing the cycle.
func (s Service) upcomingBody(ctx context.Context, rel types.Release) string {
	for _, asset := range rel.Assets {
		if asset.Name != OverrideAssetName {
			continue
		}
		body, err := s.Feed.AssetText(ctx, asset.URL)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("asset", asset.Name).Msg("message override fetch failed, using default")
			return ""
		}
		return body
	}
	return ""
}

func timeNow(clock func() time.Time) time.Time {
	if clock == nil {
		return time.Now().UTC()
	}
	return clock().UTC()
}
