package adapters

import (
	"strings"
	"time"
)

func parseTimeFlexible(value string) time.Time {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

// epochTime converts a numeric epoch to UTC. Values at or above 1e11
// are taken as milliseconds (the notifier's historical on-disk unit),
// smaller positive values as seconds.
func epochTime(value float64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	if value >= 1e11 {
		return time.UnixMilli(int64(value)).UTC()
	}
	return time.Unix(int64(value), 0).UTC()
}
