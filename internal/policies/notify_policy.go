package policies

import "time"

// FreshnessWindow is how long a successful check suppresses the next
// one. UpcomingDisplayBudget caps how many times the upcoming-major
// notice is shown before it goes quiet for good.
const (
	FreshnessWindow       = 24 * time.Hour
	UpcomingDisplayBudget = 5
)

type NotifyPolicy struct {
	Window time.Duration
	Budget int
}

func NewNotifyPolicy() NotifyPolicy {
	return NotifyPolicy{
		Window: FreshnessWindow,
		Budget: UpcomingDisplayBudget,
	}
}

// ShouldCheck reports whether the freshness window has elapsed since
// lastCheck. A zero lastCheck (no usable cache) is always stale.
func (p NotifyPolicy) ShouldCheck(lastCheck time.Time, now time.Time) bool {
	if lastCheck.IsZero() {
		return true
	}
	return now.Sub(lastCheck) >= p.Window
}

// CanAnnounceUpcoming reports whether the display budget still permits
// the upcoming-major notice.
func (p NotifyPolicy) CanAnnounceUpcoming(shown int) bool {
	return shown < p.Budget
}
