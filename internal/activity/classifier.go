// Package activity decides whether a channel is considered inactive.
package activity

import "time"

// IsInactive reports whether lastActive plus thresholdDays lies strictly
// before ref. A channel whose deadline equals ref is still active. Days are
// counted in ref's location.
func IsInactive(lastActive time.Time, thresholdDays int, ref time.Time) bool {
	deadline := lastActive.In(ref.Location()).AddDate(0, 0, thresholdDays)
	return deadline.Before(ref)
}

// IsInactiveUnix is IsInactive for a unix seconds timestamp.
func IsInactiveUnix(lastActive int64, thresholdDays int, ref time.Time) bool {
	return IsInactive(time.Unix(lastActive, 0), thresholdDays, ref)
}
