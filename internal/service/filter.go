package service

import (
	"github.com/samber/lo"

	"channel_janitor/internal/activity"
	"channel_janitor/internal/domain"
)

// FilterInactive returns the records that pass the shared and guest
// exclusions and are inactive at cfg.ReferenceTime, in snapshot order.
// The result is never nil.
func FilterInactive(records []domain.ChannelAnalyticsRecord, cfg domain.ThresholdConfig) []domain.ChannelAnalyticsRecord {
	return lo.Filter(records, func(r domain.ChannelAnalyticsRecord, _ int) bool {
		if cfg.SkipShared && r.IsSharedExternally {
			return false
		}
		if cfg.SkipGuest && r.GuestMemberCount > 0 {
			return false
		}
		return activity.IsInactiveUnix(r.DateLastActive, cfg.ThresholdDays, cfg.ReferenceTime)
	})
}
