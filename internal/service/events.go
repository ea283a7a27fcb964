package service

import (
	"context"
	"log/slog"

	"channel_janitor/internal/domain"
)

// publishEvent is best effort: a nil publisher or a failed publish never
// affects the run.
func publishEvent(
	ctx context.Context,
	p Publisher,
	logger *slog.Logger,
	action domain.ChannelAction,
	ch domain.ChannelSummary,
	cfg domain.ThresholdConfig,
) {
	if p == nil {
		return
	}

	err := p.Publish(ctx, domain.ChannelEvent{
		Action:        action,
		Channel:       ch,
		ThresholdDays: cfg.ThresholdDays,
		DryRun:        cfg.DryRun,
	})
	if err != nil {
		logger.Warn("failed to publish channel event",
			"channel_id", ch.ID,
			"action", action,
			"error", err,
		)
	}
}
