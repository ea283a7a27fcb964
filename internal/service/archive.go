package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"channel_janitor/internal/activity"
	"channel_janitor/internal/domain"
)

type ArchiveService struct {
	api          ChannelAPI
	publisher    Publisher
	self         domain.Identity
	historyLimit int
	logger       *slog.Logger
}

func NewArchiveService(
	api ChannelAPI,
	publisher Publisher,
	self domain.Identity,
	historyLimit int,
	logger *slog.Logger,
) *ArchiveService {
	return &ArchiveService{
		api:          api,
		publisher:    publisher,
		self:         self,
		historyLimit: historyLimit,
		logger:       logger.With("component", "archiver"),
	}
}

// Run archives every inactive channel among channels and leaves the ones
// that became active again. Channels without a message from someone other
// than the bot are left untouched. The returned list holds the channels
// decided for archiving, also in dry run. The first failed archive or leave
// aborts the loop.
func (s *ArchiveService) Run(ctx context.Context, channels []domain.ChannelSummary, cfg domain.ThresholdConfig) ([]domain.ChannelSummary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	archived := make([]domain.ChannelSummary, 0)
	stats := domain.RunStats{Found: len(channels)}

	for _, ch := range channels {
		lastActive, ok, err := s.latestActivity(ctx, ch.ID)
		if err != nil {
			return archived, fmt.Errorf("latest activity of %s: %w", ch.ID, err)
		}
		if !ok {
			s.logger.Info("no activity found, skipping", "channel_id", ch.ID, "name", ch.Name)
			stats.Skipped++
			continue
		}

		if activity.IsInactive(lastActive, cfg.ThresholdDays, cfg.ReferenceTime) {
			if !cfg.DryRun {
				if err := s.api.Archive(ctx, ch.ID); err != nil {
					return archived, fmt.Errorf("archive %s (%s): %w", ch.ID, ch.Name, err)
				}
			}
			archived = append(archived, ch)
			stats.Archived++
			s.publish(ctx, domain.ActionArchived, ch, cfg)
			s.logger.Info("archived channel",
				"channel_id", ch.ID,
				"name", ch.Name,
				"last_active", lastActive,
				"dry_run", cfg.DryRun,
			)
			continue
		}

		if !cfg.DryRun {
			if err := s.api.Leave(ctx, ch.ID); err != nil {
				return archived, fmt.Errorf("leave %s (%s): %w", ch.ID, ch.Name, err)
			}
			s.publish(ctx, domain.ActionLeft, ch, cfg)
		}
		stats.Left++
		s.logger.Info("channel is active again, leaving",
			"channel_id", ch.ID,
			"name", ch.Name,
			"last_active", lastActive,
			"dry_run", cfg.DryRun,
		)
	}

	stats.Duration = time.Since(startTime)
	s.logger.Info("archive run completed",
		"channels", stats.Found,
		"archived", stats.Archived,
		"left", stats.Left,
		"skipped", stats.Skipped,
		"dry_run", cfg.DryRun,
		"duration", stats.Duration,
	)

	return archived, nil
}

// latestActivity returns the time of the newest message not authored by
// the bot itself. ok is false when no such message exists.
func (s *ArchiveService) latestActivity(ctx context.Context, channelID string) (time.Time, bool, error) {
	messages, err := s.api.History(ctx, channelID, s.historyLimit)
	if err != nil {
		return time.Time{}, false, err
	}

	for _, m := range messages {
		if s.self.Authored(m) {
			continue
		}
		return m.Timestamp, true, nil
	}
	return time.Time{}, false, nil
}

func (s *ArchiveService) publish(ctx context.Context, action domain.ChannelAction, ch domain.ChannelSummary, cfg domain.ThresholdConfig) {
	publishEvent(ctx, s.publisher, s.logger, action, ch, cfg)
}
