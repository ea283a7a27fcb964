package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"channel_janitor/internal/domain"
	"channel_janitor/internal/notice"
	"channel_janitor/internal/report"
)

// ListOptions configures one candidate listing run.
type ListOptions struct {
	Threshold       domain.ThresholdConfig
	SnapshotDate    time.Time
	Notify          bool
	OutputPath      string
	Language        string
	MentionMembers  bool
	MembersPageSize int
}

// ListResult is the outcome of a listing run.
type ListResult struct {
	Candidates []domain.ChannelAnalyticsRecord
	Joined     []domain.ChannelSummary
	Stats      domain.RunStats
}

// CleanupService finds inactive channels, joins them and posts a notice.
type CleanupService struct {
	source    AnalyticsSource
	api       ChannelAPI
	publisher Publisher
	logger    *slog.Logger
}

func NewCleanupService(source AnalyticsSource, api ChannelAPI, publisher Publisher, logger *slog.Logger) *CleanupService {
	return &CleanupService{
		source:    source,
		api:       api,
		publisher: publisher,
		logger:    logger.With("component", "cleanup"),
	}
}

// List runs fetch, filter, join and notify. A credential error while
// joining or notifying halts the run; other per-channel errors are logged
// and counted.
func (s *CleanupService) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	if err := opts.Threshold.Validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	s.logger.Info("starting candidate listing",
		"snapshot_date", opts.SnapshotDate.Format("2006-01-02"),
		"threshold_days", opts.Threshold.ThresholdDays,
		"skip_shared", opts.Threshold.SkipShared,
		"skip_guest", opts.Threshold.SkipGuest,
		"dry_run", opts.Threshold.DryRun,
	)

	records, err := s.source.Fetch(ctx, opts.SnapshotDate)
	if err != nil {
		return nil, fmt.Errorf("fetch analytics: %w", err)
	}
	s.logger.Info("fetched channel analytics", "count", len(records))

	result := &ListResult{
		Candidates: FilterInactive(records, opts.Threshold),
		Joined:     make([]domain.ChannelSummary, 0),
	}
	result.Stats.Found = len(result.Candidates)
	s.logger.Info("inactive channels found",
		"count", result.Stats.Found,
		"channel_ids", report.ChannelIDs(result.Candidates),
	)

	if opts.OutputPath != "" {
		if err := report.Save(opts.OutputPath, result.Candidates); err != nil {
			return result, err
		}
		s.logger.Info("saved candidate list", "path", opts.OutputPath)
	}

	for _, c := range result.Candidates {
		s.publish(ctx, domain.ActionCandidate, c.Summary(), opts.Threshold)
	}

	if len(result.Candidates) == 0 || opts.Threshold.DryRun {
		result.Stats.Duration = time.Since(startTime)
		return result, nil
	}

	if err := s.join(ctx, result, opts.Threshold); err != nil {
		return result, err
	}

	if opts.Notify {
		if err := s.notify(ctx, result, opts); err != nil {
			return result, err
		}
	}

	result.Stats.Duration = time.Since(startTime)
	s.logger.Info("candidate listing completed",
		"found", result.Stats.Found,
		"joined", result.Stats.Joined,
		"notified", result.Stats.Notified,
		"errors", result.Stats.Errors,
		"duration", result.Stats.Duration,
	)

	return result, nil
}

func (s *CleanupService) join(ctx context.Context, result *ListResult, threshold domain.ThresholdConfig) error {
	for _, c := range result.Candidates {
		ch := c.Summary()
		if err := s.api.Join(ctx, ch.ID); err != nil {
			if errors.Is(err, domain.ErrAuthFatal) {
				return fmt.Errorf("join %s: %w", ch.ID, err)
			}
			result.Stats.Errors++
			s.logger.Warn("failed to join channel",
				"channel_id", ch.ID,
				"name", ch.Name,
				"error", err,
			)
			continue
		}

		result.Joined = append(result.Joined, ch)
		result.Stats.Joined++
		s.publish(ctx, domain.ActionJoined, ch, threshold)
	}
	return nil
}

func (s *CleanupService) notify(ctx context.Context, result *ListResult, opts ListOptions) error {
	for _, ch := range result.Joined {
		if err := s.notifyChannel(ctx, ch, opts); err != nil {
			if errors.Is(err, domain.ErrAuthFatal) {
				return fmt.Errorf("notify %s: %w", ch.ID, err)
			}
			result.Stats.Errors++
			s.logger.Warn("failed to notify channel",
				"channel_id", ch.ID,
				"name", ch.Name,
				"error", err,
			)
			continue
		}
		result.Stats.Notified++
	}
	return nil
}

func (s *CleanupService) notifyChannel(ctx context.Context, ch domain.ChannelSummary, opts ListOptions) error {
	blocks := notice.Format(ch.Name, opts.Threshold.ThresholdDays, opts.Language)
	if err := s.api.PostMessage(ctx, ch.ID, blocks); err != nil {
		return err
	}

	if !opts.MentionMembers {
		return nil
	}

	members, err := s.members(ctx, ch.ID, opts.MembersPageSize)
	if err != nil {
		return err
	}
	return s.api.PostMessage(ctx, ch.ID, notice.MentionBlocks(members))
}

func (s *CleanupService) members(ctx context.Context, channelID string, pageSize int) ([]string, error) {
	var members []string
	cursor := ""
	for {
		page, next, err := s.api.Members(ctx, channelID, cursor, pageSize)
		if err != nil {
			return nil, fmt.Errorf("list members: %w", err)
		}
		members = append(members, page...)
		if next == "" {
			return members, nil
		}
		cursor = next
	}
}

func (s *CleanupService) publish(ctx context.Context, action domain.ChannelAction, ch domain.ChannelSummary, cfg domain.ThresholdConfig) {
	publishEvent(ctx, s.publisher, s.logger, action, ch, cfg)
}
