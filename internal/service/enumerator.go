package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"channel_janitor/internal/domain"
)

const defaultRateLimitWait = 10 * time.Second

// EnumeratorConfig controls paging of conversations.list.
type EnumeratorConfig struct {
	PageSize      int
	PageInterval  time.Duration
	RateLimitWait time.Duration
}

// Enumerator lists the channels the acting identity is a member of.
type Enumerator struct {
	lister      ConversationLister
	pacer       *rate.Limiter
	pageSize    int
	defaultWait time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
	logger      *slog.Logger
}

func NewEnumerator(lister ConversationLister, cfg EnumeratorConfig, logger *slog.Logger) *Enumerator {
	wait := cfg.RateLimitWait
	if wait <= 0 {
		wait = defaultRateLimitWait
	}

	return &Enumerator{
		lister:      lister,
		pacer:       rate.NewLimiter(rate.Every(cfg.PageInterval), 1),
		pageSize:    cfg.PageSize,
		defaultWait: wait,
		sleep:       sleepContext,
		logger:      logger.With("component", "enumerator"),
	}
}

// ListJoined pages through conversations.list until the cursor is empty.
// Any failure discards the pages collected so far.
func (e *Enumerator) ListJoined(ctx context.Context, types []string) ([]domain.ChannelSummary, error) {
	channels := make([]domain.ChannelSummary, 0)
	cursor := ""

	for page := 0; ; page++ {
		if err := e.pacer.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := e.fetchPage(ctx, types, cursor)
		if err != nil {
			return nil, fmt.Errorf("list conversations page %d: %w", page, err)
		}

		for _, ch := range resp.Channels {
			if ch.IsMember {
				channels = append(channels, domain.ChannelSummary{ID: ch.ID, Name: ch.Name})
			}
		}

		e.logger.Debug("fetched page",
			"page", page,
			"channels", len(resp.Channels),
			"joined", len(channels),
		)

		if resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}

	return channels, nil
}

// fetchPage retries a rate limited request exactly once.
func (e *Enumerator) fetchPage(ctx context.Context, types []string, cursor string) (domain.ConversationPage, error) {
	resp, err := e.lister.ListConversations(ctx, types, cursor, e.pageSize)
	rl, limited := domain.IsRateLimited(err)
	if !limited {
		return resp, err
	}

	wait := rl.RetryAfter
	if wait <= 0 {
		wait = e.defaultWait
	}
	e.logger.Warn("rate limited, retrying once", "wait", wait)

	if err := e.sleep(ctx, wait); err != nil {
		return domain.ConversationPage{}, err
	}

	resp, err = e.lister.ListConversations(ctx, types, cursor, e.pageSize)
	if _, limited := domain.IsRateLimited(err); limited {
		return domain.ConversationPage{}, fmt.Errorf("%w: still rate limited after retry: %w", domain.ErrUpstream, err)
	}
	return resp, err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
