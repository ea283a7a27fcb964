package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/slack-go/slack"

	"channel_janitor/internal/domain"
)

type AnalyticsSource interface {
	Fetch(ctx context.Context, date time.Time) ([]domain.ChannelAnalyticsRecord, error)
}

type ConversationLister interface {
	ListConversations(ctx context.Context, types []string, cursor string, limit int) (domain.ConversationPage, error)
}

type ChannelAPI interface {
	History(ctx context.Context, channelID string, limit int) ([]domain.Message, error)
	Members(ctx context.Context, channelID, cursor string, limit int) ([]string, string, error)
	Join(ctx context.Context, channelID string) error
	Leave(ctx context.Context, channelID string) error
	Archive(ctx context.Context, channelID string) error
	PostMessage(ctx context.Context, channelID string, blocks []slack.Block) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.ChannelEvent) error
	Close() error
}
