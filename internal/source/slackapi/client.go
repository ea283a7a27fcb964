// Package slackapi adapts the Slack Web API client to the domain types used
// by the cleanup services.
package slackapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"channel_janitor/internal/domain"
)

// Config holds Slack Web API client configuration.
type Config struct {
	APIURL  string
	Token   string
	Timeout time.Duration
}

// Client wraps slack.Client and translates its errors.
type Client struct {
	api    *slack.Client
	logger *slog.Logger
}

// New creates a new Slack Web API client.
func New(cfg Config, logger *slog.Logger) *Client {
	opts := []slack.Option{
		slack.OptionHTTPClient(&http.Client{
			Timeout:   cfg.Timeout,
			Transport: retryAfterTransport{base: http.DefaultTransport},
		}),
	}
	if cfg.APIURL != "" {
		opts = append(opts, slack.OptionAPIURL(strings.TrimRight(cfg.APIURL, "/")+"/"))
	}

	return &Client{
		api:    slack.New(cfg.Token, opts...),
		logger: logger.With("component", "slackapi"),
	}
}

// retryAfterTransport rewrites a missing or malformed Retry-After on a 429
// to "0", so slack.Client reports a RateLimitedError instead of a parse
// error and the caller applies its own default wait.
type retryAfterTransport struct {
	base http.RoundTripper
}

func (t retryAfterTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil || resp.StatusCode != http.StatusTooManyRequests {
		return resp, err
	}

	if _, perr := strconv.ParseInt(resp.Header.Get("Retry-After"), 10, 64); perr != nil {
		if resp.Header == nil {
			resp.Header = make(http.Header)
		}
		resp.Header.Set("Retry-After", "0")
	}
	return resp, nil
}

// Identity resolves the user and bot IDs behind the token.
func (c *Client) Identity(ctx context.Context) (domain.Identity, error) {
	resp, err := c.api.AuthTestContext(ctx)
	if err != nil {
		return domain.Identity{}, wrapErr("auth.test", err)
	}

	return domain.Identity{
		UserID: resp.UserID,
		BotID:  resp.BotID,
		TeamID: resp.TeamID,
	}, nil
}

// ListConversations fetches a single page of non-archived conversations.
func (c *Client) ListConversations(ctx context.Context, types []string, cursor string, limit int) (domain.ConversationPage, error) {
	channels, next, err := c.api.GetConversationsContext(ctx, &slack.GetConversationsParameters{
		Cursor:          cursor,
		ExcludeArchived: true,
		Limit:           limit,
		Types:           types,
	})
	if err != nil {
		return domain.ConversationPage{}, wrapErr("conversations.list", err)
	}

	page := domain.ConversationPage{
		Channels:   make([]domain.Conversation, 0, len(channels)),
		NextCursor: next,
	}
	for _, ch := range channels {
		page.Channels = append(page.Channels, domain.Conversation{
			ID:       ch.ID,
			Name:     ch.Name,
			IsMember: ch.IsMember,
		})
	}

	return page, nil
}

// History returns up to limit messages of a channel, newest first.
func (c *Client) History(ctx context.Context, channelID string, limit int) ([]domain.Message, error) {
	resp, err := c.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Limit:     limit,
	})
	if err != nil {
		return nil, wrapErr("conversations.history", err)
	}

	messages := make([]domain.Message, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		ts, err := ParseTimestamp(m.Timestamp)
		if err != nil {
			c.logger.Warn("skipping message with bad timestamp",
				"channel_id", channelID,
				"ts", m.Timestamp,
			)
			continue
		}
		messages = append(messages, domain.Message{
			Timestamp: ts,
			UserID:    m.User,
			BotID:     m.BotID,
			SubType:   m.SubType,
		})
	}

	return messages, nil
}

// Members returns one page of member user IDs.
func (c *Client) Members(ctx context.Context, channelID, cursor string, limit int) ([]string, string, error) {
	members, next, err := c.api.GetUsersInConversationContext(ctx, &slack.GetUsersInConversationParameters{
		ChannelID: channelID,
		Cursor:    cursor,
		Limit:     limit,
	})
	if err != nil {
		return nil, "", wrapErr("conversations.members", err)
	}
	return members, next, nil
}

func (c *Client) Join(ctx context.Context, channelID string) error {
	if _, _, _, err := c.api.JoinConversationContext(ctx, channelID); err != nil {
		return wrapErr("conversations.join", err)
	}
	return nil
}

func (c *Client) Leave(ctx context.Context, channelID string) error {
	if _, err := c.api.LeaveConversationContext(ctx, channelID); err != nil {
		return wrapErr("conversations.leave", err)
	}
	return nil
}

func (c *Client) Archive(ctx context.Context, channelID string) error {
	if err := c.api.ArchiveConversationContext(ctx, channelID); err != nil {
		return wrapErr("conversations.archive", err)
	}
	return nil
}

// PostMessage posts blocks to a channel.
func (c *Client) PostMessage(ctx context.Context, channelID string, blocks []slack.Block) error {
	_, _, err := c.api.PostMessageContext(ctx, channelID, slack.MsgOptionBlocks(blocks...))
	if err != nil {
		return wrapErr("chat.postMessage", err)
	}
	return nil
}

// ParseTimestamp converts a message ts such as "1700000000.000200".
func ParseTimestamp(ts string) (time.Time, error) {
	secPart, fracPart, _ := strings.Cut(ts, ".")

	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse ts %q: %w", ts, err)
	}

	var nsec int64
	if fracPart != "" {
		if len(fracPart) > 9 {
			fracPart = fracPart[:9]
		}
		fracPart += strings.Repeat("0", 9-len(fracPart))
		nsec, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse ts %q: %w", ts, err)
		}
	}

	return time.Unix(sec, nsec), nil
}

func wrapErr(method string, err error) error {
	var rl *slack.RateLimitedError
	if errors.As(err, &rl) {
		return &domain.RateLimitError{Method: method, RetryAfter: rl.RetryAfter}
	}

	var se slack.SlackErrorResponse
	if errors.As(err, &se) {
		return &domain.APIError{Method: method, Code: se.Err, Err: err}
	}

	// Older responses surface the bare error code as the message.
	code := ""
	if msg := err.Error(); msg != "" && !strings.ContainsAny(msg, " :") {
		code = msg
	}
	return &domain.APIError{Method: method, Code: code, Err: err}
}
