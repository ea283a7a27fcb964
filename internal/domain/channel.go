package domain

import (
	"fmt"
	"time"
)

// ChannelAnalyticsRecord is one line of the public_channel analytics export.
type ChannelAnalyticsRecord struct {
	ChannelID               string `json:"channel_id"`
	Name                    string `json:"name"`
	TeamID                  string `json:"team_id,omitempty"`
	EnterpriseID            string `json:"enterprise_id,omitempty"`
	Date                    string `json:"date,omitempty"`
	Visibility              string `json:"visibility,omitempty"`
	DateCreated             int64  `json:"date_created,omitempty"`
	DateLastActive          int64  `json:"date_last_active"` // unix seconds
	IsSharedExternally      bool   `json:"is_shared_externally"`
	GuestMemberCount        int    `json:"guest_member_count"`
	MembersCount            int    `json:"members_count,omitempty"`
	MessagesPostedCount     int    `json:"messages_posted_count"`
	MessagesPostedInChannel int    `json:"messages_posted_in_channel_count,omitempty"`
	ReactionsAddedCount     int    `json:"reactions_added_count,omitempty"`
}

// Summary returns the id/name pair of the record.
func (r ChannelAnalyticsRecord) Summary() ChannelSummary {
	return ChannelSummary{ID: r.ChannelID, Name: r.Name}
}

// ChannelSummary identifies a channel the bot belongs to.
type ChannelSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ThresholdConfig is supplied per invocation and never persisted.
type ThresholdConfig struct {
	ThresholdDays int
	ReferenceTime time.Time
	SkipShared    bool
	SkipGuest     bool
	DryRun        bool
}

func (c ThresholdConfig) Validate() error {
	if c.ThresholdDays <= 0 {
		return fmt.Errorf("%w: threshold days must be positive, got %d", ErrInvalidThreshold, c.ThresholdDays)
	}
	if c.ReferenceTime.IsZero() {
		return fmt.Errorf("%w: reference time is not set", ErrInvalidThreshold)
	}
	return nil
}

// Message is the subset of a history entry used to judge activity.
type Message struct {
	Timestamp time.Time
	UserID    string
	BotID     string
	SubType   string
}

// Identity is the acting bot as reported by auth.test.
type Identity struct {
	UserID string
	BotID  string
	TeamID string
}

// Authored reports whether m was posted by the identity.
func (i Identity) Authored(m Message) bool {
	if i.BotID != "" && m.BotID == i.BotID {
		return true
	}
	return i.UserID != "" && m.UserID == i.UserID
}

// CandidateReport is the on-disk shape of the candidate list.
type CandidateReport struct {
	Result []ChannelAnalyticsRecord `json:"result"`
}
