package domain

import "time"

type ChannelAction string

const (
	ActionCandidate ChannelAction = "candidate"
	ActionJoined    ChannelAction = "joined"
	ActionArchived  ChannelAction = "archived"
	ActionLeft      ChannelAction = "left"
)

// ChannelEvent describes a decision taken on a channel during a run.
type ChannelEvent struct {
	Action        ChannelAction  `json:"action"`
	Channel       ChannelSummary `json:"channel"`
	ThresholdDays int            `json:"threshold_days"`
	DryRun        bool           `json:"dry_run"`
	Timestamp     time.Time      `json:"timestamp"`
}

// RunStats holds counters of one batch run.
type RunStats struct {
	Found    int
	Joined   int
	Notified int
	Archived int
	Left     int
	Skipped  int
	Errors   int
	Duration time.Duration
}
