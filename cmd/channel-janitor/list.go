package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"channel_janitor/internal/domain"
	"channel_janitor/internal/service"
	"channel_janitor/internal/source/analytics"
	"channel_janitor/internal/source/slackapi"
)

func (a *app) listCommand() *cobra.Command {
	var (
		thresholdDays int
		notify        bool
		output        string
		dryRun        bool
		date          string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inactive channels, join them and optionally post a notice",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("threshold-days") {
				cfg.Cleanup.ThresholdDays = thresholdDays
			}
			validate := func() error { return cfg.Validate(true) }
			if dryRun {
				validate = cfg.ValidateCleanup
			}
			if err := validate(); err != nil {
				return err
			}

			now := time.Now()
			snapshotDate := now.AddDate(0, 0, -cfg.Cleanup.SnapshotLagDays)
			if date != "" {
				parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return fmt.Errorf("parse --date: %w", err)
				}
				snapshotDate = parsed
			}

			source := analytics.New(analytics.Config{
				APIURL:  cfg.Slack.APIURL,
				Token:   cfg.Slack.UserToken,
				Timeout: cfg.Slack.Timeout,
				DryRun:  dryRun,
			}, a.logger)

			bot := slackapi.New(slackapi.Config{
				APIURL:  cfg.Slack.APIURL,
				Token:   cfg.Slack.BotToken,
				Timeout: cfg.Slack.Timeout,
			}, a.logger)

			pub, closePub := a.publisher()
			defer closePub()

			svc := service.NewCleanupService(source, bot, pub, a.logger)
			result, err := svc.List(cmd.Context(), service.ListOptions{
				Threshold: domain.ThresholdConfig{
					ThresholdDays: cfg.Cleanup.ThresholdDays,
					ReferenceTime: now,
					SkipShared:    cfg.Cleanup.ShouldSkipShared(),
					SkipGuest:     cfg.Cleanup.SkipGuest,
					DryRun:        dryRun,
				},
				SnapshotDate:    snapshotDate,
				Notify:          notify,
				OutputPath:      output,
				Language:        cfg.Cleanup.NoticeLanguage,
				MentionMembers:  cfg.Cleanup.MentionMembers,
				MembersPageSize: cfg.Slack.MembersPageSize,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Found %d channels\n", len(result.Candidates))
			if len(result.Candidates) == 0 {
				fmt.Fprintln(out, "No channels found")
				return nil
			}
			fmt.Fprintf(out, "Joined %d channels\n", len(result.Joined))
			if notify {
				fmt.Fprintf(out, "Notified %d channels\n", result.Stats.Notified)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&thresholdDays, "threshold-days", 100, "days without activity before a channel is a candidate")
	cmd.Flags().BoolVar(&notify, "notify", false, "post a notice to every joined channel")
	cmd.Flags().StringVar(&output, "output", "", "write the candidate list as JSON to this path")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "skip the analytics export and all joins")
	cmd.Flags().StringVar(&date, "date", "", "snapshot date (YYYY-MM-DD), defaults to a week ago")

	return cmd
}
