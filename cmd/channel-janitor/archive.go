package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"channel_janitor/internal/domain"
	"channel_janitor/internal/service"
	"channel_janitor/internal/source/slackapi"
)

func (a *app) archiveCommand() *cobra.Command {
	var (
		thresholdDays int
		dryRun        bool
	)

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Archive joined channels that are still inactive and leave the rest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("threshold-days") {
				cfg.Cleanup.ThresholdDays = thresholdDays
			}
			if err := cfg.Validate(false); err != nil {
				return err
			}

			ctx := cmd.Context()
			bot := slackapi.New(slackapi.Config{
				APIURL:  cfg.Slack.APIURL,
				Token:   cfg.Slack.BotToken,
				Timeout: cfg.Slack.Timeout,
			}, a.logger)

			self, err := bot.Identity(ctx)
			if err != nil {
				return fmt.Errorf("resolve bot identity: %w", err)
			}

			pub, closePub := a.publisher()
			defer closePub()

			enumerator := service.NewEnumerator(bot, service.EnumeratorConfig{
				PageSize:      cfg.Slack.PageSize,
				PageInterval:  cfg.Slack.PageInterval,
				RateLimitWait: cfg.Slack.RateLimitWait,
			}, a.logger)

			channels, err := enumerator.ListJoined(ctx, cfg.Cleanup.ChannelTypes)
			if err != nil {
				return err
			}
			a.logger.Info("joined channels", "count", len(channels))

			archiver := service.NewArchiveService(bot, pub, self, cfg.Slack.HistoryLimit, a.logger)
			archived, err := archiver.Run(ctx, channels, domain.ThresholdConfig{
				ThresholdDays: cfg.Cleanup.ThresholdDays,
				ReferenceTime: time.Now(),
				DryRun:        dryRun,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Archived %d channels\n", len(archived))
			return nil
		},
	}

	cmd.Flags().IntVar(&thresholdDays, "threshold-days", 100, "days without activity before a joined channel is archived")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report decisions without archiving or leaving")

	return cmd
}
