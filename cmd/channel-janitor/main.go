package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"

	"channel_janitor/internal/config"
	"channel_janitor/internal/publisher"
	"channel_janitor/internal/service"
)

type app struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
	closeLog   func()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a := &app{closeLog: func() {}}
	root := a.rootCommand()

	err := root.ExecuteContext(ctx)
	a.closeLog()
	if err != nil {
		if a.logger != nil {
			a.logger.Error("run failed", "error", err)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "channel-janitor",
		Short: "Find, announce and archive inactive Slack channels",
		Long: `Finds public channels without activity for a number of days using the
workspace analytics export, joins them to announce the upcoming archive,
and later archives the ones that stayed inactive.

Requires SLACK_USER_TOKEN (admin.analytics:read) for listing and
SLACK_BOT_TOKEN (channels:join, channels:history, channels:manage,
chat:write) for joining, posting and archiving.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			logger, closeLog, err := setupLogger(cfg.LogLevel, cfg.LogFile)
			if err != nil {
				return err
			}
			a.cfg, a.logger, a.closeLog = cfg, logger, closeLog
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "config.yaml", "path to config file")
	root.AddCommand(a.listCommand(), a.archiveCommand())

	return root
}

// publisher returns a nil Publisher when events are disabled or the broker
// cannot be reached. Events are best effort and never stop a run.
func (a *app) publisher() (service.Publisher, func()) {
	if !a.cfg.Publisher.Enabled {
		return nil, func() {}
	}

	pub, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        a.cfg.Publisher.URL,
		Exchange:   a.cfg.Publisher.Exchange,
		RoutingKey: a.cfg.Publisher.RoutingKey,
		QueueName:  a.cfg.Publisher.QueueName,
	}, a.logger)
	if err != nil {
		a.logger.Warn("publisher unavailable, continuing without events", "error", err)
		return nil, func() {}
	}
	return pub, func() { _ = pub.Close() }
}

func setupLogger(level, file string) (*slog.Logger, func(), error) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handlers := []slog.Handler{slog.NewJSONHandler(os.Stderr, opts)}
	closeLog := func() {}

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
		closeLog = func() { _ = f.Close() }
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeLog, nil
}
