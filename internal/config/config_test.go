package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SLACK_USER_TOKEN", "xoxp-env")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-env")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "xoxp-env", cfg.Slack.UserToken)
	assert.Equal(t, "xoxb-env", cfg.Slack.BotToken)
	assert.Equal(t, "https://slack.com/api/", cfg.Slack.APIURL)
	assert.Equal(t, 100, cfg.Slack.PageSize)
	assert.Equal(t, time.Second, cfg.Slack.PageInterval)
	assert.Equal(t, 10*time.Second, cfg.Slack.RateLimitWait)
	assert.Equal(t, 100, cfg.Cleanup.ThresholdDays)
	assert.Equal(t, 7, cfg.Cleanup.SnapshotLagDays)
	assert.True(t, cfg.Cleanup.ShouldSkipShared())
	assert.False(t, cfg.Cleanup.SkipGuest)
	assert.Equal(t, []string{"public_channel"}, cfg.Cleanup.ChannelTypes)
	assert.Equal(t, "ja", cfg.Cleanup.NoticeLanguage)
	assert.False(t, cfg.Publisher.Enabled)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FileWithEnvExpansion(t *testing.T) {
	t.Setenv("JANITOR_BOT", "xoxb-file")

	path := writeConfig(t, `
slack:
  user_token: xoxp-literal
  bot_token: ${JANITOR_BOT}
  page_interval: 250ms
cleanup:
  threshold_days: 30
  skip_shared: false
  skip_guest: true
  notice_language: en
publisher:
  enabled: true
  exchange: custom
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "xoxp-literal", cfg.Slack.UserToken)
	assert.Equal(t, "xoxb-file", cfg.Slack.BotToken)
	assert.Equal(t, 250*time.Millisecond, cfg.Slack.PageInterval)
	assert.Equal(t, 30, cfg.Cleanup.ThresholdDays)
	assert.False(t, cfg.Cleanup.ShouldSkipShared())
	assert.True(t, cfg.Cleanup.SkipGuest)
	assert.Equal(t, "en", cfg.Cleanup.NoticeLanguage)
	assert.True(t, cfg.Publisher.Enabled)
	assert.Equal(t, "custom", cfg.Publisher.Exchange)
	assert.Equal(t, "channel_events", cfg.Publisher.RoutingKey)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "slack: [unterminated")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Slack:   SlackConfig{BotToken: "xoxb"},
		Cleanup: CleanupConfig{ThresholdDays: 10},
	}

	assert.NoError(t, cfg.Validate(false))
	assert.ErrorIs(t, cfg.Validate(true), ErrMissingUserToken)

	cfg.Slack.BotToken = ""
	assert.ErrorIs(t, cfg.Validate(false), ErrMissingBotToken)

	cfg.Slack.BotToken = "xoxb"
	cfg.Cleanup.ThresholdDays = -1
	assert.Error(t, cfg.Validate(false))
}

func TestValidateCleanup_IgnoresTokens(t *testing.T) {
	cfg := &Config{Cleanup: CleanupConfig{ThresholdDays: 10}}

	assert.NoError(t, cfg.ValidateCleanup())
	assert.ErrorIs(t, cfg.Validate(true), ErrMissingUserToken)

	cfg.Cleanup.ThresholdDays = 0
	assert.Error(t, cfg.ValidateCleanup())
}
