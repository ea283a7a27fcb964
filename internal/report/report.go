// Package report persists the candidate list for operators.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"

	"channel_janitor/internal/domain"
)

// Save writes records as {"result": [...]} to path.
func Save(path string, records []domain.ChannelAnalyticsRecord) error {
	if records == nil {
		records = []domain.ChannelAnalyticsRecord{}
	}

	body, err := json.MarshalIndent(domain.CandidateReport{Result: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	if err := os.WriteFile(path, append(body, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Load reads a report written by Save.
func Load(path string) ([]domain.ChannelAnalyticsRecord, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	var r domain.CandidateReport
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("%w: parse report: %v", domain.ErrInvalidFormat, err)
	}
	if r.Result == nil {
		r.Result = []domain.ChannelAnalyticsRecord{}
	}
	return r.Result, nil
}

// ChannelIDs lists the channel IDs of records in order.
func ChannelIDs(records []domain.ChannelAnalyticsRecord) []string {
	return lo.Map(records, func(r domain.ChannelAnalyticsRecord, _ int) string {
		return r.ChannelID
	})
}
