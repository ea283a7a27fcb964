package analytics

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"channel_janitor/internal/domain"
)

const (
	SourceID   = "admin.analytics.getFile"
	ExportType = "public_channel"

	gzipContentType = "application/gzip"
	dateLayout      = "2006-01-02"
	maxLineSize     = 1 << 20
)

// Config holds analytics export configuration.
type Config struct {
	APIURL  string
	Token   string
	Timeout time.Duration
	DryRun  bool
}

// Source downloads the daily channel analytics export.
type Source struct {
	httpClient *http.Client
	apiURL     string
	token      string
	dryRun     bool
	logger     *slog.Logger
}

// New creates a new analytics source.
func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		apiURL: strings.TrimRight(cfg.APIURL, "/") + "/",
		token:  cfg.Token,
		dryRun: cfg.DryRun,
		logger: logger.With("source", SourceID),
	}
}

// Fetch returns the snapshot for date. In dry run mode no request is made
// and the snapshot is empty.
func (s *Source) Fetch(ctx context.Context, date time.Time) ([]domain.ChannelAnalyticsRecord, error) {
	if s.dryRun {
		s.logger.Info("dry run, skipping analytics export", "date", date.Format(dateLayout))
		return []domain.ChannelAnalyticsRecord{}, nil
	}

	payload, err := s.download(ctx, date)
	if err != nil {
		return nil, err
	}

	records, err := s.parse(payload)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("fetched analytics export",
		"date", date.Format(dateLayout),
		"records", len(records),
	)

	return records, nil
}

func (s *Source) download(ctx context.Context, date time.Time) ([]byte, error) {
	form := url.Values{}
	form.Set("type", ExportType)
	form.Set("date", date.Format(dateLayout))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+SourceID, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "ChannelJanitor/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &domain.APIError{Method: SourceID, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.APIError{Method: SourceID, Err: fmt.Errorf("read body: %w", err)}
	}

	contentType := resp.Header.Get("Content-Type")
	mediaType, _, _ := mime.ParseMediaType(contentType)

	if mediaType == "application/json" {
		var apiErr ErrorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && !apiErr.OK {
			return nil, &domain.APIError{Method: SourceID, Code: apiErr.Error}
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.APIError{
			Method: SourceID,
			Code:   fmt.Sprintf("http_%d", resp.StatusCode),
		}
	}

	if mediaType != gzipContentType {
		return nil, fmt.Errorf("%w: unexpected content type %q", domain.ErrInvalidFormat, contentType)
	}

	return body, nil
}

func (s *Source) parse(payload []byte) ([]domain.ChannelAnalyticsRecord, error) {
	zr, err := gzip.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: open gzip: %v", domain.ErrInvalidFormat, err)
	}
	defer zr.Close()

	scanner := bufio.NewScanner(zr)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	records := make([]domain.ChannelAnalyticsRecord, 0)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		var r Record
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrInvalidFormat, line, err)
		}
		if r.ChannelID == "" {
			return nil, fmt.Errorf("%w: line %d: missing channel_id", domain.ErrInvalidFormat, line)
		}
		if r.DateLastActive == nil {
			s.logger.Warn("record without last activity, ignoring",
				"channel_id", r.ChannelID,
				"name", r.Name,
			)
			continue
		}

		records = append(records, transform(r))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read export: %v", domain.ErrInvalidFormat, err)
	}

	return records, nil
}

func transform(r Record) domain.ChannelAnalyticsRecord {
	guests := r.GuestMemberCount
	if guests == 0 {
		guests = r.GuestMembersCount
	}

	return domain.ChannelAnalyticsRecord{
		ChannelID:               r.ChannelID,
		Name:                    r.Name,
		TeamID:                  r.TeamID,
		EnterpriseID:            r.EnterpriseID,
		Date:                    r.Date,
		Visibility:              r.Visibility,
		DateCreated:             r.DateCreated,
		DateLastActive:          *r.DateLastActive,
		IsSharedExternally:      r.IsSharedExternally,
		GuestMemberCount:        guests,
		MembersCount:            r.MembersCount,
		MessagesPostedCount:     r.MessagesPostedCount,
		MessagesPostedInChannel: r.MessagesPostedInChannelCount,
		ReactionsAddedCount:     r.ReactionsAddedCount,
	}
}
