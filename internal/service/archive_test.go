package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"channel_janitor/internal/domain"
	"channel_janitor/internal/service/mocks"
)

type ArchiveServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	api       *mocks.MockChannelAPI
	publisher *mocks.MockPublisher

	service *ArchiveService
	self    domain.Identity
	ref     time.Time
	logger  *slog.Logger
}

func (s *ArchiveServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.api = mocks.NewMockChannelAPI(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.self = domain.Identity{UserID: "U0BOT", BotID: "B0BOT"}
	s.ref = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	s.service = NewArchiveService(s.api, nil, s.self, 20, s.logger)
}

func (s *ArchiveServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestArchiveServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ArchiveServiceTestSuite))
}

func (s *ArchiveServiceTestSuite) cfg(dryRun bool) domain.ThresholdConfig {
	return domain.ThresholdConfig{ThresholdDays: 30, ReferenceTime: s.ref, DryRun: dryRun}
}

func (s *ArchiveServiceTestSuite) msg(daysAgo int, user string) domain.Message {
	return domain.Message{Timestamp: s.ref.AddDate(0, 0, -daysAgo), UserID: user}
}

func (s *ArchiveServiceTestSuite) TestRun_ArchivesInactiveChannels() {
	ctx := context.Background()
	channels := []domain.ChannelSummary{{ID: "C1", Name: "old"}, {ID: "C2", Name: "older"}}

	s.api.EXPECT().History(ctx, "C1", 20).Return([]domain.Message{s.msg(60, "U1")}, nil)
	s.api.EXPECT().History(ctx, "C2", 20).Return([]domain.Message{s.msg(90, "U2")}, nil)
	s.api.EXPECT().Archive(ctx, "C1").Return(nil)
	s.api.EXPECT().Archive(ctx, "C2").Return(nil)

	archived, err := s.service.Run(ctx, channels, s.cfg(false))

	s.NoError(err)
	s.Equal(channels, archived)
}

func (s *ArchiveServiceTestSuite) TestRun_DryRunIssuesNoActions() {
	ctx := context.Background()
	channels := []domain.ChannelSummary{{ID: "C1", Name: "old"}, {ID: "C2", Name: "older"}, {ID: "C3", Name: "busy"}}

	s.api.EXPECT().History(ctx, "C1", 20).Return([]domain.Message{s.msg(60, "U1")}, nil)
	s.api.EXPECT().History(ctx, "C2", 20).Return([]domain.Message{s.msg(90, "U2")}, nil)
	s.api.EXPECT().History(ctx, "C3", 20).Return([]domain.Message{s.msg(1, "U3")}, nil)
	s.api.EXPECT().Archive(gomock.Any(), gomock.Any()).Times(0)
	s.api.EXPECT().Leave(gomock.Any(), gomock.Any()).Times(0)

	archived, err := s.service.Run(ctx, channels, s.cfg(true))

	s.NoError(err)
	s.Equal(channels[:2], archived)
}

func (s *ArchiveServiceTestSuite) TestRun_LeavesChannelThatBecameActive() {
	ctx := context.Background()
	channels := []domain.ChannelSummary{{ID: "C1", Name: "revived"}}

	s.api.EXPECT().History(ctx, "C1", 20).Return([]domain.Message{s.msg(3, "U1")}, nil)
	s.api.EXPECT().Leave(ctx, "C1").Return(nil)

	archived, err := s.service.Run(ctx, channels, s.cfg(false))

	s.NoError(err)
	s.NotNil(archived)
	s.Empty(archived)
}

func (s *ArchiveServiceTestSuite) TestRun_SkipsChannelWithoutMessages() {
	ctx := context.Background()
	channels := []domain.ChannelSummary{{ID: "C1", Name: "empty"}}

	s.api.EXPECT().History(ctx, "C1", 20).Return(nil, nil)

	archived, err := s.service.Run(ctx, channels, s.cfg(false))

	s.NoError(err)
	s.Empty(archived)
}

func (s *ArchiveServiceTestSuite) TestRun_IgnoresOwnMessages() {
	ctx := context.Background()
	channels := []domain.ChannelSummary{{ID: "C1", Name: "bot-only"}, {ID: "C2", Name: "stale"}}

	botNotice := s.msg(0, "")
	botNotice.BotID = "B0BOT"
	botJoin := s.msg(1, "U0BOT")
	botJoin.SubType = "channel_join"

	s.api.EXPECT().History(ctx, "C1", 20).Return([]domain.Message{botNotice, botJoin}, nil)
	s.api.EXPECT().History(ctx, "C2", 20).Return([]domain.Message{botNotice, botJoin, s.msg(200, "U7")}, nil)
	s.api.EXPECT().Archive(ctx, "C2").Return(nil)

	archived, err := s.service.Run(ctx, channels, s.cfg(false))

	s.NoError(err)
	s.Equal([]domain.ChannelSummary{{ID: "C2", Name: "stale"}}, archived)
}

func (s *ArchiveServiceTestSuite) TestRun_BoundaryIsNotInactive() {
	ctx := context.Background()
	channels := []domain.ChannelSummary{{ID: "C1", Name: "edge"}}

	s.api.EXPECT().History(ctx, "C1", 20).Return([]domain.Message{s.msg(30, "U1")}, nil)
	s.api.EXPECT().Leave(ctx, "C1").Return(nil)

	archived, err := s.service.Run(ctx, channels, s.cfg(false))

	s.NoError(err)
	s.Empty(archived)
}

func (s *ArchiveServiceTestSuite) TestRun_ArchiveFailureAbortsLoop() {
	ctx := context.Background()
	channels := []domain.ChannelSummary{{ID: "C1", Name: "a"}, {ID: "C2", Name: "b"}, {ID: "C3", Name: "c"}}

	s.api.EXPECT().History(ctx, "C1", 20).Return([]domain.Message{s.msg(60, "U1")}, nil)
	s.api.EXPECT().Archive(ctx, "C1").Return(nil)
	s.api.EXPECT().History(ctx, "C2", 20).Return([]domain.Message{s.msg(60, "U1")}, nil)
	s.api.EXPECT().Archive(ctx, "C2").Return(&domain.APIError{Method: "conversations.archive", Code: "cant_archive_general"})

	archived, err := s.service.Run(ctx, channels, s.cfg(false))

	s.ErrorIs(err, domain.ErrUpstream)
	s.Contains(err.Error(), "archive C2")
	s.Equal([]domain.ChannelSummary{{ID: "C1", Name: "a"}}, archived)
}

func (s *ArchiveServiceTestSuite) TestRun_LeaveFailureAbortsLoop() {
	ctx := context.Background()
	channels := []domain.ChannelSummary{{ID: "C1", Name: "a"}, {ID: "C2", Name: "b"}}

	s.api.EXPECT().History(ctx, "C1", 20).Return([]domain.Message{s.msg(1, "U1")}, nil)
	s.api.EXPECT().Leave(ctx, "C1").Return(&domain.APIError{Method: "conversations.leave", Code: "token_expired"})

	_, err := s.service.Run(ctx, channels, s.cfg(false))

	s.ErrorIs(err, domain.ErrAuthFatal)
}

func (s *ArchiveServiceTestSuite) TestRun_HistoryErrorPropagates() {
	ctx := context.Background()
	channels := []domain.ChannelSummary{{ID: "C1", Name: "a"}}

	s.api.EXPECT().History(ctx, "C1", 20).Return(nil, &domain.APIError{Method: "conversations.history", Code: "channel_not_found"})

	_, err := s.service.Run(ctx, channels, s.cfg(false))

	s.ErrorIs(err, domain.ErrUpstream)
}

func (s *ArchiveServiceTestSuite) TestRun_InvalidThreshold() {
	_, err := s.service.Run(context.Background(), nil, domain.ThresholdConfig{ReferenceTime: s.ref})

	s.ErrorIs(err, domain.ErrInvalidThreshold)
}

func (s *ArchiveServiceTestSuite) TestRun_PublishesEvents() {
	ctx := context.Background()
	service := NewArchiveService(s.api, s.publisher, s.self, 20, s.logger)
	channels := []domain.ChannelSummary{{ID: "C1", Name: "old"}, {ID: "C2", Name: "busy"}}

	s.api.EXPECT().History(ctx, "C1", 20).Return([]domain.Message{s.msg(60, "U1")}, nil)
	s.api.EXPECT().Archive(ctx, "C1").Return(nil)
	s.api.EXPECT().History(ctx, "C2", 20).Return([]domain.Message{s.msg(1, "U1")}, nil)
	s.api.EXPECT().Leave(ctx, "C2").Return(nil)

	s.publisher.EXPECT().Publish(ctx, domain.ChannelEvent{
		Action:        domain.ActionArchived,
		Channel:       channels[0],
		ThresholdDays: 30,
	}).Return(nil)
	s.publisher.EXPECT().Publish(ctx, domain.ChannelEvent{
		Action:        domain.ActionLeft,
		Channel:       channels[1],
		ThresholdDays: 30,
	}).Return(context.DeadlineExceeded)

	archived, err := service.Run(ctx, channels, s.cfg(false))

	s.NoError(err)
	s.Equal(channels[:1], archived)
}
