package service

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"matchmaker/internal/audit"
	"matchmaker/internal/match/models"
	"matchmaker/internal/platform/metrics"
	"matchmaker/internal/storage"
	"matchmaker/pkg/domain"
	dErrors "matchmaker/pkg/domain-errors"
	"matchmaker/pkg/requestcontext"
)

type MatchServiceSuite struct {
	suite.Suite
	ctx     context.Context
	now     time.Time
	events  *audit.InMemoryStore
	metrics *metrics.Metrics
	svc     *Service
}

func (s *MatchServiceSuite) SetupTest() {
	s.now = time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.events = audit.NewInMemoryStore()
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.svc = New(storage.NewInMemoryStore(s.now),
		WithAuditPublisher(audit.NewPublisher(s.events)),
		WithMetrics(s.metrics),
	)
}

func TestMatchServiceSuite(t *testing.T) {
	suite.Run(t, new(MatchServiceSuite))
}

func (s *MatchServiceSuite) TestCreateDemoMatch() {
	m := s.svc.CreateDemoMatch(s.ctx)
	s.Equal("Alex", m.PartnerName)
	s.Equal(models.StatusMatched, m.Status)
	s.Require().Len(m.Messages, 1)
	s.Equal(models.Message{Sender: models.SenderThem, Text: "안녕하세요! 반가워요 :)", SentAt: s.now}, m.Messages[0])

	s.Len(s.svc.List(s.ctx), 1)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.MatchesCreated.WithLabelValues("demo")))

	events, err := s.events.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(audit.ActionMatchCreated, events[0].Action)
	s.Equal(m.ID.String(), events[0].Subject)
}

func (s *MatchServiceSuite) TestSendMessage() {
	m := s.svc.CreateDemoMatch(s.ctx)

	s.Run("trims and appends from me", func() {
		got, err := s.svc.SendMessage(s.ctx, m.ID, "  hello  ")
		s.Require().NoError(err)
		s.Require().Len(got.Messages, 2)
		s.Equal(models.SenderMe, got.Messages[1].Sender)
		s.Equal("hello", got.Messages[1].Text)
	})

	s.Run("blank text is refused", func() {
		_, err := s.svc.SendMessage(s.ctx, m.ID, " \n ")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		got, err := s.svc.Get(s.ctx, m.ID)
		s.Require().NoError(err)
		s.Len(got.Messages, 2)
	})

	s.Run("unknown match is not found and changes nothing", func() {
		_, err := s.svc.SendMessage(s.ctx, domain.NewMatchID(), "hello")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.Len(s.svc.List(s.ctx), 1)
	})

	s.Equal(float64(1), testutil.ToFloat64(s.metrics.MessagesAppended.WithLabelValues("match")))
}

func (s *MatchServiceSuite) TestGetNotFound() {
	_, err := s.svc.Get(s.ctx, domain.NewMatchID())
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *MatchServiceSuite) TestCandidates() {
	cs := s.svc.Candidates()
	s.Require().Len(cs, 3)
	s.Equal("Jamie", cs[0].Name)
	cs[0].Name = "changed"
	s.Equal("Jamie", s.svc.Candidates()[0].Name)
}

func (s *MatchServiceSuite) TestRequestIntro() {
	req, err := s.svc.RequestIntro(s.ctx, "c2")
	s.Require().NoError(err)
	s.Equal("Robin", req.CandidateName)
	s.Equal(s.now, req.RequestedAt)
	s.Len(s.svc.IntroRequests(s.ctx), 1)
	s.Empty(s.svc.List(s.ctx), "an intro request does not create a match")

	_, err = s.svc.RequestIntro(s.ctx, "c9")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *MatchServiceSuite) TestInstantMatch() {
	m, err := s.svc.InstantMatch(s.ctx, "c3")
	s.Require().NoError(err)
	s.Equal("Taylor", m.PartnerName)
	s.Equal("반가워요! ☺️", m.Messages[0].Text)

	second, err := s.svc.InstantMatch(s.ctx, "c3")
	s.Require().NoError(err)
	s.NotEqual(m.ID, second.ID)
	s.Equal(float64(2), testutil.ToFloat64(s.metrics.MatchesCreated.WithLabelValues("discover")))

	_, err = s.svc.InstantMatch(s.ctx, "")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *MatchServiceSuite) TestWithCandidates() {
	svc := New(storage.NewInMemoryStore(s.now), WithCandidates([]models.Candidate{{ID: "x", Name: "Sam"}}))
	m, err := svc.InstantMatch(s.ctx, "x")
	s.Require().NoError(err)
	s.Equal("Sam", m.PartnerName)
}
