package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"matchmaker/internal/audit"
	"matchmaker/internal/onboarding/models"
	"matchmaker/internal/platform/metrics"
	profilemodels "matchmaker/internal/profile/models"
	"matchmaker/internal/storage"
	"matchmaker/pkg/domain"
	dErrors "matchmaker/pkg/domain-errors"
	"matchmaker/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	now     time.Time
	store   *storage.InMemoryStore
	events  *audit.InMemoryStore
	metrics *metrics.Metrics
	svc     *Service
}

func (s *ServiceSuite) SetupTest() {
	s.now = time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(requestcontext.WithRequestID(context.Background(), "req-1"), s.now)
	s.store = storage.NewInMemoryStore(s.now)
	s.events = audit.NewInMemoryStore()
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.svc = New(s.store, models.Policy{IntroCadence: 72 * time.Hour, FeeKRW: 29000, Terms: []string{"3일마다 소개"}},
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithAuditPublisher(audit.NewPublisher(s.events)),
		WithMetrics(s.metrics),
	)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) toProfilePending() {
	_, err := s.svc.Start(s.ctx)
	s.Require().NoError(err)
	_, err = s.svc.Login(s.ctx, domain.LoginProviderKakao)
	s.Require().NoError(err)
	_, err = s.svc.AgreePolicy(s.ctx)
	s.Require().NoError(err)
}

// TestHappyPath walks every screen in order.
func (s *ServiceSuite) TestHappyPath() {
	state, err := s.svc.Start(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.StageLogin, state.Stage)

	state, err = s.svc.Login(s.ctx, domain.LoginProviderGoogle)
	s.Require().NoError(err)
	s.Equal(models.StagePolicy, state.Stage)
	s.Equal(domain.LoginProviderGoogle, state.LoginProvider)

	state, err = s.svc.AgreePolicy(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.StageProfilePending, state.Stage)

	state, err = s.svc.SubmitProfile(s.ctx, profilemodels.Submission{Name: "Alex", MBTI: "ENFP", Answers: "주말엔 등산"})
	s.Require().NoError(err)
	s.Equal(models.StageUnderReview, state.Stage)
	s.Equal("주말엔 등산", state.Profile.Answers)
	s.False(state.Approved)

	state, err = s.svc.Approve(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.StageAuthed, state.Stage)
	s.True(state.Approved)

	events, err := s.events.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(events, 5)
	s.Equal(audit.ActionStageAdvanced, events[0].Action)
	s.Equal("intro", events[0].From)
	s.Equal("login", events[0].To)
	s.Equal("req-1", events[0].RequestID)
	s.Equal(s.now, events[0].Timestamp)

	s.Equal(float64(1), testutil.ToFloat64(s.metrics.StageTransitions.WithLabelValues("authed")))
	s.Equal(float64(5), testutil.ToFloat64(s.metrics.CurrentStageRank))
}

// TestWrongStage verifies triggers fired out of order are refused and change nothing.
func (s *ServiceSuite) TestWrongStage() {
	s.Run("approve before review", func() {
		_, err := s.svc.Approve(s.ctx)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
		s.Equal(models.StageIntro, s.svc.CurrentStage(s.ctx))
		s.False(s.svc.State(s.ctx).Approved)
	})

	s.Run("start twice", func() {
		_, err := s.svc.Start(s.ctx)
		s.Require().NoError(err)
		_, err = s.svc.Start(s.ctx)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
		s.Equal(models.StageLogin, s.svc.CurrentStage(s.ctx))
	})

	s.Equal(float64(2), testutil.ToFloat64(s.metrics.RejectedAdvances.WithLabelValues("wrong_stage")))
}

func (s *ServiceSuite) TestLoginRejectsUnknownProvider() {
	_, err := s.svc.Start(s.ctx)
	s.Require().NoError(err)

	_, err = s.svc.Login(s.ctx, domain.LoginProvider("naver"))
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	s.Equal(models.StageLogin, s.svc.CurrentStage(s.ctx))
}

// TestSubmitProfileValidation verifies blank required fields never leave profile_pending.
func (s *ServiceSuite) TestSubmitProfileValidation() {
	s.toProfilePending()

	cases := []profilemodels.Submission{
		{Name: "", MBTI: "ENFP"},
		{Name: "Alex", MBTI: "   "},
		{Name: " \t", MBTI: ""},
	}
	for _, sub := range cases {
		_, err := s.svc.SubmitProfile(s.ctx, sub)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		state := s.svc.State(s.ctx)
		s.Equal(models.StageProfilePending, state.Stage)
		s.Empty(state.Profile.Name)
		s.Empty(state.Profile.MBTI)
	}
}

func (s *ServiceSuite) TestSubmitProfileStoresValuesVerbatim() {
	s.toProfilePending()

	state, err := s.svc.SubmitProfile(s.ctx, profilemodels.Submission{Name: " Alex ", MBTI: "enfp"})
	s.Require().NoError(err)
	s.Equal(" Alex ", state.Profile.Name)
	s.Equal("enfp", state.Profile.MBTI)
}

// TestAdvance verifies the generic trigger follows the same ordering rules.
func (s *ServiceSuite) TestAdvance() {
	s.Run("rejects a forward jump", func() {
		_, err := s.svc.Advance(s.ctx, models.StageAuthed)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
		s.Equal(models.StageIntro, s.svc.CurrentStage(s.ctx))
	})

	s.Run("rejects an unknown stage", func() {
		_, err := s.svc.Advance(s.ctx, models.Stage("onboarding"))
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("advances one step at a time", func() {
		for _, target := range []models.Stage{models.StageLogin, models.StagePolicy, models.StageProfilePending} {
			state, err := s.svc.Advance(s.ctx, target)
			s.Require().NoError(err)
			s.Equal(target, state.Stage)
		}
	})

	s.Run("under_review still needs name and mbti", func() {
		_, err := s.svc.Advance(s.ctx, models.StageUnderReview)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal(models.StageProfilePending, s.svc.CurrentStage(s.ctx))
	})

	s.Run("rejects going back", func() {
		_, err := s.svc.Advance(s.ctx, models.StageLogin)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("reaching authed sets approval", func() {
		_, err := s.svc.SubmitProfile(s.ctx, profilemodels.Submission{Name: "Alex", MBTI: "ENFP"})
		s.Require().NoError(err)
		state, err := s.svc.Advance(s.ctx, models.StageAuthed)
		s.Require().NoError(err)
		s.True(state.Approved)
	})

	s.Run("authed is terminal", func() {
		_, err := s.svc.Advance(s.ctx, models.StageAuthed)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})
}

// TestStagesAreNonDecreasing replays an arbitrary trigger sequence and checks the order never regresses.
func (s *ServiceSuite) TestStagesAreNonDecreasing() {
	triggers := []func() (models.State, error){
		func() (models.State, error) { return s.svc.Approve(s.ctx) },
		func() (models.State, error) { return s.svc.Start(s.ctx) },
		func() (models.State, error) { return s.svc.AgreePolicy(s.ctx) },
		func() (models.State, error) { return s.svc.Login(s.ctx, domain.LoginProviderKakao) },
		func() (models.State, error) { return s.svc.Start(s.ctx) },
		func() (models.State, error) { return s.svc.Advance(s.ctx, models.StageIntro) },
		func() (models.State, error) { return s.svc.AgreePolicy(s.ctx) },
		func() (models.State, error) {
			return s.svc.SubmitProfile(s.ctx, profilemodels.Submission{Name: "A", MBTI: "B"})
		},
		func() (models.State, error) { return s.svc.Approve(s.ctx) },
	}

	last := s.svc.CurrentStage(s.ctx).Rank()
	for _, trigger := range triggers {
		_, _ = trigger()
		rank := s.svc.CurrentStage(s.ctx).Rank()
		s.GreaterOrEqual(rank, last)
		last = rank
	}
	s.Equal(models.StageAuthed, s.svc.CurrentStage(s.ctx))
	s.Equal(s.svc.State(s.ctx).Approved, s.svc.CurrentStage(s.ctx) == models.StageAuthed)
}

func (s *ServiceSuite) TestPolicyReturnsCopy() {
	p := s.svc.Policy()
	s.Equal(72*time.Hour, p.IntroCadence)
	s.Equal(29000, p.FeeKRW)
	p.Terms[0] = "changed"
	s.Equal("3일마다 소개", s.svc.Policy().Terms[0])
}

func TestServiceWithoutOptionalDependencies(t *testing.T) {
	svc := New(storage.NewInMemoryStore(time.Now()), models.Policy{})
	if _, err := svc.Start(context.Background()); err != nil {
		t.Fatalf("expected start to succeed without logger or metrics, got %v", err)
	}
	if _, err := svc.Approve(context.Background()); !dErrors.HasCode(err, dErrors.CodeInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}
}
