package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"matchmaker/internal/audit"
	"matchmaker/internal/onboarding/models"
	"matchmaker/internal/platform/metrics"
	profilemodels "matchmaker/internal/profile/models"
	"matchmaker/internal/storage"
	"matchmaker/pkg/domain"
	dErrors "matchmaker/pkg/domain-errors"
	"matchmaker/pkg/platform/sentinel"
	"matchmaker/pkg/requestcontext"
)

// Store is the slice of the domain store the onboarding flow needs.
type Store interface {
	State(ctx context.Context) models.State
	AdvanceStage(ctx context.Context, from, to models.Stage, now time.Time, mutate func(*storage.Session)) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, base audit.Event) error
}

// Service drives the onboarding state machine. Each trigger names the stage it
// advances from, so a screen can never jump ahead or go back.
type Service struct {
	store          Store
	policy         models.Policy
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(store Store, policy models.Policy, opts ...Option) *Service {
	s := &Service{store: store, policy: policy}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current onboarding snapshot.
func (s *Service) State(ctx context.Context) models.State {
	return s.store.State(ctx)
}

// CurrentStage returns only the stage; used by the stage gate middleware.
func (s *Service) CurrentStage(ctx context.Context) models.Stage {
	return s.store.State(ctx).Stage
}

// Policy returns the terms shown on the policy screen.
func (s *Service) Policy() models.Policy {
	p := s.policy
	p.Terms = append([]string{}, s.policy.Terms...)
	return p
}

// Start leaves the intro screen.
func (s *Service) Start(ctx context.Context) (models.State, error) {
	return s.transition(ctx, models.StageIntro, models.StageLogin, nil)
}

// Login records the chosen login option. No credentials are checked.
func (s *Service) Login(ctx context.Context, provider domain.LoginProvider) (models.State, error) {
	if !provider.IsValid() {
		return models.State{}, dErrors.New(dErrors.CodeInvalidInput, "unsupported login provider")
	}
	return s.transition(ctx, models.StageLogin, models.StagePolicy, func(sess *storage.Session) {
		sess.LoginProvider = provider
	})
}

// AgreePolicy accepts the service policy.
func (s *Service) AgreePolicy(ctx context.Context) (models.State, error) {
	return s.transition(ctx, models.StagePolicy, models.StageProfilePending, nil)
}

// SubmitProfile registers the profile and sends it for review. When name or
// mbti is blank the submission is refused and neither the stage nor the
// profile changes.
func (s *Service) SubmitProfile(ctx context.Context, sub profilemodels.Submission) (models.State, error) {
	if err := s.expectStage(ctx, models.StageProfilePending); err != nil {
		return models.State{}, err
	}
	if err := sub.Validate(); err != nil {
		s.rejected(ctx, "validation", models.StageUnderReview, err)
		return models.State{}, err
	}
	patch := sub.AsPatch()
	return s.transition(ctx, models.StageProfilePending, models.StageUnderReview, func(sess *storage.Session) {
		sess.Profile = sess.Profile.Merge(patch)
	})
}

// Approve stands in for moderation: it sets the approval flag and unlocks the app.
func (s *Service) Approve(ctx context.Context) (models.State, error) {
	return s.transition(ctx, models.StageUnderReview, models.StageAuthed, func(sess *storage.Session) {
		sess.Approved = true
	})
}

// Advance moves to target from the current stage, applying the same rules as
// the dedicated triggers. Reaching under_review still requires a profile with
// name and mbti, and reaching authed still sets the approval flag.
func (s *Service) Advance(ctx context.Context, target models.Stage) (models.State, error) {
	state := s.store.State(ctx)
	if _, err := models.Advance(state.Stage, target); err != nil {
		s.rejected(ctx, "invalid_transition", target, err)
		return models.State{}, err
	}

	var mutate func(*storage.Session)
	switch target {
	case models.StageUnderReview:
		if !state.Profile.HasRequiredFields() {
			err := dErrors.New(dErrors.CodeValidation, "name and mbti are required")
			s.rejected(ctx, "validation", target, err)
			return models.State{}, err
		}
	case models.StageAuthed:
		mutate = func(sess *storage.Session) { sess.Approved = true }
	}
	return s.transition(ctx, state.Stage, target, mutate)
}

func (s *Service) expectStage(ctx context.Context, want models.Stage) error {
	current := s.store.State(ctx).Stage
	if current == want {
		return nil
	}
	err := dErrors.New(dErrors.CodeInvalidState,
		"onboarding is at "+current.String()+", expected "+want.String())
	s.rejected(ctx, "wrong_stage", want, err)
	return err
}

func (s *Service) transition(ctx context.Context, from, to models.Stage, mutate func(*storage.Session)) (models.State, error) {
	if _, err := models.Advance(from, to); err != nil {
		return models.State{}, err
	}
	if err := s.expectStage(ctx, from); err != nil {
		return models.State{}, err
	}

	if err := s.store.AdvanceStage(ctx, from, to, requestcontext.Now(ctx), mutate); err != nil {
		if errors.Is(err, sentinel.ErrInvalidState) {
			// another request advanced first
			err = dErrors.New(dErrors.CodeInvalidState, "onboarding stage changed concurrently")
			s.rejected(ctx, "conflict", to, err)
			return models.State{}, err
		}
		return models.State{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to advance onboarding")
	}

	s.logAudit(ctx, from, to)
	if s.metrics != nil {
		s.metrics.IncrementStageTransition(to.String(), to.Rank())
	}
	return s.store.State(ctx), nil
}

func (s *Service) rejected(ctx context.Context, reason string, target models.Stage, err error) {
	if s.metrics != nil {
		s.metrics.IncrementRejectedAdvance(reason)
	}
	if s.logger != nil {
		s.logger.WarnContext(ctx, "onboarding advance refused",
			"request_id", requestcontext.RequestID(ctx),
			"target", target,
			"reason", reason,
			"error", err,
		)
	}
}

func (s *Service) logAudit(ctx context.Context, from, to models.Stage) {
	if s.logger != nil {
		s.logger.InfoContext(ctx, string(audit.ActionStageAdvanced),
			"request_id", requestcontext.RequestID(ctx),
			"from", from,
			"to", to,
			"log_type", "audit",
		)
	}
	if s.auditPublisher == nil {
		return
	}
	err := s.auditPublisher.Emit(ctx, audit.Event{
		Action:  audit.ActionStageAdvanced,
		Subject: "onboarding",
		From:    from.String(),
		To:      to.String(),
	})
	if err != nil && s.logger != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit event",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
}
