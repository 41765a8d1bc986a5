package service

import (
	"context"
	"log/slog"

	"matchmaker/internal/audit"
	"matchmaker/internal/profile/models"
	dErrors "matchmaker/pkg/domain-errors"
	"matchmaker/pkg/requestcontext"
)

type Store interface {
	Profile(ctx context.Context) models.UserProfile
	MergeProfile(ctx context.Context, patch models.Patch) models.UserProfile
}

type AuditPublisher interface {
	Emit(ctx context.Context, base audit.Event) error
}

// Service serves the my-profile screen. Edits here are not validated beyond
// request decoding; the required-field rule applies only to the registration form.
type Service struct {
	store          Store
	logger         *slog.Logger
	auditPublisher AuditPublisher
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) { s.auditPublisher = publisher }
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Get(ctx context.Context) models.UserProfile {
	return s.store.Profile(ctx)
}

// Update merges the fields present in patch and returns the resulting profile.
func (s *Service) Update(ctx context.Context, patch models.Patch) (models.UserProfile, error) {
	if patch.IsEmpty() {
		return models.UserProfile{}, dErrors.New(dErrors.CodeBadRequest, "nothing to update")
	}
	updated := s.store.MergeProfile(ctx, patch)

	if s.logger != nil {
		s.logger.InfoContext(ctx, string(audit.ActionProfileUpdated),
			"request_id", requestcontext.RequestID(ctx),
			"fields", changedFields(patch),
			"log_type", "audit",
		)
	}
	if s.auditPublisher != nil {
		if err := s.auditPublisher.Emit(ctx, audit.Event{
			Action:  audit.ActionProfileUpdated,
			Subject: "profile",
		}); err != nil && s.logger != nil {
			s.logger.ErrorContext(ctx, "failed to emit audit event",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
	}
	return updated, nil
}

func changedFields(p models.Patch) []string {
	var fields []string
	if p.Name != nil {
		fields = append(fields, "name")
	}
	if p.MBTI != nil {
		fields = append(fields, "mbti")
	}
	if p.Answers != nil {
		fields = append(fields, "answers")
	}
	return fields
}
