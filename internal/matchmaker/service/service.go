package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"matchmaker/internal/matchmaker/models"
	"matchmaker/internal/platform/metrics"
	dErrors "matchmaker/pkg/domain-errors"
	"matchmaker/pkg/requestcontext"
)

type Store interface {
	MatchmakerThread(ctx context.Context) []models.Entry
	AppendMatchmakerEntry(ctx context.Context, author models.Author, text string, now time.Time) models.Entry
}

// Service is the conversation with the assigned matchmaker. There is no
// automated reply; a person answers out of band.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Thread(ctx context.Context) []models.Entry {
	return s.store.MatchmakerThread(ctx)
}

// Send appends a trimmed message from me. Blank text is refused.
func (s *Service) Send(ctx context.Context, text string) (models.Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Entry{}, dErrors.New(dErrors.CodeValidation, "message text is required")
	}
	e := s.store.AppendMatchmakerEntry(ctx, models.AuthorMe, text, requestcontext.Now(ctx))
	if s.metrics != nil {
		s.metrics.IncrementMessageAppended("matchmaker")
	}
	if s.logger != nil {
		s.logger.DebugContext(ctx, "matchmaker message sent",
			"request_id", requestcontext.RequestID(ctx),
			"entry_id", e.ID,
		)
	}
	return e, nil
}
