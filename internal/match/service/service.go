package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"matchmaker/internal/audit"
	"matchmaker/internal/match/models"
	"matchmaker/internal/platform/metrics"
	"matchmaker/pkg/domain"
	dErrors "matchmaker/pkg/domain-errors"
	"matchmaker/pkg/platform/sentinel"
	"matchmaker/pkg/requestcontext"
)

type Store interface {
	ListMatches(ctx context.Context) []models.Match
	FindMatch(ctx context.Context, id domain.MatchID) (models.Match, error)
	CreateMatch(ctx context.Context, partnerName, initialMessage string, now time.Time) models.Match
	AppendMessage(ctx context.Context, id domain.MatchID, msg models.Message) bool
	SaveIntroRequest(ctx context.Context, req models.IntroRequest)
	ListIntroRequests(ctx context.Context) []models.IntroRequest
}

type AuditPublisher interface {
	Emit(ctx context.Context, base audit.Event) error
}

const (
	sourceDemo     = "demo"
	sourceDiscover = "discover"
)

// Service owns matches, their conversations and the discovery screen.
type Service struct {
	store          Store
	candidates     []models.Candidate
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) { s.auditPublisher = publisher }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithCandidates replaces the recommendation list.
func WithCandidates(candidates []models.Candidate) Option {
	return func(s *Service) { s.candidates = append([]models.Candidate{}, candidates...) }
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store, candidates: models.DefaultCandidates()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns matches in creation order.
func (s *Service) List(ctx context.Context) []models.Match {
	return s.store.ListMatches(ctx)
}

func (s *Service) Get(ctx context.Context, id domain.MatchID) (models.Match, error) {
	m, err := s.store.FindMatch(ctx, id)
	if err != nil {
		return models.Match{}, translate(err)
	}
	return m, nil
}

// CreateDemoMatch adds a match with the demo partner.
func (s *Service) CreateDemoMatch(ctx context.Context) models.Match {
	return s.create(ctx, models.DemoPartnerName, models.DemoGreeting, sourceDemo)
}

// SendMessage appends a message from me. Text is trimmed; blank text is refused.
func (s *Service) SendMessage(ctx context.Context, id domain.MatchID, text string) (models.Match, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Match{}, dErrors.New(dErrors.CodeValidation, "message text is required")
	}
	msg := models.Message{Sender: models.SenderMe, Text: text, SentAt: requestcontext.Now(ctx)}
	if !s.store.AppendMessage(ctx, id, msg) {
		return models.Match{}, dErrors.New(dErrors.CodeNotFound, "match not found")
	}
	if s.metrics != nil {
		s.metrics.IncrementMessageAppended("match")
	}
	return s.Get(ctx, id)
}

// Candidates returns the recommendation list.
func (s *Service) Candidates() []models.Candidate {
	return append([]models.Candidate{}, s.candidates...)
}

// RequestIntro asks the matchmaker to introduce a candidate.
func (s *Service) RequestIntro(ctx context.Context, candidateID string) (models.IntroRequest, error) {
	c, err := s.candidate(candidateID)
	if err != nil {
		return models.IntroRequest{}, err
	}
	req := models.IntroRequest{CandidateID: c.ID, CandidateName: c.Name, RequestedAt: requestcontext.Now(ctx)}
	s.store.SaveIntroRequest(ctx, req)
	s.emit(ctx, audit.ActionIntroRequested, c.ID)
	return req, nil
}

func (s *Service) IntroRequests(ctx context.Context) []models.IntroRequest {
	return s.store.ListIntroRequests(ctx)
}

// InstantMatch skips the matchmaker and matches with the candidate right away.
func (s *Service) InstantMatch(ctx context.Context, candidateID string) (models.Match, error) {
	c, err := s.candidate(candidateID)
	if err != nil {
		return models.Match{}, err
	}
	return s.create(ctx, c.Name, models.InstantMatchGreeting, sourceDiscover), nil
}

func (s *Service) candidate(id string) (models.Candidate, error) {
	for _, c := range s.candidates {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Candidate{}, dErrors.New(dErrors.CodeNotFound, "candidate not found")
}

func (s *Service) create(ctx context.Context, partner, greeting, source string) models.Match {
	m := s.store.CreateMatch(ctx, partner, greeting, requestcontext.Now(ctx))
	if s.metrics != nil {
		s.metrics.IncrementMatchCreated(source)
	}
	s.emit(ctx, audit.ActionMatchCreated, m.ID.String())
	return m
}

func (s *Service) emit(ctx context.Context, action audit.Action, subject string) {
	if s.logger != nil {
		s.logger.InfoContext(ctx, string(action),
			"request_id", requestcontext.RequestID(ctx),
			"subject", subject,
			"log_type", "audit",
		)
	}
	if s.auditPublisher == nil {
		return
	}
	if err := s.auditPublisher.Emit(ctx, audit.Event{Action: action, Subject: subject}); err != nil && s.logger != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit event",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
}

func translate(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "match not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "match store failure")
}
