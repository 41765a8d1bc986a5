package storage

import (
	"context"
	"sync"
	"time"

	matchmodels "matchmaker/internal/match/models"
	chatmodels "matchmaker/internal/matchmaker/models"
	onboardingmodels "matchmaker/internal/onboarding/models"
	profilemodels "matchmaker/internal/profile/models"
	"matchmaker/pkg/domain"
	"matchmaker/pkg/platform/sentinel"
)

// Session holds the onboarding fields a stage transition may change together
// with the stage itself.
type Session struct {
	LoginProvider domain.LoginProvider
	Approved      bool
	Profile       profilemodels.UserProfile
}

// InMemoryStore is the single state container for one user session: onboarding
// stage, profile, approval flag, matches, the matchmaker conversation and intro
// requests. Every read returns a copy; every write goes through a method.
type InMemoryStore struct {
	mu sync.RWMutex

	stage     onboardingmodels.Stage
	session   Session
	updatedAt time.Time

	matches []matchmodels.Match
	index   map[domain.MatchID]int

	thread      []chatmodels.Entry
	nextEntryID int64

	intros []matchmodels.IntroRequest

	newMatchID func() domain.MatchID
}

type Option func(*InMemoryStore)

// WithMatchIDGenerator replaces the random id generator.
func WithMatchIDGenerator(gen func() domain.MatchID) Option {
	return func(s *InMemoryStore) {
		s.newMatchID = gen
	}
}

// NewInMemoryStore returns a store at the intro stage with an empty profile and
// the matchmaker greeting already in the conversation.
func NewInMemoryStore(now time.Time, opts ...Option) *InMemoryStore {
	s := &InMemoryStore{
		stage:      onboardingmodels.StageIntro,
		session:    Session{Profile: profilemodels.UserProfile{Photos: []string{}}},
		updatedAt:  now,
		index:      make(map[domain.MatchID]int),
		newMatchID: domain.NewMatchID,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.appendEntryLocked(chatmodels.AuthorMatchmaker, chatmodels.Greeting, now)
	return s
}

// -----------------------------------------------------------------------------
// Onboarding
// -----------------------------------------------------------------------------

func (s *InMemoryStore) State(_ context.Context) onboardingmodels.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return onboardingmodels.State{
		Stage:         s.stage,
		Approved:      s.session.Approved,
		LoginProvider: s.session.LoginProvider,
		Profile:       s.session.Profile.Clone(),
		UpdatedAt:     s.updatedAt,
	}
}

// AdvanceStage moves the stage from `from` to `to` and applies mutate to the
// session in the same critical section. It returns sentinel.ErrInvalidState,
// leaving everything untouched, when the stored stage is not `from`.
func (s *InMemoryStore) AdvanceStage(
	_ context.Context,
	from, to onboardingmodels.Stage,
	now time.Time,
	mutate func(*Session),
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != from {
		return sentinel.ErrInvalidState
	}
	if mutate != nil {
		next := s.session
		next.Profile = next.Profile.Clone()
		mutate(&next)
		// approval is one-directional
		next.Approved = next.Approved || s.session.Approved
		s.session = next
	}
	s.stage = to
	s.updatedAt = now
	return nil
}

// -----------------------------------------------------------------------------
// Profile
// -----------------------------------------------------------------------------

func (s *InMemoryStore) Profile(_ context.Context) profilemodels.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Profile.Clone()
}

// MergeProfile applies patch to the stored profile and returns the result.
func (s *InMemoryStore) MergeProfile(_ context.Context, patch profilemodels.Patch) profilemodels.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Profile = s.session.Profile.Merge(patch)
	return s.session.Profile.Clone()
}

// -----------------------------------------------------------------------------
// Matches
// -----------------------------------------------------------------------------

// ListMatches returns matches in creation order.
func (s *InMemoryStore) ListMatches(_ context.Context) []matchmodels.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]matchmodels.Match, 0, len(s.matches))
	for _, m := range s.matches {
		out = append(out, m.Clone())
	}
	return out
}

func (s *InMemoryStore) FindMatch(_ context.Context, id domain.MatchID) (matchmodels.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return matchmodels.Match{}, sentinel.ErrNotFound
	}
	return s.matches[i].Clone(), nil
}

// CreateMatch appends a matched record with a fresh id and one seed message from the partner.
func (s *InMemoryStore) CreateMatch(_ context.Context, partnerName, initialMessage string, now time.Time) matchmodels.Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newMatchID()
	for s.idTakenLocked(id) {
		id = domain.NewMatchID()
	}
	m := matchmodels.NewMatch(id, partnerName, initialMessage, now)
	s.index[id] = len(s.matches)
	s.matches = append(s.matches, m)
	return m.Clone()
}

func (s *InMemoryStore) idTakenLocked(id domain.MatchID) bool {
	_, taken := s.index[id]
	return taken || id.IsNil()
}

// AppendMessage appends to the match's conversation. Unknown ids are a no-op
// and report false.
func (s *InMemoryStore) AppendMessage(_ context.Context, id domain.MatchID, msg matchmodels.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.matches[i].Messages = append(s.matches[i].Messages, msg)
	return true
}

// -----------------------------------------------------------------------------
// Matchmaker conversation
// -----------------------------------------------------------------------------

func (s *InMemoryStore) MatchmakerThread(_ context.Context) []chatmodels.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]chatmodels.Entry{}, s.thread...)
}

func (s *InMemoryStore) AppendMatchmakerEntry(_ context.Context, author chatmodels.Author, text string, now time.Time) chatmodels.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendEntryLocked(author, text, now)
}

func (s *InMemoryStore) appendEntryLocked(author chatmodels.Author, text string, now time.Time) chatmodels.Entry {
	s.nextEntryID++
	e := chatmodels.Entry{ID: s.nextEntryID, Author: author, Text: text, SentAt: now}
	s.thread = append(s.thread, e)
	return e
}

// -----------------------------------------------------------------------------
// Intro requests
// -----------------------------------------------------------------------------

func (s *InMemoryStore) SaveIntroRequest(_ context.Context, req matchmodels.IntroRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intros = append(s.intros, req)
}

func (s *InMemoryStore) ListIntroRequests(_ context.Context) []matchmodels.IntroRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]matchmodels.IntroRequest{}, s.intros...)
}
