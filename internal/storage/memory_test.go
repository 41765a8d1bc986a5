package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	matchmodels "matchmaker/internal/match/models"
	chatmodels "matchmaker/internal/matchmaker/models"
	onboardingmodels "matchmaker/internal/onboarding/models"
	profilemodels "matchmaker/internal/profile/models"
	"matchmaker/pkg/domain"
	"matchmaker/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
	now   time.Time
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.now = time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)
	s.store = NewInMemoryStore(s.now)
	s.ctx = context.Background()
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

// TestInitialState verifies a fresh store starts at intro with nothing approved.
func (s *InMemoryStoreSuite) TestInitialState() {
	state := s.store.State(s.ctx)
	s.Equal(onboardingmodels.StageIntro, state.Stage)
	s.False(state.Approved)
	s.Empty(state.Profile.Name)
	s.NotNil(state.Profile.Photos)
	s.Empty(state.Profile.Photos)
	s.Empty(s.store.ListMatches(s.ctx))

	thread := s.store.MatchmakerThread(s.ctx)
	s.Require().Len(thread, 1)
	s.Equal(chatmodels.AuthorMatchmaker, thread[0].Author)
	s.Equal(chatmodels.Greeting, thread[0].Text)
}

// TestAdvanceStage verifies the compare-and-set semantics of stage transitions.
func (s *InMemoryStoreSuite) TestAdvanceStage() {
	s.Run("advances when the stored stage matches", func() {
		err := s.store.AdvanceStage(s.ctx, onboardingmodels.StageIntro, onboardingmodels.StageLogin, s.now, nil)
		s.Require().NoError(err)
		s.Equal(onboardingmodels.StageLogin, s.store.State(s.ctx).Stage)
	})

	s.Run("rejects a stale from stage and applies nothing", func() {
		called := false
		err := s.store.AdvanceStage(s.ctx, onboardingmodels.StageIntro, onboardingmodels.StageLogin, s.now,
			func(sess *Session) {
				called = true
				sess.Approved = true
			})
		s.Require().ErrorIs(err, sentinel.ErrInvalidState)
		s.False(called)
		s.False(s.store.State(s.ctx).Approved)
	})

	s.Run("applies the session mutation atomically with the stage", func() {
		err := s.store.AdvanceStage(s.ctx, onboardingmodels.StageLogin, onboardingmodels.StagePolicy, s.now.Add(time.Minute),
			func(sess *Session) { sess.LoginProvider = domain.LoginProviderKakao })
		s.Require().NoError(err)

		state := s.store.State(s.ctx)
		s.Equal(onboardingmodels.StagePolicy, state.Stage)
		s.Equal(domain.LoginProviderKakao, state.LoginProvider)
		s.Equal(s.now.Add(time.Minute), state.UpdatedAt)
	})
}

// TestApprovalIsOneDirectional verifies a mutation cannot clear the approval flag.
func (s *InMemoryStoreSuite) TestApprovalIsOneDirectional() {
	s.store.stage = onboardingmodels.StageUnderReview
	s.Require().NoError(s.store.AdvanceStage(s.ctx, onboardingmodels.StageUnderReview, onboardingmodels.StageAuthed, s.now,
		func(sess *Session) { sess.Approved = true }))
	s.True(s.store.State(s.ctx).Approved)

	s.store.stage = onboardingmodels.StageUnderReview
	s.Require().NoError(s.store.AdvanceStage(s.ctx, onboardingmodels.StageUnderReview, onboardingmodels.StageAuthed, s.now,
		func(sess *Session) { sess.Approved = false }))
	s.True(s.store.State(s.ctx).Approved)
}

// TestProfileMerge verifies partial updates keep unspecified fields.
func (s *InMemoryStoreSuite) TestProfileMerge() {
	name, mbti, answers := "Alex", "ENFP", "등산 좋아해요"
	s.store.MergeProfile(s.ctx, profilemodels.Patch{Name: &name, MBTI: &mbti, Answers: &answers})

	newMBTI := "INFP"
	got := s.store.MergeProfile(s.ctx, profilemodels.Patch{MBTI: &newMBTI})
	s.Equal("Alex", got.Name)
	s.Equal("INFP", got.MBTI)
	s.Equal("등산 좋아해요", got.Answers)
	s.Equal(got, s.store.Profile(s.ctx))
}

// TestCreateAndList verifies creation order and the seed message.
func (s *InMemoryStoreSuite) TestCreateAndList() {
	s.Run("single match carries one seed message from them", func() {
		created := s.store.CreateMatch(s.ctx, "Alex", "hi", s.now)

		matches := s.store.ListMatches(s.ctx)
		s.Require().Len(matches, 1)
		s.Equal(created.ID, matches[0].ID)
		s.Equal("Alex", matches[0].PartnerName)
		s.Equal(matchmodels.StatusMatched, matches[0].Status)
		s.Require().Len(matches[0].Messages, 1)
		s.Equal(matchmodels.SenderThem, matches[0].Messages[0].Sender)
		s.Equal("hi", matches[0].Messages[0].Text)
	})

	s.Run("consecutive matches get distinct ids in creation order", func() {
		second := s.store.CreateMatch(s.ctx, "Jamie", "반가워요! ☺️", s.now)
		third := s.store.CreateMatch(s.ctx, "Robin", "반가워요! ☺️", s.now)
		s.NotEqual(second.ID, third.ID)

		matches := s.store.ListMatches(s.ctx)
		s.Require().Len(matches, 3)
		s.Equal([]string{"Alex", "Jamie", "Robin"},
			[]string{matches[0].PartnerName, matches[1].PartnerName, matches[2].PartnerName})
	})
}

// TestIDCollisionFallback verifies uniqueness even when the generator repeats itself.
func (s *InMemoryStoreSuite) TestIDCollisionFallback() {
	fixed := domain.MatchID(uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"))
	store := NewInMemoryStore(s.now, WithMatchIDGenerator(func() domain.MatchID { return fixed }))

	first := store.CreateMatch(s.ctx, "Alex", "hi", s.now)
	second := store.CreateMatch(s.ctx, "Alex", "hi", s.now)
	s.Equal(fixed, first.ID)
	s.NotEqual(first.ID, second.ID)
	s.False(second.ID.IsNil())
}

// TestAppendMessage verifies ordering and the unknown-id no-op.
func (s *InMemoryStoreSuite) TestAppendMessage() {
	m := s.store.CreateMatch(s.ctx, "Alex", "hi", s.now)
	other := s.store.CreateMatch(s.ctx, "Jamie", "hey", s.now)

	s.Run("appends exactly one message preserving order", func() {
		ok := s.store.AppendMessage(s.ctx, m.ID, matchmodels.Message{Sender: matchmodels.SenderMe, Text: "hello", SentAt: s.now})
		s.True(ok)

		found, err := s.store.FindMatch(s.ctx, m.ID)
		s.Require().NoError(err)
		s.Require().Len(found.Messages, 2)
		s.Equal("hi", found.Messages[0].Text)
		s.Equal("hello", found.Messages[1].Text)
		s.Equal(matchmodels.SenderMe, found.Messages[1].Sender)
	})

	s.Run("unknown id leaves every match unchanged", func() {
		before := s.store.ListMatches(s.ctx)
		ok := s.store.AppendMessage(s.ctx, domain.NewMatchID(), matchmodels.Message{Sender: matchmodels.SenderMe, Text: "lost"})
		s.False(ok)

		after := s.store.ListMatches(s.ctx)
		s.Require().Len(after, len(before))
		for i := range before {
			s.Len(after[i].Messages, len(before[i].Messages))
		}
	})

	s.Run("messages belong to a single match", func() {
		found, err := s.store.FindMatch(s.ctx, other.ID)
		s.Require().NoError(err)
		s.Len(found.Messages, 1)
	})
}

// TestReadsAreCopies verifies callers cannot mutate store state through returned values.
func (s *InMemoryStoreSuite) TestReadsAreCopies() {
	m := s.store.CreateMatch(s.ctx, "Alex", "hi", s.now)

	listed := s.store.ListMatches(s.ctx)
	listed[0].Messages[0].Text = "tampered"
	listed[0].PartnerName = "Mallory"

	found, err := s.store.FindMatch(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Equal("hi", found.Messages[0].Text)
	s.Equal("Alex", found.PartnerName)
}

func (s *InMemoryStoreSuite) TestFindMatchNotFound() {
	_, err := s.store.FindMatch(s.ctx, domain.NewMatchID())
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestMatchmakerThreadIDsIncrease() {
	e := s.store.AppendMatchmakerEntry(s.ctx, chatmodels.AuthorMe, "ENFP예요", s.now)
	s.Equal(int64(2), e.ID)

	thread := s.store.MatchmakerThread(s.ctx)
	s.Require().Len(thread, 2)
	s.Equal("ENFP예요", thread[1].Text)
}

func (s *InMemoryStoreSuite) TestIntroRequests() {
	s.store.SaveIntroRequest(s.ctx, matchmodels.IntroRequest{CandidateID: "c1", CandidateName: "Jamie", RequestedAt: s.now})
	intros := s.store.ListIntroRequests(s.ctx)
	s.Require().Len(intros, 1)
	s.Equal("Jamie", intros[0].CandidateName)
}

// TestConcurrentAdvance verifies only one of many racing transitions from the same stage wins.
func (s *InMemoryStoreSuite) TestConcurrentAdvance() {
	const workers = 32
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.store.AdvanceStage(s.ctx, onboardingmodels.StageIntro, onboardingmodels.StageLogin, s.now, nil)
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	s.Equal(1, wins)
	s.Equal(onboardingmodels.StageLogin, s.store.State(s.ctx).Stage)
}
