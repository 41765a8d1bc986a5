package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"matchmaker/internal/match/handler/mocks"
	"matchmaker/internal/match/models"
	"matchmaker/pkg/domain"
	dErrors "matchmaker/pkg/domain-errors"
	"matchmaker/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/match-mocks.go -package=mocks Service
type MatchHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  http.Handler
	now     time.Time
}

func (s *MatchHandlerSuite) SetupTest() {
	s.service = mocks.NewMockService(gomock.NewController(s.T()))
	s.now = time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)
	r := chi.NewRouter()
	New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	s.router = r
}

func TestMatchHandlerSuite(t *testing.T) {
	suite.Run(t, new(MatchHandlerSuite))
}

func (s *MatchHandlerSuite) match(partner string) models.Match {
	return models.NewMatch(domain.NewMatchID(), partner, "hi", s.now)
}

func (s *MatchHandlerSuite) TestList() {
	s.Run("empty list is an empty array", func() {
		s.service.EXPECT().List(gomock.Any()).Return(nil)
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/matches", nil))
		s.Equal(http.StatusOK, rr.Code)
		s.JSONEq(`{"matches":[]}`, rr.Body.String())
	})

	s.Run("labels are rendered", func() {
		s.service.EXPECT().List(gomock.Any()).Return([]models.Match{s.match("Alex")})
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/matches", nil))
		resp := testutil.UnmarshalResponse[models.MatchListResponse](s.T(), rr)
		s.Require().Len(resp.Matches, 1)
		s.Equal("매칭 완료", resp.Matches[0].StatusLabel)
		s.Equal(models.SenderThem, resp.Matches[0].Messages[0].Sender)
	})
}

func (s *MatchHandlerSuite) TestCreateDemo() {
	s.service.EXPECT().CreateDemoMatch(gomock.Any()).Return(s.match("Alex"))
	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/matches/demo", nil))
	s.Equal(http.StatusCreated, rr.Code)
	s.Equal("Alex", testutil.UnmarshalResponse[models.MatchResponse](s.T(), rr).PartnerName)
}

func (s *MatchHandlerSuite) TestGet() {
	m := s.match("Alex")

	s.Run("found", func() {
		s.service.EXPECT().Get(gomock.Any(), m.ID).Return(m, nil)
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/matches/"+m.ID.String(), nil))
		s.Equal(http.StatusOK, rr.Code)
		s.Equal(m.ID.String(), testutil.UnmarshalResponse[models.MatchResponse](s.T(), rr).ID)
	})

	s.Run("unknown id", func() {
		s.service.EXPECT().Get(gomock.Any(), gomock.Any()).Return(models.Match{}, dErrors.New(dErrors.CodeNotFound, "match not found"))
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/matches/"+domain.NewMatchID().String(), nil))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, string(dErrors.CodeNotFound))
	})

	s.Run("malformed id is not found", func() {
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/matches/m1715000000000", nil))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, string(dErrors.CodeNotFound))
	})
}

func (s *MatchHandlerSuite) TestSendMessage() {
	m := s.match("Alex")

	s.Run("passes the raw text to the service", func() {
		updated := m.Clone()
		updated.Messages = append(updated.Messages, models.Message{Sender: models.SenderMe, Text: "hello", SentAt: s.now})
		s.service.EXPECT().SendMessage(gomock.Any(), m.ID, " hello ").Return(updated, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/matches/"+m.ID.String()+"/messages", map[string]string{"text": " hello "})
		rr := testutil.DoRequest(s.router, req)
		s.Equal(http.StatusCreated, rr.Code)
		s.Len(testutil.UnmarshalResponse[models.MatchResponse](s.T(), rr).Messages, 2)
	})

	s.Run("blank text", func() {
		s.service.EXPECT().SendMessage(gomock.Any(), m.ID, "").
			Return(models.Match{}, dErrors.New(dErrors.CodeValidation, "message text is required"))

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/matches/"+m.ID.String()+"/messages", map[string]string{"text": ""})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnprocessableEntity, string(dErrors.CodeValidation))
	})
}

func (s *MatchHandlerSuite) TestDiscover() {
	s.Run("candidates", func() {
		s.service.EXPECT().Candidates().Return(models.DefaultCandidates())
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/discover", nil))
		resp := testutil.UnmarshalResponse[models.CandidateListResponse](s.T(), rr)
		s.Require().Len(resp.Candidates, 3)
		s.Equal("c1", resp.Candidates[0].ID)
		s.Equal("INTJ", resp.Candidates[0].MBTI)
	})

	s.Run("intro request", func() {
		s.service.EXPECT().RequestIntro(gomock.Any(), "c1").
			Return(models.IntroRequest{CandidateID: "c1", CandidateName: "Jamie", RequestedAt: s.now}, nil)
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/discover/c1/intro", nil))
		s.Equal(http.StatusCreated, rr.Code)
		s.Equal("Jamie 소개를 주선자에게 요청했어요.", testutil.UnmarshalResponse[models.IntroResponse](s.T(), rr).Message)
	})

	s.Run("intro list", func() {
		s.service.EXPECT().IntroRequests(gomock.Any()).Return(nil)
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/discover/intros", nil))
		s.JSONEq(`{"intros":[]}`, rr.Body.String())
	})

	s.Run("instant match with unknown candidate", func() {
		s.service.EXPECT().InstantMatch(gomock.Any(), "c9").
			Return(models.Match{}, dErrors.New(dErrors.CodeNotFound, "candidate not found"))
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/discover/c9/match", nil))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, string(dErrors.CodeNotFound))
	})

	s.Run("instant match", func() {
		s.service.EXPECT().InstantMatch(gomock.Any(), "c2").Return(s.match("Robin"), nil)
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/discover/c2/match", nil))
		s.Equal(http.StatusCreated, rr.Code)
		resp := testutil.UnmarshalResponse[models.InstantMatchResponse](s.T(), rr)
		s.Equal("Robin", resp.Match.PartnerName)
		s.Contains(resp.Message, "Robin")
	})
}
