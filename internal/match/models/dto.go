package models

import (
	"time"

	"github.com/asaskevich/govalidator"

	dErrors "matchmaker/pkg/domain-errors"
)

type SendMessageRequest struct {
	Text string `json:"text"`
}

func (r *SendMessageRequest) Validate() error {
	if !govalidator.RuneLength(r.Text, "0", "2000") {
		return dErrors.New(dErrors.CodeInvalidInput, "message is limited to 2000 characters")
	}
	return nil
}

type MessageResponse struct {
	Sender Sender    `json:"sender"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

type MatchResponse struct {
	ID          string            `json:"id"`
	PartnerName string            `json:"partner_name"`
	Status      Status            `json:"status"`
	StatusLabel string            `json:"status_label"`
	Messages    []MessageResponse `json:"messages"`
	CreatedAt   time.Time         `json:"created_at"`
}

func NewMatchResponse(m Match) MatchResponse {
	msgs := make([]MessageResponse, 0, len(m.Messages))
	for _, msg := range m.Messages {
		msgs = append(msgs, MessageResponse{Sender: msg.Sender, Text: msg.Text, SentAt: msg.SentAt})
	}
	return MatchResponse{
		ID:          m.ID.String(),
		PartnerName: m.PartnerName,
		Status:      m.Status,
		StatusLabel: m.Status.Label(),
		Messages:    msgs,
		CreatedAt:   m.CreatedAt,
	}
}

type MatchListResponse struct {
	Matches []MatchResponse `json:"matches"`
}

func NewMatchListResponse(matches []Match) MatchListResponse {
	out := make([]MatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, NewMatchResponse(m))
	}
	return MatchListResponse{Matches: out}
}

type CandidateResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	MBTI  string `json:"mbti"`
	Blurb string `json:"blurb"`
}

type CandidateListResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
}

func NewCandidateListResponse(cs []Candidate) CandidateListResponse {
	out := make([]CandidateResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, CandidateResponse(c))
	}
	return CandidateListResponse{Candidates: out}
}

type IntroResponse struct {
	CandidateID   string    `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	RequestedAt   time.Time `json:"requested_at"`
	Message       string    `json:"message"`
}

func NewIntroResponse(req IntroRequest) IntroResponse {
	return IntroResponse{
		CandidateID:   req.CandidateID,
		CandidateName: req.CandidateName,
		RequestedAt:   req.RequestedAt,
		Message:       req.CandidateName + " 소개를 주선자에게 요청했어요.",
	}
}

type IntroListResponse struct {
	Intros []IntroResponse `json:"intros"`
}

func NewIntroListResponse(reqs []IntroRequest) IntroListResponse {
	out := make([]IntroResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, NewIntroResponse(r))
	}
	return IntroListResponse{Intros: out}
}

type InstantMatchResponse struct {
	Match   MatchResponse `json:"match"`
	Message string        `json:"message"`
}

func NewInstantMatchResponse(m Match) InstantMatchResponse {
	return InstantMatchResponse{
		Match:   NewMatchResponse(m),
		Message: m.PartnerName + "와(과) 매칭되었어요. 소개팅 현황에서 대화를 시작하세요.",
	}
}
