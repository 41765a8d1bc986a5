package models

import "time"

// Candidate is a recommended partner on the discovery screen.
type Candidate struct {
	ID    string
	Name  string
	MBTI  string
	Blurb string
}

// IntroRequest records that the user asked the matchmaker to introduce a candidate.
type IntroRequest struct {
	CandidateID   string
	CandidateName string
	RequestedAt   time.Time
}

const (
	// DemoPartnerName and DemoGreeting seed the match created from the match list.
	DemoPartnerName = "Alex"
	DemoGreeting    = "안녕하세요! 반가워요 :)"

	// InstantMatchGreeting seeds matches created straight from discovery.
	InstantMatchGreeting = "반가워요! ☺️"
)

// DefaultCandidates is the fixed recommendation list.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{ID: "c1", Name: "Jamie", MBTI: "INTJ", Blurb: "책, 커피, 전시 좋아요"},
		{ID: "c2", Name: "Robin", MBTI: "ENFP", Blurb: "등산/러닝/강아지"},
		{ID: "c3", Name: "Taylor", MBTI: "ISTP", Blurb: "보드게임/캠핑"},
	}
}
