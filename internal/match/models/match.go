package models

import (
	"time"

	"matchmaker/pkg/domain"
	dErrors "matchmaker/pkg/domain-errors"
)

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderMe   Sender = "me"
	SenderThem Sender = "them"
)

// ParseSender constructs a Sender from external input.
func ParseSender(s string) (Sender, error) {
	switch Sender(s) {
	case SenderMe, SenderThem:
		return Sender(s), nil
	case "":
		return "", dErrors.New(dErrors.CodeInvalidInput, "sender cannot be empty")
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown sender")
	}
}

// Status is the lifecycle state of a match. Only matched is ever produced.
type Status string

const StatusMatched Status = "matched"

// Label is the user-facing status text. Values other than matched are rendered verbatim.
func (s Status) Label() string {
	if s == StatusMatched {
		return "매칭 완료"
	}
	return string(s)
}

// Message is one chat line. Messages are append-only; order is append order.
type Message struct {
	Sender Sender
	Text   string
	SentAt time.Time
}

// Match is a pairing with a partner and the conversation that belongs to it.
// A match owns its messages exclusively.
type Match struct {
	ID          domain.MatchID
	PartnerName string
	Status      Status
	Messages    []Message
	CreatedAt   time.Time
}

// Clone returns a deep copy so readers never share the store's message slice.
func (m Match) Clone() Match {
	m.Messages = append([]Message{}, m.Messages...)
	return m
}

// NewMatch builds a matched record seeded with one message from the partner.
func NewMatch(id domain.MatchID, partnerName, initialMessage string, now time.Time) Match {
	return Match{
		ID:          id,
		PartnerName: partnerName,
		Status:      StatusMatched,
		Messages: []Message{{
			Sender: SenderThem,
			Text:   initialMessage,
			SentAt: now,
		}},
		CreatedAt: now,
	}
}
