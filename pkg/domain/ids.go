package domain

import (
	"github.com/google/uuid"

	dErrors "matchmaker/pkg/domain-errors"
)

// MatchID identifies a match. It is a distinct type so a match id can never be
// passed where another identifier is expected.
//
// Usage: generate with NewMatchID inside the store; parse path parameters with
// ParseMatchID at the trust boundary.
type MatchID uuid.UUID

// NewMatchID returns a random, collision-resistant match id.
func NewMatchID() MatchID {
	return MatchID(uuid.New())
}

// ParseMatchID constructs a MatchID from external input.
//
// Errors: returns CodeInvalidInput when the value is empty, malformed or the nil UUID.
func ParseMatchID(s string) (MatchID, error) {
	if s == "" {
		return MatchID{}, dErrors.New(dErrors.CodeInvalidInput, "match id cannot be empty")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return MatchID{}, dErrors.New(dErrors.CodeInvalidInput, "invalid match id")
	}
	if parsed == uuid.Nil {
		return MatchID{}, dErrors.New(dErrors.CodeInvalidInput, "match id cannot be nil")
	}
	return MatchID(parsed), nil
}

func (id MatchID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether the id is the zero value.
func (id MatchID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

// MarshalText renders the id in canonical UUID form for JSON.
func (id MatchID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText parses a canonical UUID.
func (id *MatchID) UnmarshalText(b []byte) error {
	parsed, err := ParseMatchID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
