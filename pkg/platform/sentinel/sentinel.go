package sentinel

import "errors"

// Sentinel errors for store-level facts. The in-memory store returns these
// (optionally wrapped) and services translate them into coded domain errors.
//
// - ErrNotFound: match, candidate or thread entry does not exist
// - ErrInvalidState: stage is not the one the caller expected to advance from
// - ErrConflict: a write raced with another write for the same record
//
// Validation failures (empty name, unknown provider) use pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
)
