package models

import (
	dErrors "matchmaker/pkg/domain-errors"
)

// Stage is the onboarding stage gating which part of the app is reachable.
//
// Invariants:
//   - Stages are totally ordered: intro < login < policy < profile_pending < under_review < authed
//   - The only legal transition is to the immediate successor (no skips, no repeats, no going back)
//   - authed is terminal
type Stage string

const (
	StageIntro          Stage = "intro"
	StageLogin          Stage = "login"
	StagePolicy         Stage = "policy"
	StageProfilePending Stage = "profile_pending"
	StageUnderReview    Stage = "under_review"
	StageAuthed         Stage = "authed"
)

// stageOrder is the single source of truth for the stage sequence.
var stageOrder = []Stage{
	StageIntro,
	StageLogin,
	StagePolicy,
	StageProfilePending,
	StageUnderReview,
	StageAuthed,
}

var stageRank = func() map[Stage]int {
	ranks := make(map[Stage]int, len(stageOrder))
	for i, s := range stageOrder {
		ranks[s] = i
	}
	return ranks
}()

// Stages returns the stages in order.
func Stages() []Stage {
	return append([]Stage(nil), stageOrder...)
}

// ParseStage constructs a Stage from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unknown.
func ParseStage(s string) (Stage, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "stage cannot be empty")
	}
	stage := Stage(s)
	if !stage.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown stage")
	}
	return stage, nil
}

func (s Stage) IsValid() bool {
	_, ok := stageRank[s]
	return ok
}

// Rank is the position of the stage in the fixed order. Unknown stages rank -1.
func (s Stage) Rank() int {
	if r, ok := stageRank[s]; ok {
		return r
	}
	return -1
}

// Next returns the successor stage; ok is false for authed and unknown stages.
func (s Stage) Next() (Stage, bool) {
	r := s.Rank()
	if r < 0 || r == len(stageOrder)-1 {
		return "", false
	}
	return stageOrder[r+1], true
}

// IsTerminal reports whether no transition leads out of the stage.
func (s Stage) IsTerminal() bool {
	return s == StageAuthed
}

func (s Stage) CanTransitionTo(target Stage) bool {
	next, ok := s.Next()
	return ok && next == target
}

func (s Stage) String() string {
	return string(s)
}

// Advance validates a transition from current to target and returns the new stage.
// Callers must name the stage they are advancing from; a stale or forged current
// stage is caught by the store's compare-and-set.
func Advance(current, target Stage) (Stage, error) {
	if !current.IsValid() || !target.IsValid() {
		return current, dErrors.New(dErrors.CodeInvalidInput, "unknown stage")
	}
	if current.IsTerminal() {
		return current, dErrors.New(dErrors.CodeInvalidState, "onboarding is already complete")
	}
	if !current.CanTransitionTo(target) {
		return current, dErrors.New(dErrors.CodeInvalidState,
			"cannot advance from "+current.String()+" to "+target.String())
	}
	return target, nil
}
