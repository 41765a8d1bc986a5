package audit

import "time"

// Action names an auditable change to the session.
type Action string

const (
	ActionStageAdvanced  Action = "stage_advanced"
	ActionProfileUpdated Action = "profile_updated"
	ActionMatchCreated   Action = "match_created"
	ActionIntroRequested Action = "intro_requested"
)

// Event is emitted from services to capture key actions. It stays
// transport-agnostic so any sink can store it.
type Event struct {
	Timestamp time.Time
	Action    Action
	Subject   string
	From      string
	To        string
	RequestID string
}
