package models

import (
	"time"

	profilemodels "matchmaker/internal/profile/models"
	"matchmaker/pkg/domain"
)

// State is a read-only snapshot of the onboarding progress.
type State struct {
	Stage         Stage
	Approved      bool
	LoginProvider domain.LoginProvider
	Profile       profilemodels.UserProfile
	UpdatedAt     time.Time
}

// Transition records a single stage change.
type Transition struct {
	From Stage
	To   Stage
	At   time.Time
}
