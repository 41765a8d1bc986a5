package models

import (
	"time"

	"github.com/asaskevich/govalidator"

	profilemodels "matchmaker/internal/profile/models"
	"matchmaker/pkg/domain"
	dErrors "matchmaker/pkg/domain-errors"
)

type LoginRequest struct {
	Provider string `json:"provider"`
}

func (r *LoginRequest) Validate() error {
	if r.Provider == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "provider is required")
	}
	if !govalidator.IsIn(r.Provider, domain.LoginProviderKakao.String(), domain.LoginProviderGoogle.String()) {
		return dErrors.New(dErrors.CodeInvalidInput, "provider must be kakao or google")
	}
	return nil
}

type AdvanceRequest struct {
	Target string `json:"target"`
}

func (r *AdvanceRequest) Validate() error {
	_, err := ParseStage(r.Target)
	return err
}

type StateResponse struct {
	Stage         Stage                         `json:"stage"`
	Approved      bool                          `json:"approved"`
	LoginProvider string                        `json:"login_provider,omitempty"`
	Profile       profilemodels.ProfileResponse `json:"profile"`
	UpdatedAt     time.Time                     `json:"updated_at"`
}

func NewStateResponse(s State) StateResponse {
	return StateResponse{
		Stage:         s.Stage,
		Approved:      s.Approved,
		LoginProvider: s.LoginProvider.String(),
		Profile:       profilemodels.NewProfileResponse(s.Profile),
		UpdatedAt:     s.UpdatedAt,
	}
}

type PolicyResponse struct {
	IntroCadenceHours int      `json:"intro_cadence_hours"`
	FeeKRW            int      `json:"fee_krw"`
	Terms             []string `json:"terms"`
}

func NewPolicyResponse(p Policy) PolicyResponse {
	return PolicyResponse{
		IntroCadenceHours: int(p.IntroCadence / time.Hour),
		FeeKRW:            p.FeeKRW,
		Terms:             p.Terms,
	}
}
