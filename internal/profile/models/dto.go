package models

import (
	"github.com/asaskevich/govalidator"

	dErrors "matchmaker/pkg/domain-errors"
)

// maxFieldRunes bounds free-text profile fields at the transport boundary.
const maxFieldRunes = "500"

// ProfileResponse is the JSON shape of a profile.
type ProfileResponse struct {
	Name    string   `json:"name"`
	MBTI    string   `json:"mbti"`
	Answers string   `json:"answers"`
	Photos  []string `json:"photos"`
}

func NewProfileResponse(p UserProfile) ProfileResponse {
	photos := p.Photos
	if photos == nil {
		photos = []string{}
	}
	return ProfileResponse{Name: p.Name, MBTI: p.MBTI, Answers: p.Answers, Photos: photos}
}

// UpdateRequest is a PATCH body; absent fields stay unchanged.
type UpdateRequest struct {
	Name    *string `json:"name"`
	MBTI    *string `json:"mbti"`
	Answers *string `json:"answers"`
}

func (r *UpdateRequest) Validate() error {
	if r.Name == nil && r.MBTI == nil && r.Answers == nil {
		return dErrors.New(dErrors.CodeBadRequest, "at least one of name, mbti, answers is required")
	}
	for _, f := range []*string{r.Name, r.MBTI, r.Answers} {
		if f != nil && !govalidator.RuneLength(*f, "0", maxFieldRunes) {
			return dErrors.New(dErrors.CodeInvalidInput, "profile fields are limited to "+maxFieldRunes+" characters")
		}
	}
	return nil
}

func (r *UpdateRequest) ToPatch() Patch {
	return Patch{Name: r.Name, MBTI: r.MBTI, Answers: r.Answers}
}

// SubmitRequest is the profile registration form body. The required-field
// rule is enforced by the onboarding service so a refused submission is
// recorded there.
type SubmitRequest struct {
	Name    string `json:"name"`
	MBTI    string `json:"mbti"`
	Answers string `json:"answers"`
}

func (r *SubmitRequest) Validate() error {
	for _, f := range []string{r.Name, r.MBTI, r.Answers} {
		if !govalidator.RuneLength(f, "0", maxFieldRunes) {
			return dErrors.New(dErrors.CodeInvalidInput, "profile fields are limited to "+maxFieldRunes+" characters")
		}
	}
	return nil
}

func (r *SubmitRequest) ToSubmission() Submission {
	return Submission{Name: r.Name, MBTI: r.MBTI, Answers: r.Answers}
}
