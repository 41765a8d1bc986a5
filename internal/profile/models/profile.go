package models

import (
	"strings"

	dErrors "matchmaker/pkg/domain-errors"
)

// UserProfile is the current user's self description.
//
// MBTI is a free-form short code; it is not checked against the sixteen
// canonical types. Photos holds opaque references and stays empty until image
// upload exists.
type UserProfile struct {
	Name    string
	MBTI    string
	Answers string
	Photos  []string
}

// Clone returns a copy that shares no slices with p.
func (p UserProfile) Clone() UserProfile {
	p.Photos = append([]string{}, p.Photos...)
	return p
}

// HasRequiredFields reports whether name and mbti are non-empty after trimming.
func (p UserProfile) HasRequiredFields() bool {
	return strings.TrimSpace(p.Name) != "" && strings.TrimSpace(p.MBTI) != ""
}

// Patch is a partial profile update; nil fields are left untouched.
type Patch struct {
	Name    *string
	MBTI    *string
	Answers *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.MBTI == nil && p.Answers == nil
}

// Merge applies the fields present in patch and returns the result.
func (p UserProfile) Merge(patch Patch) UserProfile {
	out := p.Clone()
	if patch.Name != nil {
		out.Name = *patch.Name
	}
	if patch.MBTI != nil {
		out.MBTI = *patch.MBTI
	}
	if patch.Answers != nil {
		out.Answers = *patch.Answers
	}
	return out
}

// Submission is the profile registration form. Values are stored verbatim.
type Submission struct {
	Name    string
	MBTI    string
	Answers string
}

// Validate enforces the only rule of the registration form: name and mbti are required.
func (s Submission) Validate() error {
	if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.MBTI) == "" {
		return dErrors.New(dErrors.CodeValidation, "name and mbti are required")
	}
	return nil
}

// AsPatch converts the full submission into a patch touching all three fields.
func (s Submission) AsPatch() Patch {
	return Patch{Name: &s.Name, MBTI: &s.MBTI, Answers: &s.Answers}
}
