package domain

import dErrors "matchmaker/pkg/domain-errors"

// LoginProvider names the social login option the user picked on the login screen.
// Invariant: the value must be one of the supported providers. No credentials are
// checked for any of them.
//
// Usage: construct via ParseLoginProvider at trust boundaries; direct casting
// bypasses validation.
type LoginProvider string

const (
	LoginProviderKakao  LoginProvider = "kakao"
	LoginProviderGoogle LoginProvider = "google"
)

var validLoginProviders = map[LoginProvider]bool{
	LoginProviderKakao:  true,
	LoginProviderGoogle: true,
}

// ParseLoginProvider constructs a LoginProvider from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseLoginProvider(s string) (LoginProvider, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "provider cannot be empty")
	}
	p := LoginProvider(s)
	if !p.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unsupported login provider")
	}
	return p, nil
}

// IsValid checks if the provider is one of the supported values.
func (p LoginProvider) IsValid() bool {
	return validLoginProviders[p]
}

func (p LoginProvider) String() string {
	return string(p)
}
