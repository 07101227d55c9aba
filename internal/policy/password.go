// Package policy holds the injectable checks the registration validator
// consumes: password strength, email format, and disposable-domain screening.
package policy

import (
	"context"
	"strings"
)

// PersonalData carries the identity fields a candidate password is screened
// against, so passwords trivially derived from the user's own data are
// rejected.
type PersonalData struct {
	Name     string
	Email    string
	Nickname string
}

// PasswordPolicy is the deployment-wide strength check. It is deliberately
// self-contained; swapping in an external scoring service only needs the same
// Check signature.
type PasswordPolicy struct {
	minLength int
}

func NewPasswordPolicy(minLength int) *PasswordPolicy {
	return &PasswordPolicy{minLength: minLength}
}

// minFragmentLength keeps short tokens ("Li", "Bo") from poisoning the
// derived-from-personal-data check.
const minFragmentLength = 4

// Check reports whether the password passes the policy. The error return is
// reserved for policies backed by remote services; this implementation never
// fails.
func (p *PasswordPolicy) Check(_ context.Context, password string, personal PersonalData) (bool, error) {
	if len(password) < p.minLength {
		return false, nil
	}

	lowered := strings.ToLower(password)
	for _, fragment := range personalFragments(personal) {
		if strings.Contains(lowered, fragment) {
			return false, nil
		}
	}
	return true, nil
}

func personalFragments(personal PersonalData) []string {
	var fragments []string

	appendFragment := func(s string) {
		s = strings.ToLower(strings.TrimSpace(s))
		if len(s) >= minFragmentLength {
			fragments = append(fragments, s)
		}
	}

	for _, token := range strings.Fields(personal.Name) {
		appendFragment(token)
	}
	appendFragment(personal.Nickname)

	if at := strings.IndexByte(personal.Email, '@'); at > 0 {
		appendFragment(personal.Email[:at])
	} else {
		appendFragment(personal.Email)
	}

	return fragments
}
