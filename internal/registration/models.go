// Package registration holds the self-registration submission model and the
// decision a validation pass produces.
package registration

import (
	"sort"
	"time"

	id "regate/pkg/domain"
)

// Input is one submission attempt, already parsed into typed fields by the
// transport layer. The validator never coerces strings to booleans; that is
// the boundary's job.
type Input struct {
	Name                 string
	Nickname             string
	Email                string
	Password             string
	PasswordConfirmation string
	Newsletter           bool
	TOSAgreement         bool
	CurrentLocale        string
	Status               string
	Provenance           string
}

// ErrorCode is a field-scoped validation failure code. Codes are part of the
// API contract; the presentation layer maps them to localized messages.
type ErrorCode string

const (
	ErrMissing      ErrorCode = "missing"
	ErrMalformed    ErrorCode = "malformed"
	ErrTooLong      ErrorCode = "too_long"
	ErrNotConfirmed ErrorCode = "not_confirmed"
	ErrTaken        ErrorCode = "taken"
	ErrWeak         ErrorCode = "weak"
	ErrUnacceptable ErrorCode = "unacceptable_value"
	// ErrInvited is base-scoped: the organization already holds a pending
	// invitation for this email, which should be accepted instead.
	ErrInvited ErrorCode = "invited"
)

// FieldBase scopes errors that are not attributable to a single field.
const FieldBase = "base"

// Input field names as they appear in the error mapping.
const (
	FieldName                 = "name"
	FieldNickname             = "nickname"
	FieldEmail                = "email"
	FieldPassword             = "password"
	FieldPasswordConfirmation = "password_confirmation"
	FieldTOSAgreement         = "tos_agreement"
	FieldStatus               = "status"
	FieldProvenance           = "provenance"
)

// FieldErrors maps a field name (or FieldBase) to the ordered codes recorded
// against it.
type FieldErrors map[string][]ErrorCode

// Add appends a code to a field's error list.
func (fe FieldErrors) Add(field string, code ErrorCode) {
	fe[field] = append(fe[field], code)
}

// Has reports whether the field carries the given code.
func (fe FieldErrors) Has(field string, code ErrorCode) bool {
	for _, c := range fe[field] {
		if c == code {
			return true
		}
	}
	return false
}

// Empty reports whether no errors were recorded.
func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}

// Fields returns the distinct field names carrying errors. Used for metrics
// and audit, where codes matter but values must not leak.
func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	for field := range fe {
		out = append(out, field)
	}
	sort.Strings(out)
	return out
}

// Attributes are the normalized values account creation needs, derived only
// when the submission is valid.
type Attributes struct {
	Name              string     `json:"name"`
	Nickname          string     `json:"nickname"`
	Email             string     `json:"email"`
	PasswordDigest    string     `json:"password_digest"`
	Status            id.Status  `json:"status"`
	Provenance        string     `json:"provenance"`
	Locale            string     `json:"locale,omitempty"`
	NewsletterAt      *time.Time `json:"newsletter_at,omitempty"`
	ConfirmationToken string     `json:"confirmation_token"`
}

// Decision is the outcome of one validation pass. Exactly one of Errors and
// Attributes is populated.
type Decision struct {
	Valid      bool        `json:"valid"`
	Errors     FieldErrors `json:"errors,omitempty"`
	Attributes *Attributes `json:"attributes,omitempty"`
}

// Account is an existing account row as seen by uniqueness checks.
type Account struct {
	ID       id.AccountID
	Email    string
	Nickname string
	// ActivelyInvited marks a provisioned-but-unclaimed identity. Such rows
	// are exempt from uniqueness conflicts because a registration is expected
	// to claim them.
	ActivelyInvited bool
}
