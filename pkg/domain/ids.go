package domain

import (
	"github.com/google/uuid"

	dErrors "regate/pkg/domain-errors"
)

// Typed UUID identifiers. Distinct types make cross-entity assignment a
// compile error instead of a data bug.
type (
	// OrganizationID identifies the organization a registration is scoped to.
	OrganizationID uuid.UUID

	// AccountID identifies an existing account record.
	AccountID uuid.UUID
)

// ParseOrganizationID constructs an OrganizationID from external input.
// IDs must be valid, non-empty, non-nil UUIDs.
func ParseOrganizationID(s string) (OrganizationID, error) {
	u, err := parseUUID(s, "organization id")
	return OrganizationID(u), err
}

// ParseAccountID constructs an AccountID from external input.
func ParseAccountID(s string) (AccountID, error) {
	u, err := parseUUID(s, "account id")
	return AccountID(u), err
}

func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" is not a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be the nil UUID")
	}
	return u, nil
}

func (id OrganizationID) String() string { return uuid.UUID(id).String() }

func (id OrganizationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

func (id AccountID) String() string { return uuid.UUID(id).String() }

func (id AccountID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
