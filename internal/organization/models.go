package organization

import (
	"time"

	id "regate/pkg/domain"
	dErrors "regate/pkg/domain-errors"
)

// Organization is the context a registration runs under. Every uniqueness and
// invitation check is scoped to exactly one organization.
//
// Invariants:
//   - Name is non-empty and at most 128 characters
//   - Host is non-empty and unique across organizations (case-insensitive)
//   - NicknameMaxLength, when set, overrides the deployment-wide policy value
type Organization struct {
	ID   id.OrganizationID `json:"id"`
	Name string            `json:"name"`
	Host string            `json:"host"`
	// NicknameMaxLength of 0 means "use the deployment policy default".
	NicknameMaxLength int       `json:"nickname_max_length,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func New(orgID id.OrganizationID, name, host string, now time.Time) (*Organization, error) {
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "organization name cannot be empty")
	}
	if len(name) > 128 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "organization name must be 128 characters or less")
	}
	if host == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "organization host cannot be empty")
	}
	return &Organization{
		ID:        orgID,
		Name:      name,
		Host:      host,
		CreatedAt: now,
	}, nil
}
