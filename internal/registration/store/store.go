// Package store provides read-only account queries for the registration
// validator. The validator performs best-effort pre-checks only; the real
// uniqueness guarantee is the store's exclusivity constraint at account
// commit time.
package store

import (
	"context"

	id "regate/pkg/domain"
	"regate/internal/registration"
)

// AccountQuery is the read capability the validator consumes. Every query is
// scoped to one organization. FindBy* exclude actively-invited accounts, per
// the claim-not-collide rule.
type AccountQuery interface {
	FindByEmail(ctx context.Context, orgID id.OrganizationID, email string) (*registration.Account, error)
	FindByNickname(ctx context.Context, orgID id.OrganizationID, nickname string) (*registration.Account, error)
	HasPendingInvitation(ctx context.Context, orgID id.OrganizationID, email string) (bool, error)
}
