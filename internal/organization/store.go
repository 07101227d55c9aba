package organization

import (
	"context"

	id "regate/pkg/domain"
)

// Store resolves organizations. Read-heavy; writes happen through provisioning
// tooling outside this service.
type Store interface {
	FindByID(ctx context.Context, orgID id.OrganizationID) (*Organization, error)
	FindByHost(ctx context.Context, host string) (*Organization, error)
	CreateIfHostAvailable(ctx context.Context, org *Organization) error
}
