package audit

import (
	"context"
	"time"

	id "regate/pkg/domain"
)

// nowFunc is swappable in tests.
var nowFunc = time.Now

// Publisher captures structured audit events. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		// Request-scoped time is stamped by the emitter; this is the fallback
		// for callers outside an HTTP request.
		event.Timestamp = nowFunc()
	}
	if event.Category == "" {
		event.Category = CategoryOf(event.Action)
	}
	return p.store.Append(ctx, event)
}

func (p *Publisher) List(ctx context.Context, orgID id.OrganizationID) ([]Event, error) {
	return p.store.ListByOrganization(ctx, orgID)
}
