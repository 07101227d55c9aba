package audit

import (
	"context"
	"sync"

	id "regate/pkg/domain"
)

// InMemoryStore keeps audit events in memory. It backs tests and dev mode;
// production wires the Kafka sink.
type InMemoryStore struct {
	mu     sync.RWMutex
	events []Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *InMemoryStore) ListByOrganization(_ context.Context, orgID id.OrganizationID) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Event
	for _, e := range s.events {
		if e.OrganizationID == orgID {
			out = append(out, e)
		}
	}
	return out, nil
}
