package organization

import (
	"context"
	"strings"
	"sync"

	id "regate/pkg/domain"
	"regate/pkg/platform/sentinel"
)

// InMemory keeps organizations in memory for tests and dev mode. It
// intentionally favors clarity over performance.
type InMemory struct {
	mu     sync.RWMutex
	byID   map[id.OrganizationID]*Organization
	byHost map[string]id.OrganizationID
}

func NewInMemory() *InMemory {
	return &InMemory{
		byID:   make(map[id.OrganizationID]*Organization),
		byHost: make(map[string]id.OrganizationID),
	}
}

func (s *InMemory) CreateIfHostAvailable(_ context.Context, org *Organization) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	host := strings.ToLower(org.Host)
	if _, exists := s.byHost[host]; exists {
		return sentinel.ErrAlreadyUsed
	}
	clone := *org
	s.byID[org.ID] = &clone
	s.byHost[host] = org.ID
	return nil
}

func (s *InMemory) FindByID(_ context.Context, orgID id.OrganizationID) (*Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if org, ok := s.byID[orgID]; ok {
		clone := *org
		return &clone, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) FindByHost(_ context.Context, host string) (*Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orgID, ok := s.byHost[strings.ToLower(host)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *s.byID[orgID]
	return &clone, nil
}
