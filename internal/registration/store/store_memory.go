package store

import (
	"context"
	"strings"
	"sync"

	"regate/internal/registration"
	id "regate/pkg/domain"
	"regate/pkg/platform/sentinel"
)

// InMemory keeps accounts and pending invitations in memory. It backs unit
// tests and dev mode and intentionally favors clarity over performance.
type InMemory struct {
	mu          sync.RWMutex
	accounts    map[id.OrganizationID][]registration.Account
	invitations map[id.OrganizationID]map[string]bool // email -> pending
}

func NewInMemory() *InMemory {
	return &InMemory{
		accounts:    make(map[id.OrganizationID][]registration.Account),
		invitations: make(map[id.OrganizationID]map[string]bool),
	}
}

// SeedAccount registers an existing account row. Test and dev-mode setup
// only; the validator never writes.
func (s *InMemory) SeedAccount(orgID id.OrganizationID, account registration.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[orgID] = append(s.accounts[orgID], account)
}

// SeedPendingInvitation records an outstanding invitation for an email.
func (s *InMemory) SeedPendingInvitation(orgID id.OrganizationID, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.invitations[orgID] == nil {
		s.invitations[orgID] = make(map[string]bool)
	}
	s.invitations[orgID][strings.ToLower(email)] = true
}

func (s *InMemory) FindByEmail(_ context.Context, orgID id.OrganizationID, email string) (*registration.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email = strings.ToLower(email)
	for _, account := range s.accounts[orgID] {
		if strings.ToLower(account.Email) == email && !account.ActivelyInvited {
			found := account
			return &found, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) FindByNickname(_ context.Context, orgID id.OrganizationID, nickname string) (*registration.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	nickname = strings.ToLower(nickname)
	for _, account := range s.accounts[orgID] {
		if strings.ToLower(account.Nickname) == nickname && !account.ActivelyInvited {
			found := account
			return &found, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) HasPendingInvitation(_ context.Context, orgID id.OrganizationID, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.invitations[orgID][strings.ToLower(email)], nil
}
