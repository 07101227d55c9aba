package organization

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	id "regate/pkg/domain"
	"regate/pkg/platform/sentinel"
)

type OrganizationStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *OrganizationStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestOrganizationStoreSuite(t *testing.T) {
	suite.Run(t, new(OrganizationStoreSuite))
}

func (s *OrganizationStoreSuite) newOrganization(name, host string) *Organization {
	org, err := New(id.OrganizationID(uuid.New()), name, host, time.Now())
	s.Require().NoError(err)
	return org
}

func (s *OrganizationStoreSuite) TestCreationAndLookups() {
	s.Run("creates and finds organization by ID", func() {
		org := s.newOrganization("Stockholm Schools", "register.stockholm.example")
		s.Require().NoError(s.store.CreateIfHostAvailable(s.ctx, org))

		found, err := s.store.FindByID(s.ctx, org.ID)
		s.Require().NoError(err)
		s.Equal(org.Name, found.Name)
	})

	s.Run("returns ErrNotFound for unknown ID", func() {
		_, err := s.store.FindByID(s.ctx, id.OrganizationID(uuid.New()))
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("finds by host case-insensitively", func() {
		org := s.newOrganization("Uppsala", "signup.uppsala.example")
		s.Require().NoError(s.store.CreateIfHostAvailable(s.ctx, org))

		found, err := s.store.FindByHost(s.ctx, "SIGNUP.Uppsala.EXAMPLE")
		s.Require().NoError(err)
		s.Equal(org.ID, found.ID)
	})
}

func (s *OrganizationStoreSuite) TestHostUniqueness() {
	s.Run("rejects duplicate host", func() {
		first := s.newOrganization("First", "shared.example")
		second := s.newOrganization("Second", "Shared.Example")

		s.Require().NoError(s.store.CreateIfHostAvailable(s.ctx, first))

		err := s.store.CreateIfHostAvailable(s.ctx, second)
		s.Require().Error(err)
		s.ErrorIs(err, sentinel.ErrAlreadyUsed)
	})
}

func (s *OrganizationStoreSuite) TestInvariants() {
	s.Run("rejects empty name", func() {
		_, err := New(id.OrganizationID(uuid.New()), "", "host.example", time.Now())
		s.Require().Error(err)
	})

	s.Run("rejects empty host", func() {
		_, err := New(id.OrganizationID(uuid.New()), "Name", "", time.Now())
		s.Require().Error(err)
	})
}
