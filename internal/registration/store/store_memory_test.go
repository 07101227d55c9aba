package store_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"regate/internal/registration"
	"regate/internal/registration/store"
	id "regate/pkg/domain"
	"regate/pkg/platform/sentinel"
)

type AccountQuerySuite struct {
	suite.Suite

	store *store.InMemory
	orgID id.OrganizationID
}

func (s *AccountQuerySuite) SetupTest() {
	s.store = store.NewInMemory()
	s.orgID = id.OrganizationID(uuid.New())
}

func TestAccountQuerySuite(t *testing.T) {
	suite.Run(t, new(AccountQuerySuite))
}

func (s *AccountQuerySuite) TestFindByEmail() {
	s.store.SeedAccount(s.orgID, registration.Account{
		ID:       id.AccountID(uuid.New()),
		Email:    "nikola.tesla@example.org",
		Nickname: "the-greatest-genius",
	})

	s.Run("exact match", func() {
		account, err := s.store.FindByEmail(s.T().Context(), s.orgID, "nikola.tesla@example.org")
		s.Require().NoError(err)
		s.Equal("the-greatest-genius", account.Nickname)
	})
	s.Run("case insensitive", func() {
		_, err := s.store.FindByEmail(s.T().Context(), s.orgID, "NIKOLA.TESLA@EXAMPLE.ORG")
		s.NoError(err)
	})
	s.Run("unknown email", func() {
		_, err := s.store.FindByEmail(s.T().Context(), s.orgID, "marconi@example.org")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
	s.Run("other organization", func() {
		_, err := s.store.FindByEmail(s.T().Context(), id.OrganizationID(uuid.New()), "nikola.tesla@example.org")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *AccountQuerySuite) TestFindByNickname() {
	s.store.SeedAccount(s.orgID, registration.Account{
		ID:       id.AccountID(uuid.New()),
		Email:    "nikola.tesla@example.org",
		Nickname: "The-Greatest-Genius",
	})

	account, err := s.store.FindByNickname(s.T().Context(), s.orgID, "the-greatest-genius")
	s.Require().NoError(err)
	s.Equal("nikola.tesla@example.org", account.Email)
}

func (s *AccountQuerySuite) TestActivelyInvitedRowsAreInvisible() {
	s.store.SeedAccount(s.orgID, registration.Account{
		ID:              id.AccountID(uuid.New()),
		Email:           "nikola.tesla@example.org",
		Nickname:        "the-greatest-genius",
		ActivelyInvited: true,
	})

	_, err := s.store.FindByEmail(s.T().Context(), s.orgID, "nikola.tesla@example.org")
	s.ErrorIs(err, sentinel.ErrNotFound)
	_, err = s.store.FindByNickname(s.T().Context(), s.orgID, "the-greatest-genius")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *AccountQuerySuite) TestHasPendingInvitation() {
	s.store.SeedPendingInvitation(s.orgID, "Nikola.Tesla@example.org")

	pending, err := s.store.HasPendingInvitation(s.T().Context(), s.orgID, "nikola.tesla@EXAMPLE.org")
	s.Require().NoError(err)
	s.True(pending)

	pending, err = s.store.HasPendingInvitation(s.T().Context(), id.OrganizationID(uuid.New()), "nikola.tesla@example.org")
	s.Require().NoError(err)
	s.False(pending)
}
