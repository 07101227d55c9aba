package store_test

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"regate/internal/registration/store"
	id "regate/pkg/domain"
	"regate/pkg/platform/sentinel"
)

func newMockStore(t *testing.T) (*store.Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return store.NewPostgres(db), mock
}

func TestPostgresFindByEmail(t *testing.T) {
	orgID := id.OrganizationID(uuid.New())
	accountID := uuid.New()

	t.Run("found", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(`SELECT a\.id, a\.email, a\.nickname`).
			WithArgs(uuid.UUID(orgID), "nikola.tesla@example.org").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "nickname"}).
				AddRow(accountID, "nikola.tesla@example.org", "the-greatest-genius"))

		account, err := s.FindByEmail(t.Context(), orgID, "nikola.tesla@example.org")
		require.NoError(t, err)
		require.Equal(t, id.AccountID(accountID), account.ID)
		require.Equal(t, "the-greatest-genius", account.Nickname)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found maps to sentinel", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(`SELECT a\.id, a\.email, a\.nickname`).
			WithArgs(uuid.UUID(orgID), "marconi@example.org").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "nickname"}))

		_, err := s.FindByEmail(t.Context(), orgID, "marconi@example.org")
		require.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("query failure propagates", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(`SELECT a\.id, a\.email, a\.nickname`).
			WillReturnError(errors.New("connection reset"))

		_, err := s.FindByEmail(t.Context(), orgID, "nikola.tesla@example.org")
		require.Error(t, err)
		require.NotErrorIs(t, err, sentinel.ErrNotFound)
	})
}

func TestPostgresFindByNickname(t *testing.T) {
	orgID := id.OrganizationID(uuid.New())
	s, mock := newMockStore(t)
	mock.ExpectQuery(`lower\(a\.nickname\) = lower\(\$2\)`).
		WithArgs(uuid.UUID(orgID), "the-greatest-genius").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "nickname"}).
			AddRow(uuid.New(), "nikola.tesla@example.org", "the-greatest-genius"))

	account, err := s.FindByNickname(t.Context(), orgID, "the-greatest-genius")
	require.NoError(t, err)
	require.Equal(t, "nikola.tesla@example.org", account.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresHasPendingInvitation(t *testing.T) {
	orgID := id.OrganizationID(uuid.New())

	t.Run("pending", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(uuid.UUID(orgID), "nikola.tesla@example.org").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		pending, err := s.HasPendingInvitation(t.Context(), orgID, "nikola.tesla@example.org")
		require.NoError(t, err)
		require.True(t, pending)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(`SELECT EXISTS`).
			WillReturnError(errors.New("connection reset"))

		_, err := s.HasPendingInvitation(t.Context(), orgID, "nikola.tesla@example.org")
		require.Error(t, err)
	})
}
