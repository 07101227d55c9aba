package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"regate/internal/registration"
	id "regate/pkg/domain"
	"regate/pkg/platform/sentinel"
)

// Postgres implements AccountQuery on the accounts and invitations tables.
//
// An account is "actively invited" while its invitation row is still pending;
// such rows are excluded from uniqueness lookups because the registration is
// expected to claim them.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const notActivelyInvited = `NOT EXISTS (
			SELECT 1 FROM invitations i
			WHERE i.account_id = a.id AND i.status = 'pending'
		  )`

func (s *Postgres) FindByEmail(ctx context.Context, orgID id.OrganizationID, email string) (*registration.Account, error) {
	query := `
		SELECT a.id, a.email, a.nickname
		FROM accounts a
		WHERE a.organization_id = $1
		  AND lower(a.email) = lower($2)
		  AND ` + notActivelyInvited
	return s.scanOne(s.db.QueryRowContext(ctx, query, uuid.UUID(orgID), email))
}

func (s *Postgres) FindByNickname(ctx context.Context, orgID id.OrganizationID, nickname string) (*registration.Account, error) {
	query := `
		SELECT a.id, a.email, a.nickname
		FROM accounts a
		WHERE a.organization_id = $1
		  AND lower(a.nickname) = lower($2)
		  AND ` + notActivelyInvited
	return s.scanOne(s.db.QueryRowContext(ctx, query, uuid.UUID(orgID), nickname))
}

func (s *Postgres) HasPendingInvitation(ctx context.Context, orgID id.OrganizationID, email string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM invitations i
			JOIN accounts a ON a.id = i.account_id
			WHERE a.organization_id = $1
			  AND lower(a.email) = lower($2)
			  AND i.status = 'pending'
		)`
	var pending bool
	if err := s.db.QueryRowContext(ctx, query, uuid.UUID(orgID), email).Scan(&pending); err != nil {
		return false, fmt.Errorf("pending invitation lookup: %w", err)
	}
	return pending, nil
}

func (s *Postgres) scanOne(row *sql.Row) (*registration.Account, error) {
	var (
		account registration.Account
		rawID   uuid.UUID
	)
	err := row.Scan(&rawID, &account.Email, &account.Nickname)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan account: %w", err)
	}
	account.ID = id.AccountID(rawID)
	return &account, nil
}
