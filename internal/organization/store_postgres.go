package organization

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	id "regate/pkg/domain"
	"regate/pkg/platform/sentinel"
)

// Postgres implements Store on the organizations table.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) CreateIfHostAvailable(ctx context.Context, org *Organization) error {
	const query = `
		INSERT INTO organizations (id, name, host, nickname_max_length, created_at)
		VALUES ($1, $2, lower($3), $4, $5)`

	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(org.ID), org.Name, org.Host, org.NicknameMaxLength, org.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, orgID id.OrganizationID) (*Organization, error) {
	const query = `
		SELECT id, name, host, nickname_max_length, created_at
		FROM organizations
		WHERE id = $1`
	return s.scanOne(s.db.QueryRowContext(ctx, query, uuid.UUID(orgID)))
}

func (s *Postgres) FindByHost(ctx context.Context, host string) (*Organization, error) {
	const query = `
		SELECT id, name, host, nickname_max_length, created_at
		FROM organizations
		WHERE host = lower($1)`
	return s.scanOne(s.db.QueryRowContext(ctx, query, host))
}

func (s *Postgres) scanOne(row *sql.Row) (*Organization, error) {
	var (
		org   Organization
		rawID uuid.UUID
	)
	err := row.Scan(&rawID, &org.Name, &org.Host, &org.NicknameMaxLength, &org.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan organization: %w", err)
	}
	org.ID = id.OrganizationID(rawID)
	return &org, nil
}
