package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bahikhata/bahikhata/internal/apperrors"
	"github.com/bahikhata/bahikhata/internal/core/domain"
	portsrepo "github.com/bahikhata/bahikhata/internal/core/ports/repositories"
	"github.com/bahikhata/bahikhata/internal/models"
	"github.com/bahikhata/bahikhata/internal/utils/mapping"
)

// PgxPartyRepository persists customers and lenders.
type PgxPartyRepository struct {
	BaseRepository
}

func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

const partyColumns = `
	party_id, kind, lender_type, name, phone, opening_balance,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveParty persists a new party.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		INSERT INTO parties (party_id, kind, lender_type, name, phone, opening_balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PartyID,
		m.Kind,
		m.LenderType,
		m.Name,
		m.Phone,
		m.OpeningBalance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert party %s: %w", m.PartyID, err)
	}
	return nil
}

// FindPartyByID retrieves a party by ID and kind, or nil when absent.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string, kind domain.PartyKind) (*domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE party_id = $1 AND kind = $2;`
	row := r.Pool.QueryRow(ctx, query, partyID, string(kind))
	m, err := scanParty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query party %s: %w", partyID, err)
	}
	party := mapping.ToDomainParty(m)
	return &party, nil
}

// ListParties retrieves all parties of a kind ordered by name.
func (r *PgxPartyRepository) ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	if kind != domain.PartyCustomer && kind != domain.PartyLender {
		return nil, fmt.Errorf("%w: unknown party kind %q", apperrors.ErrValidation, kind)
	}
	query := `SELECT ` + partyColumns + ` FROM parties WHERE kind = $1 ORDER BY name ASC;`
	rows, err := r.Pool.Query(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	var parties []domain.Party
	for rows.Next() {
		m, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan party row: %w", err)
		}
		parties = append(parties, mapping.ToDomainParty(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate party rows: %w", err)
	}
	return parties, nil
}

func scanParty(row pgx.Row) (models.Party, error) {
	var m models.Party
	err := row.Scan(
		&m.PartyID,
		&m.Kind,
		&m.LenderType,
		&m.Name,
		&m.Phone,
		&m.OpeningBalance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
