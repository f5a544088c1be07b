package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Rollback rolls back a transaction. It is deferred as a safety net for
// early returns; after a successful commit it fails with ErrTxClosed, which
// is expected and ignored.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) {
	_ = tx.Rollback(ctx)
}
