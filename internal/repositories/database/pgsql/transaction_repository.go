package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bahikhata/bahikhata/internal/apperrors"
	"github.com/bahikhata/bahikhata/internal/core/domain"
	portsrepo "github.com/bahikhata/bahikhata/internal/core/ports/repositories"
	"github.com/bahikhata/bahikhata/internal/models"
	"github.com/bahikhata/bahikhata/internal/utils/mapping"
)

// PgxTransactionRepository persists ledger transactions and their line items,
// applying product stock deltas in the same database transaction.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `
	transaction_id, sequence, txn_date, amount, category, flow, ledger_effect,
	description, customer_id, lender_id, agreement_id, related_invoice_id,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveTransaction inserts the transaction, its line items and the stock
// deltas atomically. The row's sequence number is assigned by the database
// and returned on the saved transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, stockDeltas map[string]decimal.Decimal) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTransaction(txn)
	insertQuery := `
		INSERT INTO transactions (
			transaction_id, txn_date, amount, category, flow, ledger_effect,
			description, customer_id, lender_id, agreement_id, related_invoice_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING sequence;
	`
	err = tx.QueryRow(ctx, insertQuery,
		m.TransactionID,
		m.TxnDate,
		m.Amount,
		m.Category,
		m.Flow,
		m.LedgerEffect,
		m.Description,
		m.CustomerID,
		m.LenderID,
		m.AgreementID,
		m.RelatedInvoiceID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&txn.Sequence)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}

	if err := r.insertLineItems(ctx, tx, txn.TransactionID, txn.LineItems); err != nil {
		return nil, err
	}
	if err := r.applyStockDeltas(ctx, tx, stockDeltas); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction insert: %w", err)
	}
	return &txn, nil
}

// UpdateTransaction replaces the row's mutable fields and line items,
// applying the net stock correction atomically. The sequence is preserved.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, stockDeltas map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTransaction(txn)
	updateQuery := `
		UPDATE transactions SET
			txn_date = $2, amount = $3, category = $4, flow = $5,
			ledger_effect = $6, description = $7, customer_id = $8,
			lender_id = $9, agreement_id = $10, related_invoice_id = $11,
			last_updated_at = $12, last_updated_by = $13
		WHERE transaction_id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		m.TransactionID,
		m.TxnDate,
		m.Amount,
		m.Category,
		m.Flow,
		m.LedgerEffect,
		m.Description,
		m.CustomerID,
		m.LenderID,
		m.AgreementID,
		m.RelatedInvoiceID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, m.TransactionID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM transaction_line_items WHERE transaction_id = $1;`, m.TransactionID); err != nil {
		return fmt.Errorf("failed to clear line items for %s: %w", m.TransactionID, err)
	}
	if err := r.insertLineItems(ctx, tx, txn.TransactionID, txn.LineItems); err != nil {
		return err
	}
	if err := r.applyStockDeltas(ctx, tx, stockDeltas); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction update: %w", err)
	}
	return nil
}

// DeleteTransaction removes the row and applies the reversing stock deltas
// atomically. Line items cascade with the row.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, stockDeltas map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}

	if err := r.applyStockDeltas(ctx, tx, stockDeltas); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction delete: %w", err)
	}
	return nil
}

// FindTransactionByID retrieves one transaction with its line items, or nil
// when absent.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	row := r.Pool.QueryRow(ctx, query, transactionID)
	m, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query transaction %s: %w", transactionID, err)
	}

	lines, err := r.loadLineItems(ctx, []string{transactionID})
	if err != nil {
		return nil, err
	}
	txn := mapping.ToDomainTransaction(m, lines[transactionID])
	return &txn, nil
}

// ListTransactions retrieves the full history in (date, sequence) order.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY txn_date ASC, sequence ASC;`
	return r.queryTransactions(ctx, query)
}

// ListTransactionsByParty retrieves one party's transactions in
// (date, sequence) order.
func (r *PgxTransactionRepository) ListTransactionsByParty(ctx context.Context, partyID string, kind domain.PartyKind) ([]domain.Transaction, error) {
	column := "customer_id"
	if kind == domain.PartyLender {
		column = "lender_id"
	}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE ` + column + ` = $1 ORDER BY txn_date ASC, sequence ASC;`
	return r.queryTransactions(ctx, query, partyID)
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	ids := make([]string, 0)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
		ids = append(ids, m.TransactionID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction rows: %w", err)
	}

	lines, err := r.loadLineItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	txns := make([]domain.Transaction, 0, len(ms))
	for _, m := range ms {
		txns = append(txns, mapping.ToDomainTransaction(m, lines[m.TransactionID]))
	}
	return txns, nil
}

func (r *PgxTransactionRepository) insertLineItems(ctx context.Context, tx pgx.Tx, transactionID string, items []domain.LineItem) error {
	rows := mapping.ToModelLineItems(transactionID, items)
	if len(rows) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO transaction_line_items (transaction_id, position, product_id, quantity, unit_price, discount)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, line := range rows {
		batch.Queue(lineQuery, line.TransactionID, line.Position, line.ProductID, line.Quantity, line.UnitPrice, line.Discount)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range rows {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert line item for %s: %w", transactionID, err)
		}
	}
	return nil
}

func (r *PgxTransactionRepository) loadLineItems(ctx context.Context, transactionIDs []string) (map[string][]models.TransactionLineItem, error) {
	out := make(map[string][]models.TransactionLineItem)
	if len(transactionIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT transaction_id, position, product_id, quantity, unit_price, discount
		FROM transaction_line_items
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, position;
	`
	rows, err := r.Pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line models.TransactionLineItem
		if err := rows.Scan(&line.TransactionID, &line.Position, &line.ProductID, &line.Quantity, &line.UnitPrice, &line.Discount); err != nil {
			return nil, fmt.Errorf("failed to scan line item row: %w", err)
		}
		out[line.TransactionID] = append(out[line.TransactionID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate line item rows: %w", err)
	}
	return out, nil
}

func (r *PgxTransactionRepository) applyStockDeltas(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal) error {
	for productID, delta := range deltas {
		if delta.Sign() == 0 {
			continue
		}
		tag, err := tx.Exec(ctx, `
			UPDATE products
			SET current_stock = current_stock + $2, last_updated_at = NOW()
			WHERE product_id = $1;
		`, productID, delta)
		if err != nil {
			return fmt.Errorf("failed to adjust stock for product %s: %w", productID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
		}
	}
	return nil
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Sequence,
		&m.TxnDate,
		&m.Amount,
		&m.Category,
		&m.Flow,
		&m.LedgerEffect,
		&m.Description,
		&m.CustomerID,
		&m.LenderID,
		&m.AgreementID,
		&m.RelatedInvoiceID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
