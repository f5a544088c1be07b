package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bahikhata/bahikhata/internal/core/domain"
	portsrepo "github.com/bahikhata/bahikhata/internal/core/ports/repositories"
	"github.com/bahikhata/bahikhata/internal/models"
	"github.com/bahikhata/bahikhata/internal/utils/mapping"
)

// PgxInvoiceRepository reads invoices and their payment slices. Invoice
// writes happen in the billing layer outside this module.
type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// ListInvoices retrieves invoices dated within [from, to] with their lines.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, from, to time.Time) ([]domain.Invoice, error) {
	query := `
		SELECT invoice_id, customer_id, invoice_date, status, amount_before_tax,
		       tax_amount, grand_total, paid_amount,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM invoices
		WHERE invoice_date >= $1 AND invoice_date <= $2
		ORDER BY invoice_date ASC, invoice_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	var ms []models.Invoice
	ids := make([]string, 0)
	for rows.Next() {
		var m models.Invoice
		if err := rows.Scan(
			&m.InvoiceID,
			&m.CustomerID,
			&m.InvoiceDate,
			&m.Status,
			&m.AmountBeforeTax,
			&m.TaxAmount,
			&m.GrandTotal,
			&m.PaidAmount,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		ms = append(ms, m)
		ids = append(ids, m.InvoiceID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoice rows: %w", err)
	}

	lines, err := r.loadInvoiceLines(ctx, ids)
	if err != nil {
		return nil, err
	}

	invoices := make([]domain.Invoice, 0, len(ms))
	for _, m := range ms {
		invoices = append(invoices, mapping.ToDomainInvoice(m, lines[m.InvoiceID]))
	}
	return invoices, nil
}

// ListInvoicePayments retrieves the paid slices of invoices for one customer,
// or all customers when customerID is empty. Unpaid invoices are excluded.
func (r *PgxInvoiceRepository) ListInvoicePayments(ctx context.Context, customerID string) ([]domain.InvoicePayment, error) {
	query := `
		SELECT invoice_id, customer_id, invoice_date, paid_amount
		FROM invoices
		WHERE paid_amount <> 0 AND ($1 = '' OR customer_id = $1)
		ORDER BY invoice_date ASC, invoice_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.InvoicePayment
	for rows.Next() {
		var p domain.InvoicePayment
		if err := rows.Scan(&p.InvoiceID, &p.CustomerID, &p.InvoiceDate, &p.PaidAmount); err != nil {
			return nil, fmt.Errorf("failed to scan invoice payment row: %w", err)
		}
		p.InvoiceDate = domain.DateOnly(p.InvoiceDate)
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoice payment rows: %w", err)
	}
	return payments, nil
}

func (r *PgxInvoiceRepository) loadInvoiceLines(ctx context.Context, invoiceIDs []string) (map[string][]models.InvoiceLineItem, error) {
	out := make(map[string][]models.InvoiceLineItem)
	if len(invoiceIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT invoice_id, position, product_id, quantity, unit_price, discount
		FROM invoice_line_items
		WHERE invoice_id = ANY($1)
		ORDER BY invoice_id, position;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line models.InvoiceLineItem
		if err := rows.Scan(&line.InvoiceID, &line.Position, &line.ProductID, &line.Quantity, &line.UnitPrice, &line.Discount); err != nil {
			return nil, fmt.Errorf("failed to scan invoice line row: %w", err)
		}
		out[line.InvoiceID] = append(out[line.InvoiceID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoice line rows: %w", err)
	}
	return out, nil
}
