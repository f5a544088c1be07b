package repositories

import (
	"context"
	"time"

	"github.com/bahikhata/bahikhata/internal/core/domain"
)

// InvoiceReader defines the invoice reads the projection and reporting layers
// consume. Invoice creation lives in the billing layer, outside this module.
type InvoiceReader interface {
	// ListInvoices retrieves invoices dated within [from, to] inclusive,
	// with their line items.
	ListInvoices(ctx context.Context, from, to time.Time) ([]domain.Invoice, error)

	// ListInvoicePayments retrieves the paid slices of a customer's invoices
	// (all customers when customerID is empty), ordered by invoice date.
	ListInvoicePayments(ctx context.Context, customerID string) ([]domain.InvoicePayment, error)
}

// InvoiceRepositoryFacade is the full invoice repository surface.
type InvoiceRepositoryFacade interface {
	InvoiceReader
}
