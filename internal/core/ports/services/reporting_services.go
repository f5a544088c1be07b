package services

import (
	"context"
	"time"

	"github.com/bahikhata/bahikhata/internal/core/domain"
)

// ReportingSvcFacade computes period-bounded aggregates over the transaction
// and invoice history.
type ReportingSvcFacade interface {
	// ProfitAndLoss computes the period P&L.
	ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.ProfitAndLossReport, error)

	// Valuation computes the point-in-time valuation snapshot.
	Valuation(ctx context.Context, asOf time.Time) (*domain.ValuationReport, error)

	// CashFlow summarizes per-ledger in/out flows for the period.
	CashFlow(ctx context.Context, from, to time.Time) (*domain.CashFlowReport, error)

	// TopCustomers ranks customers by period invoice revenue, top 10.
	TopCustomers(ctx context.Context, from, to time.Time) ([]domain.TopCustomerRow, error)

	// TopProducts ranks products by period invoiced revenue, top 10.
	TopProducts(ctx context.Context, from, to time.Time) ([]domain.TopProductRow, error)
}
