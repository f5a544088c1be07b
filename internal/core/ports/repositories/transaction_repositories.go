package repositories

import (
	"context"

	"github.com/bahikhata/bahikhata/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the full transaction history in
	// (date, sequence) ascending order. Projections are whole-history folds;
	// date windowing belongs to the storage boundary, not the fold.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByParty retrieves one party's transactions in
	// (date, sequence) ascending order.
	ListTransactionsByParty(ctx context.Context, partyID string, kind domain.PartyKind) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
// Stock deltas are applied to products inside the same database transaction
// so a ledger record and its inventory effect can never diverge.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction, assigns its sequence number
	// and applies the given stock deltas atomically.
	SaveTransaction(ctx context.Context, txn domain.Transaction, stockDeltas map[string]decimal.Decimal) (*domain.Transaction, error)

	// UpdateTransaction replaces a transaction's mutable fields and applies
	// the net stock correction atomically. The sequence number is preserved.
	UpdateTransaction(ctx context.Context, txn domain.Transaction, stockDeltas map[string]decimal.Decimal) error

	// DeleteTransaction removes a transaction and applies the reversing stock
	// deltas atomically.
	DeleteTransaction(ctx context.Context, transactionID string, stockDeltas map[string]decimal.Decimal) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
