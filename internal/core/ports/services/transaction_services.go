package services

import (
	"context"

	"github.com/bahikhata/bahikhata/internal/core/domain"
	"github.com/bahikhata/bahikhata/internal/dto"
)

// TransactionSvcFacade is the write path: it normalizes proposed transactions
// (category resolution, sign convention, line-item totals, stock deltas) and
// persists them. Writes are serialized; a failed call persists nothing.
type TransactionSvcFacade interface {
	// CreateTransaction validates, normalizes and persists a new transaction.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// UpdateTransaction replaces an existing transaction's content, keeping
	// its identity and sequence, and corrects any stock effects.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction and reverses its stock effects.
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error

	// GetTransaction retrieves a transaction by ID.
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)
}
