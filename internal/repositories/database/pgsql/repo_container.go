package pgsql

import (
	portsrepo "github.com/bahikhata/bahikhata/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		PartyRepo:       newPgxPartyRepository(dbPool),
		InvoiceRepo:     newPgxInvoiceRepository(dbPool),
		ProductRepo:     newPgxProductRepository(dbPool),
	}
}
