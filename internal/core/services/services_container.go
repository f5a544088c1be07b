package services

import (
	portsrepo "github.com/bahikhata/bahikhata/internal/core/ports/repositories"
	portssvc "github.com/bahikhata/bahikhata/internal/core/ports/services"
)

// NewServiceContainer creates a service container with properly initialized
// dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo, repos.PartyRepo, repos.ProductRepo),
		Ledger:      NewLedgerService(repos.TransactionRepo),
		Statement:   NewStatementService(repos.TransactionRepo, repos.PartyRepo, repos.InvoiceRepo),
		Reporting:   NewReportingService(repos.TransactionRepo, repos.PartyRepo, repos.InvoiceRepo, repos.ProductRepo),
	}
}
