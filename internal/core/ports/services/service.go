package services

// ServiceContainer bundles the engine's service facades for the calling
// layer.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Ledger      LedgerSvcFacade
	Statement   StatementSvcFacade
	Reporting   ReportingSvcFacade
}
