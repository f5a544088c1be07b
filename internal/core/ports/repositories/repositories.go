package repositories

// RepositoryProvider bundles every repository implementation handed to the
// service container.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryFacade
	PartyRepo       PartyRepositoryFacade
	InvoiceRepo     InvoiceRepositoryFacade
	ProductRepo     ProductRepositoryFacade
}
