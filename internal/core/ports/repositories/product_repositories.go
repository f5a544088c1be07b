package repositories

import (
	"context"

	"github.com/bahikhata/bahikhata/internal/core/domain"
)

// ProductReader defines read operations for product data.
type ProductReader interface {
	// ListProducts retrieves all products ordered by name.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// FindProductsByIDs retrieves the given products keyed by ID. Missing IDs
	// are simply absent from the result.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)
}

// ProductWriter defines write operations for product data. Stock movement is
// not here: it is applied by the transaction writer inside its own database
// transaction.
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error
}

// ProductRepositoryFacade combines all product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
