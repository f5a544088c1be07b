package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bahikhata/bahikhata/internal/core/domain"
	portsrepo "github.com/bahikhata/bahikhata/internal/core/ports/repositories"
	"github.com/bahikhata/bahikhata/internal/models"
	"github.com/bahikhata/bahikhata/internal/utils/mapping"
)

// PgxProductRepository persists products. Stock movement is applied by the
// transaction repository inside its own database transaction.
type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `
	product_id, name, cost_price, selling_price, current_stock,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveProduct persists a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (product_id, name, cost_price, selling_price, current_stock, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID,
		m.Name,
		m.CostPrice,
		m.SellingPrice,
		m.CurrentStock,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product %s: %w", m.ProductID, err)
	}
	return nil
}

// ListProducts retrieves all products ordered by name.
func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name ASC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// FindProductsByIDs retrieves the given products keyed by ID.
func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	out := make(map[string]domain.Product, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	defer rows.Close()
	products, err := collectProducts(rows)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		out[p.ProductID] = p
	}
	return out, nil
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		var m models.Product
		if err := rows.Scan(
			&m.ProductID,
			&m.Name,
			&m.CostPrice,
			&m.SellingPrice,
			&m.CurrentStock,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, mapping.ToDomainProduct(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product rows: %w", err)
	}
	return products, nil
}
