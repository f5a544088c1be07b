package models

import "github.com/shopspring/decimal"

// Product is the storage representation of a product row.
type Product struct {
	ProductID    string          `db:"product_id"`
	Name         string          `db:"name"`
	CostPrice    decimal.Decimal `db:"cost_price"`
	SellingPrice decimal.Decimal `db:"selling_price"`
	CurrentStock decimal.Decimal `db:"current_stock"`
	AuditFields
}
