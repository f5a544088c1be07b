package domain

import "github.com/shopspring/decimal"

// Product is a stocked item. CurrentStock moves with product-bearing
// transactions and stock adjustments; CostPrice values the stock on hand.
type Product struct {
	ProductID    string          `json:"productID"` // Primary key (UUID)
	Name         string          `json:"name"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	AuditFields
}
