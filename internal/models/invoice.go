package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the storage representation of an invoice row.
type Invoice struct {
	InvoiceID       string          `db:"invoice_id"`
	CustomerID      string          `db:"customer_id"`
	InvoiceDate     time.Time       `db:"invoice_date"`
	Status          string          `db:"status"`
	AmountBeforeTax decimal.Decimal `db:"amount_before_tax"`
	TaxAmount       decimal.Decimal `db:"tax_amount"`
	GrandTotal      decimal.Decimal `db:"grand_total"`
	PaidAmount      decimal.Decimal `db:"paid_amount"`
	AuditFields
}

// InvoiceLineItem is the storage representation of one invoice line.
type InvoiceLineItem struct {
	InvoiceID string          `db:"invoice_id"`
	Position  int             `db:"position"`
	ProductID string          `db:"product_id"`
	Quantity  decimal.Decimal `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	Discount  decimal.Decimal `db:"discount"`
}
