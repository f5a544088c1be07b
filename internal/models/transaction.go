package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the storage representation of a ledger transaction row.
// Optional references are pointers so they round-trip as SQL NULLs.
type Transaction struct {
	TransactionID    string          `db:"transaction_id"`
	Sequence         int64           `db:"sequence"`
	TxnDate          time.Time       `db:"txn_date"`
	Amount           decimal.Decimal `db:"amount"`
	Category         string          `db:"category"`
	Flow             string          `db:"flow"`
	LedgerEffect     string          `db:"ledger_effect"`
	Description      string          `db:"description"`
	CustomerID       *string         `db:"customer_id"`
	LenderID         *string         `db:"lender_id"`
	AgreementID      *string         `db:"agreement_id"`
	RelatedInvoiceID *string         `db:"related_invoice_id"`
	AuditFields
}

// TransactionLineItem is the storage representation of one product line.
type TransactionLineItem struct {
	TransactionID string          `db:"transaction_id"`
	Position      int             `db:"position"`
	ProductID     string          `db:"product_id"`
	Quantity      decimal.Decimal `db:"quantity"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	Discount      decimal.Decimal `db:"discount"`
}
