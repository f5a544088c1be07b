package domain

import "github.com/shopspring/decimal"

// LenderType refines lender parties. Suppliers carry an opening payable
// balance; financial entities (banks, chit funds, private financiers) start
// from zero and build their balance purely from transactions.
type LenderType string

const (
	LenderSupplier  LenderType = "supplier"
	LenderFinancial LenderType = "financial"
)

// Party is a customer or a lender/supplier with whom the business keeps a
// running balance. For customers OpeningBalance is a receivable (amount the
// party owes the business); for suppliers it is the initial payable (amount
// the business owes the party). Customers and lenders are disjoint sets that
// share the statement projection.
type Party struct {
	PartyID        string          `json:"partyID"` // Primary key (UUID)
	Kind           PartyKind       `json:"kind"`    // customer or lender
	LenderType     LenderType      `json:"lenderType,omitempty"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	AuditFields
}

// StatementOpening is the balance a statement starts from before any
// transaction is applied: customers and suppliers carry their opening figure,
// other lender types start at zero.
func (p Party) StatementOpening() decimal.Decimal {
	if p.Kind == PartyCustomer || p.LenderType == LenderSupplier {
		return p.OpeningBalance
	}
	return decimal.Zero
}
