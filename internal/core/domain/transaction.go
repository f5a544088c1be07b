package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one product line on a product-bearing transaction.
type LineItem struct {
	ProductID string          `json:"productID"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Discount  decimal.Decimal `json:"discount"` // absolute discount on the line
}

// Transaction is a single ledger-affecting record. Amount is signed: the sign
// is fixed at creation time by the normalizer and encodes the direction of
// the party-balance effect (or, for business-internal categories, the
// income/expense direction).
type Transaction struct {
	TransactionID    string          `json:"transactionID"` // Primary key (UUID)
	Sequence         int64           `json:"sequence"`      // Storage-assigned, orders same-day entries
	Date             time.Time       `json:"date"`          // Calendar date, no time component
	Amount           decimal.Decimal `json:"amount"`        // Signed, precise decimal
	Category         string          `json:"category"`      // Concrete category full name
	Flow             FlowKind        `json:"flow"`          // Semantic tag resolved at creation
	Ledger           LedgerEffect    `json:"ledger"`        // Ledger effect resolved at creation
	Description      string          `json:"description"`
	CustomerID       string          `json:"customerID"`       // Exactly one of CustomerID/LenderID, or neither
	LenderID         string          `json:"lenderID"`         //
	AgreementID      string          `json:"agreementID"`      // Optional financing agreement link
	RelatedInvoiceID string          `json:"relatedInvoiceID"` // Optional invoice link
	LineItems        []LineItem      `json:"lineItems,omitempty"`
	AuditFields
}

// PartyRef returns the referenced party ID and kind, or ("", RelevantNone)
// for business-internal transactions.
func (t Transaction) PartyRef() (string, PartyKind) {
	if t.CustomerID != "" {
		return t.CustomerID, PartyCustomer
	}
	if t.LenderID != "" {
		return t.LenderID, PartyLender
	}
	return "", RelevantNone
}

// Before reports whether t sorts strictly before other in the documented
// (date, sequence) chronological order.
func (t Transaction) Before(other Transaction) bool {
	if !t.Date.Equal(other.Date) {
		return t.Date.Before(other.Date)
	}
	return t.Sequence < other.Sequence
}

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(ts time.Time) time.Time {
	y, m, d := ts.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
