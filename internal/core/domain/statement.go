package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementEntry is one row of a party statement. Real transactions carry
// their sequence; invoice-payment rows are synthesized (IsInvoicePayment) and
// sort after real entries on the same date.
type StatementEntry struct {
	Date             time.Time       `json:"date"`
	Sequence         int64           `json:"sequence"`
	Category         string          `json:"category"`
	Group            string          `json:"group"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"` // signed party-balance delta
	RunningBalance   decimal.Decimal `json:"runningBalance"`
	TransactionID    string          `json:"transactionID,omitempty"`
	InvoiceID        string          `json:"invoiceID,omitempty"`
	IsInvoicePayment bool            `json:"isInvoicePayment"`
}

// PartyStatement is a chronological running-balance view of one party.
// Opening and Closing always reflect the full unfiltered history; a category
// filter only narrows which entries are listed.
type PartyStatement struct {
	PartyID string           `json:"partyID"`
	Kind    PartyKind        `json:"kind"`
	Opening decimal.Decimal  `json:"opening"`
	Entries []StatementEntry `json:"entries"`
	Closing decimal.Decimal  `json:"closing"`
}
