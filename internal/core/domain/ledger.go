package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one transaction's appearance in a day ledger: its flow split
// into debit/credit columns (absolute values) plus the running balance after
// the entry.
type LedgerEntry struct {
	Transaction    Transaction     `json:"transaction"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerDay is the projection of one ledger for one calendar date: the
// opening balance carried in from all prior history, the day's entries in
// (date, sequence) order, and the closing totals.
type LedgerDay struct {
	Ledger      Ledger          `json:"ledger"`
	Date        time.Time       `json:"date"`
	Opening     decimal.Decimal `json:"opening"`
	Entries     []LedgerEntry   `json:"entries"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
	Closing     decimal.Decimal `json:"closing"`
}
