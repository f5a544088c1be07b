// Package accounting holds the pure sign and flow calculations shared by the
// normalizer (write path) and the projectors (read path), so the two sides
// can never disagree on a convention.
package accounting

import (
	"fmt"

	"github.com/bahikhata/bahikhata/internal/apperrors"
	"github.com/bahikhata/bahikhata/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NormalizeAmount computes the signed amount stored on a transaction from the
// user-entered magnitude. Sign precedence:
//
//  1. Party-relevant category with a party supplied: |raw| x PartySign.
//  2. Business-internal: contra categories move cash out (deposit) or in
//     (withdrawal); otherwise expense flows are negative, income flows positive.
//  3. Stock adjustments always normalize to zero; they touch inventory only.
//
// The raw magnitude must be strictly positive for everything except stock
// adjustments.
func NormalizeAmount(c domain.ConcreteCategory, raw decimal.Decimal, hasParty bool) (decimal.Decimal, error) {
	if c.Flow == domain.FlowNeutralStock {
		return decimal.Zero, nil
	}
	if raw.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: got %s for category %q", apperrors.ErrInvalidAmount, raw.String(), c.FullName)
	}
	abs := raw.Abs()

	if c.RelevantTo != domain.RelevantNone && hasParty {
		return abs.Mul(decimal.NewFromInt(int64(c.PartySign))), nil
	}

	switch c.Ledger {
	case domain.AffectsCashOutBankIn:
		// Cash leaves the drawer even though the flow tag reads neutral.
		return abs.Neg(), nil
	case domain.AffectsCashInBankOut:
		return abs, nil
	}
	if c.Flow.IsExpense() {
		return abs.Neg(), nil
	}
	return abs, nil
}

// LedgerFlow computes a transaction's contribution to one ledger. Contra
// categories post to both ledgers with opposite signs; other categories flow
// by their income/expense tag. Categories that do not touch the ledger
// contribute zero.
func LedgerFlow(c domain.ConcreteCategory, amount decimal.Decimal, ledger domain.Ledger) decimal.Decimal {
	if !c.Ledger.Includes(ledger) {
		return decimal.Zero
	}
	abs := amount.Abs()
	switch c.Ledger {
	case domain.AffectsCashOutBankIn:
		if ledger == domain.CashLedger {
			return abs.Neg()
		}
		return abs
	case domain.AffectsCashInBankOut:
		if ledger == domain.CashLedger {
			return abs
		}
		return abs.Neg()
	}
	switch {
	case c.Flow.IsIncome():
		return abs
	case c.Flow.IsExpense():
		return abs.Neg()
	}
	return decimal.Zero
}

// LineItemsTotal computes the grand total of product line items:
// sum of quantity x unit price minus the line discount.
func LineItemsTotal(items []domain.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		line := item.Quantity.Mul(item.UnitPrice).Sub(item.Discount)
		total = total.Add(line)
	}
	return total
}

// StockDelta returns the signed inventory movement a transaction applies per
// product. Sales reduce stock, purchases increase it, and the two stock
// adjustment categories move it directly by the entered quantity.
func StockDelta(c domain.ConcreteCategory, items []domain.LineItem) map[string]decimal.Decimal {
	if len(items) == 0 {
		return nil
	}
	var sign decimal.Decimal
	switch {
	case c.ProductSale:
		sign = decimal.NewFromInt(-1)
	case c.ProductPurchase:
		sign = decimal.NewFromInt(1)
	case c.Flow == domain.FlowNeutralStock:
		if c.BaseName == "Stock Adjustment (Decrease)" {
			sign = decimal.NewFromInt(-1)
		} else {
			sign = decimal.NewFromInt(1)
		}
	default:
		return nil
	}
	deltas := make(map[string]decimal.Decimal, len(items))
	for _, item := range items {
		deltas[item.ProductID] = deltas[item.ProductID].Add(item.Quantity.Mul(sign))
	}
	return deltas
}
