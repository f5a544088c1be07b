package accounting_test

import (
	"testing"

	"github.com/bahikhata/bahikhata/internal/apperrors"
	"github.com/bahikhata/bahikhata/internal/core/catalog"
	"github.com/bahikhata/bahikhata/internal/core/domain"
	"github.com/bahikhata/bahikhata/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustResolve(t *testing.T, base string, mode domain.PaymentMode) domain.ConcreteCategory {
	t.Helper()
	c, err := catalog.Resolve(base, mode)
	require.NoError(t, err)
	return c
}

func TestNormalizeAmount_PartySignDrivesTheStoredSign(t *testing.T) {
	raw := decimal.NewFromInt(250)
	modes := []domain.PaymentMode{domain.ModeCash, domain.ModeBank, domain.ModeCredit}

	for _, base := range catalog.All() {
		if base.RelevantTo == domain.RelevantNone || !base.NeedsPaymentMode {
			continue
		}
		for _, mode := range modes {
			c := mustResolve(t, base.Name, mode)
			signed, err := accounting.NormalizeAmount(c, raw, true)
			require.NoError(t, err)
			assert.Equal(t, base.PartySign, signed.Sign(),
				"category %q mode %q: stored sign must equal the party sign", base.Name, mode)
			assert.True(t, signed.Abs().Equal(raw), "magnitude must be preserved")
		}
	}
}

func TestNormalizeAmount_StockAdjustmentsAreAlwaysZero(t *testing.T) {
	for _, name := range []string{"Stock Adjustment (Increase)", "Stock Adjustment (Decrease)"} {
		c := mustResolve(t, name, "")
		signed, err := accounting.NormalizeAmount(c, decimal.NewFromInt(999), false)
		require.NoError(t, err)
		assert.True(t, signed.IsZero())

		// Even a bogus raw amount cannot make a stock adjustment move money.
		signed, err = accounting.NormalizeAmount(c, decimal.NewFromInt(-5), false)
		require.NoError(t, err)
		assert.True(t, signed.IsZero())
	}
}

func TestNormalizeAmount_RejectsNonPositiveMagnitude(t *testing.T) {
	c := mustResolve(t, "Business Expense", domain.ModeCash)

	_, err := accounting.NormalizeAmount(c, decimal.Zero, false)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	_, err = accounting.NormalizeAmount(c, decimal.NewFromInt(-10), false)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestNormalizeAmount_ContraDirections(t *testing.T) {
	deposit := mustResolve(t, "Cash Deposited to Bank", "")
	signed, err := accounting.NormalizeAmount(deposit, decimal.NewFromInt(2000), false)
	require.NoError(t, err)
	assert.True(t, signed.Equal(decimal.NewFromInt(-2000)), "a deposit takes cash out of the drawer")

	withdrawal := mustResolve(t, "Cash Withdrawn from Bank", "")
	signed, err = accounting.NormalizeAmount(withdrawal, decimal.NewFromInt(2000), false)
	require.NoError(t, err)
	assert.True(t, signed.Equal(decimal.NewFromInt(2000)), "a withdrawal puts cash into the drawer")
}

func TestNormalizeAmount_InternalExpenseAndIncome(t *testing.T) {
	expense := mustResolve(t, "Business Expense", domain.ModeBank)
	signed, err := accounting.NormalizeAmount(expense, decimal.NewFromInt(150), false)
	require.NoError(t, err)
	assert.True(t, signed.Equal(decimal.NewFromInt(-150)))

	income := mustResolve(t, "Other Business Income", domain.ModeCash)
	signed, err = accounting.NormalizeAmount(income, decimal.NewFromInt(150), false)
	require.NoError(t, err)
	assert.True(t, signed.Equal(decimal.NewFromInt(150)))
}

func TestLedgerFlow_ContraPostsEqualAndOpposite(t *testing.T) {
	amount := decimal.NewFromInt(-2000)

	deposit := mustResolve(t, "Cash Deposited to Bank", "")
	cash := accounting.LedgerFlow(deposit, amount, domain.CashLedger)
	bank := accounting.LedgerFlow(deposit, amount, domain.BankLedger)
	assert.True(t, cash.Equal(decimal.NewFromInt(-2000)))
	assert.True(t, bank.Equal(decimal.NewFromInt(2000)))
	assert.True(t, cash.Add(bank).IsZero(), "a transfer never changes total funds")

	withdrawal := mustResolve(t, "Cash Withdrawn from Bank", "")
	cash = accounting.LedgerFlow(withdrawal, decimal.NewFromInt(500), domain.CashLedger)
	bank = accounting.LedgerFlow(withdrawal, decimal.NewFromInt(500), domain.BankLedger)
	assert.True(t, cash.Equal(decimal.NewFromInt(500)))
	assert.True(t, bank.Equal(decimal.NewFromInt(-500)))
}

func TestLedgerFlow_UsesFlowDirectionNotStoredSign(t *testing.T) {
	// Payment received stores a negative amount (the receivable falls) but
	// money still arrives in the drawer.
	payment := mustResolve(t, "Payment Received from Customer", domain.ModeCash)
	flow := accounting.LedgerFlow(payment, decimal.NewFromInt(-300), domain.CashLedger)
	assert.True(t, flow.Equal(decimal.NewFromInt(300)))
	assert.True(t, accounting.LedgerFlow(payment, decimal.NewFromInt(-300), domain.BankLedger).IsZero())
}

func TestLedgerFlow_CreditTouchesNoLedger(t *testing.T) {
	creditSale := mustResolve(t, "Sale to Customer", domain.ModeCredit)
	assert.True(t, accounting.LedgerFlow(creditSale, decimal.NewFromInt(1000), domain.CashLedger).IsZero())
	assert.True(t, accounting.LedgerFlow(creditSale, decimal.NewFromInt(1000), domain.BankLedger).IsZero())
}

func TestLineItemsTotal(t *testing.T) {
	items := []domain.LineItem{
		{ProductID: "p1", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100), Discount: decimal.NewFromInt(20)},
		{ProductID: "p2", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(50)},
	}
	total := accounting.LineItemsTotal(items)
	assert.True(t, total.Equal(decimal.NewFromInt(330)))

	assert.True(t, accounting.LineItemsTotal(nil).IsZero())
}

func TestStockDelta(t *testing.T) {
	items := []domain.LineItem{
		{ProductID: "p1", Quantity: decimal.NewFromInt(2)},
		{ProductID: "p2", Quantity: decimal.NewFromInt(5)},
		{ProductID: "p1", Quantity: decimal.NewFromInt(1)},
	}

	sale := mustResolve(t, "Sale to Customer", domain.ModeCash)
	deltas := accounting.StockDelta(sale, items)
	require.Len(t, deltas, 2)
	assert.True(t, deltas["p1"].Equal(decimal.NewFromInt(-3)), "sales reduce stock, same product lines merge")
	assert.True(t, deltas["p2"].Equal(decimal.NewFromInt(-5)))

	purchase := mustResolve(t, "Purchase from Supplier", domain.ModeCredit)
	deltas = accounting.StockDelta(purchase, items)
	assert.True(t, deltas["p1"].Equal(decimal.NewFromInt(3)), "purchases increase stock")

	increase := mustResolve(t, "Stock Adjustment (Increase)", "")
	deltas = accounting.StockDelta(increase, items[:1])
	assert.True(t, deltas["p1"].Equal(decimal.NewFromInt(2)))

	decrease := mustResolve(t, "Stock Adjustment (Decrease)", "")
	deltas = accounting.StockDelta(decrease, items[:1])
	assert.True(t, deltas["p1"].Equal(decimal.NewFromInt(-2)))

	expense := mustResolve(t, "Business Expense", domain.ModeCash)
	assert.Nil(t, accounting.StockDelta(expense, items), "non-product categories move no stock")
	assert.Nil(t, accounting.StockDelta(sale, nil))
}
