package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bahikhata/bahikhata/internal/apperrors"
	"github.com/bahikhata/bahikhata/internal/core/catalog"
	"github.com/bahikhata/bahikhata/internal/core/domain"
	"github.com/bahikhata/bahikhata/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// makeTxn builds a stored transaction with the category tags the normalizer
// would have written. Shared by the projection tests in this package.
func makeTxn(t *testing.T, date time.Time, seq int64, base string, mode domain.PaymentMode, amount int64) domain.Transaction {
	t.Helper()
	concrete, err := catalog.Resolve(base, mode)
	require.NoError(t, err)
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Sequence:      seq,
		Date:          domain.DateOnly(date),
		Amount:        decimal.NewFromInt(amount),
		Category:      concrete.FullName,
		Flow:          concrete.Flow,
		Ledger:        concrete.Ledger,
	}
}

func day(offset int) time.Time {
	return time.Date(2025, 3, 10+offset, 0, 0, 0, 0, time.UTC)
}

func TestProjectLedger_UnknownLedger(t *testing.T) {
	mockTxRepo := new(MockTransactionRepository)
	svc := services.NewLedgerService(mockTxRepo)

	_, err := svc.ProjectLedger(context.Background(), "wallet", day(0))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockTxRepo.AssertNotCalled(t, "ListTransactions", mock.Anything)
}

func TestProjectLedger_RepoError(t *testing.T) {
	mockTxRepo := new(MockTransactionRepository)
	svc := services.NewLedgerService(mockTxRepo)
	mockTxRepo.On("ListTransactions", mock.Anything).Return(nil, assert.AnError).Once()

	_, err := svc.ProjectLedger(context.Background(), domain.CashLedger, day(0))

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	mockTxRepo.AssertExpectations(t)
}

func TestProjectLedger_OpeningCarriesPriorHistory(t *testing.T) {
	mockTxRepo := new(MockTransactionRepository)
	svc := services.NewLedgerService(mockTxRepo)

	txns := []domain.Transaction{
		makeTxn(t, day(0), 1, "Other Business Income", domain.ModeCash, 1000),
		makeTxn(t, day(1), 2, "Other Business Income", domain.ModeCash, 500),
	}
	mockTxRepo.On("ListTransactions", mock.Anything).Return(txns, nil).Once()

	ledgerDay, err := svc.ProjectLedger(context.Background(), domain.CashLedger, day(1))

	require.NoError(t, err)
	assert.True(t, ledgerDay.Opening.Equal(decimal.NewFromInt(1000)))
	require.Len(t, ledgerDay.Entries, 1)
	assert.True(t, ledgerDay.Entries[0].Debit.Equal(decimal.NewFromInt(500)))
	assert.True(t, ledgerDay.Closing.Equal(decimal.NewFromInt(1500)))
	mockTxRepo.AssertExpectations(t)
}

func TestBuildLedgerDay_OpeningPlusTotalsEqualsClosing(t *testing.T) {
	txns := []domain.Transaction{
		makeTxn(t, day(0), 1, "Other Business Income", domain.ModeCash, 800),
		makeTxn(t, day(1), 2, "Business Expense", domain.ModeCash, -300),
		makeTxn(t, day(1), 3, "Payment Received from Customer", domain.ModeCash, -300),
		makeTxn(t, day(1), 4, "Other Business Income", domain.ModeBank, 50),
	}
	txns[2].CustomerID = uuid.NewString()

	cashDay := services.BuildLedgerDay(domain.CashLedger, day(1), txns)

	assert.True(t, cashDay.Opening.Equal(decimal.NewFromInt(800)))
	require.Len(t, cashDay.Entries, 2)
	assert.True(t, cashDay.Entries[0].Credit.Equal(decimal.NewFromInt(300)), "expense posts as credit")
	assert.True(t, cashDay.Entries[1].Debit.Equal(decimal.NewFromInt(300)), "customer payment posts as debit despite its negative stored amount")
	assert.True(t, cashDay.Closing.Equal(cashDay.Opening.Add(cashDay.DebitTotal).Sub(cashDay.CreditTotal)))
	assert.True(t, cashDay.Closing.Equal(decimal.NewFromInt(800)), "offsetting flows cancel")
}

func TestBuildLedgerDay_ClosingChainsIntoNextOpening(t *testing.T) {
	txns := []domain.Transaction{
		makeTxn(t, day(0), 1, "Other Business Income", domain.ModeCash, 700),
		makeTxn(t, day(1), 2, "Business Expense", domain.ModeCash, -200),
		makeTxn(t, day(2), 3, "Business Expense", domain.ModeCash, -100),
	}

	today := services.BuildLedgerDay(domain.CashLedger, day(1), txns)
	tomorrow := services.BuildLedgerDay(domain.CashLedger, day(2), txns)

	assert.True(t, tomorrow.Opening.Equal(today.Closing), "day boundaries must chain without gaps")
	assert.True(t, tomorrow.Closing.Equal(decimal.NewFromInt(400)))
}

func TestBuildLedgerDay_TransferPostsToBothLedgers(t *testing.T) {
	txns := []domain.Transaction{
		makeTxn(t, day(0), 1, "Other Business Income", domain.ModeCash, 5000),
		makeTxn(t, day(0), 2, "Other Business Income", domain.ModeBank, 1000),
		makeTxn(t, day(1), 3, "Cash Deposited to Bank", "", -2000),
	}

	cashDay := services.BuildLedgerDay(domain.CashLedger, day(1), txns)
	bankDay := services.BuildLedgerDay(domain.BankLedger, day(1), txns)

	assert.True(t, cashDay.Opening.Equal(decimal.NewFromInt(5000)))
	assert.True(t, cashDay.Closing.Equal(decimal.NewFromInt(3000)))
	assert.True(t, bankDay.Opening.Equal(decimal.NewFromInt(1000)))
	assert.True(t, bankDay.Closing.Equal(decimal.NewFromInt(3000)))

	totalBefore := cashDay.Opening.Add(bankDay.Opening)
	totalAfter := cashDay.Closing.Add(bankDay.Closing)
	assert.True(t, totalBefore.Equal(totalAfter), "a transfer never changes total funds")
}

func TestBuildLedgerDay_SkipsCreditAndUnresolvableRows(t *testing.T) {
	creditSale := makeTxn(t, day(1), 1, "Sale to Customer", domain.ModeCredit, 1000)
	creditSale.CustomerID = uuid.NewString()

	retired := domain.Transaction{
		TransactionID: uuid.NewString(),
		Sequence:      2,
		Date:          day(1),
		Amount:        decimal.NewFromInt(400),
		Category:      "Retired Category (Cash)",
	}

	cashDay := services.BuildLedgerDay(domain.CashLedger, day(1), []domain.Transaction{creditSale, retired})

	assert.Empty(t, cashDay.Entries)
	assert.True(t, cashDay.Closing.IsZero())
}
