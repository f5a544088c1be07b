package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bahikhata/bahikhata/internal/apperrors"
	"github.com/bahikhata/bahikhata/internal/core/catalog"
	"github.com/bahikhata/bahikhata/internal/core/domain"
	portsrepo "github.com/bahikhata/bahikhata/internal/core/ports/repositories"
	portssvc "github.com/bahikhata/bahikhata/internal/core/ports/services"
	"github.com/bahikhata/bahikhata/internal/utils/accounting"
)

// ledgerService projects the cash/bank day ledgers.
type ledgerService struct {
	BaseService
	txRepo portsrepo.TransactionReader
}

// NewLedgerService creates the ledger projection service.
func NewLedgerService(txRepo portsrepo.TransactionReader) portssvc.LedgerSvcFacade {
	return &ledgerService{txRepo: txRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// ProjectLedger computes one ledger's view for a calendar date by folding the
// full stored history. There are no checkpoints: the result always equals the
// fold, so it is re-derivable for any date.
func (s *ledgerService) ProjectLedger(ctx context.Context, ledger domain.Ledger, asOf time.Time) (*domain.LedgerDay, error) {
	if ledger != domain.CashLedger && ledger != domain.BankLedger {
		return nil, fmt.Errorf("%w: unknown ledger %q", apperrors.ErrValidation, ledger)
	}

	txns, err := s.txRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for ledger projection",
			slog.String("ledger", string(ledger)))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	day := BuildLedgerDay(ledger, asOf, txns)

	s.LogDebug(ctx, "Ledger projected",
		slog.String("ledger", string(ledger)),
		slog.String("date", day.Date.Format(time.DateOnly)),
		slog.Int("entry_count", len(day.Entries)))
	return &day, nil
}

// BuildLedgerDay is the pure fold behind ProjectLedger. The opening balance
// sums every flow strictly before asOf; same-day entries run in
// (date, sequence) order, splitting into debit (inflow) and credit (outflow)
// columns with a running balance. Transactions whose category no longer
// resolves are skipped, never fatal.
func BuildLedgerDay(ledger domain.Ledger, asOf time.Time, txns []domain.Transaction) domain.LedgerDay {
	date := domain.DateOnly(asOf)

	ordered := make([]domain.Transaction, len(txns))
	copy(ordered, txns)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })

	day := domain.LedgerDay{
		Ledger:  ledger,
		Date:    date,
		Opening: decimal.Zero,
	}

	for _, txn := range ordered {
		if txn.Date.After(date) {
			break
		}
		concrete, ok := catalog.ResolveRecorded(txn.Category, txn.Flow, txn.Ledger)
		if !ok || !concrete.Ledger.Includes(ledger) {
			continue
		}
		flow := accounting.LedgerFlow(concrete, txn.Amount, ledger)

		if txn.Date.Before(date) {
			day.Opening = day.Opening.Add(flow)
			continue
		}

		entry := domain.LedgerEntry{Transaction: txn}
		if flow.Sign() >= 0 {
			entry.Debit = flow
			day.DebitTotal = day.DebitTotal.Add(flow)
		} else {
			entry.Credit = flow.Abs()
			day.CreditTotal = day.CreditTotal.Add(flow.Abs())
		}
		running := day.Opening.Add(day.DebitTotal).Sub(day.CreditTotal)
		entry.RunningBalance = running
		day.Entries = append(day.Entries, entry)
	}

	day.Closing = day.Opening.Add(day.DebitTotal).Sub(day.CreditTotal)
	return day
}
