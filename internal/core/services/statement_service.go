package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/bahikhata/bahikhata/internal/apperrors"
	"github.com/bahikhata/bahikhata/internal/core/catalog"
	"github.com/bahikhata/bahikhata/internal/core/domain"
	portsrepo "github.com/bahikhata/bahikhata/internal/core/ports/repositories"
	portssvc "github.com/bahikhata/bahikhata/internal/core/ports/services"
)

// statementService projects party running-balance statements.
type statementService struct {
	BaseService
	txRepo      portsrepo.TransactionReader
	partyRepo   portsrepo.PartyReader
	invoiceRepo portsrepo.InvoiceReader
}

// NewStatementService creates the party statement projection service.
func NewStatementService(txRepo portsrepo.TransactionReader, partyRepo portsrepo.PartyReader, invoiceRepo portsrepo.InvoiceReader) portssvc.StatementSvcFacade {
	return &statementService{
		txRepo:      txRepo,
		partyRepo:   partyRepo,
		invoiceRepo: invoiceRepo,
	}
}

var _ portssvc.StatementSvcFacade = (*statementService)(nil)

// ProjectPartyStatement computes a party's chronological statement. For
// customers, invoice payments interleave with transactions as synthesized
// credit entries. The optional group filter narrows the listed entries only:
// opening and closing always come from the full history.
func (s *statementService) ProjectPartyStatement(ctx context.Context, partyID string, kind domain.PartyKind, groupFilter string) (*domain.PartyStatement, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s %s: %w", kind, partyID, err)
	}
	if party == nil {
		return nil, fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, kind, partyID)
	}

	txns, err := s.txRepo.ListTransactionsByParty(ctx, partyID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for party %s: %w", partyID, err)
	}

	var payments []domain.InvoicePayment
	if kind == domain.PartyCustomer {
		payments, err = s.invoiceRepo.ListInvoicePayments(ctx, partyID)
		if err != nil {
			return nil, fmt.Errorf("failed to load invoice payments for customer %s: %w", partyID, err)
		}
	}

	statement := BuildPartyStatement(*party, txns, payments, groupFilter)

	s.LogDebug(ctx, "Party statement projected",
		slog.String("party_id", partyID),
		slog.String("kind", string(kind)),
		slog.Int("entry_count", len(statement.Entries)))
	return &statement, nil
}

// BuildPartyStatement is the pure fold behind ProjectPartyStatement.
//
// Ordering: (date, sequence) ascending; invoice-payment entries carry no
// sequence and sort after real transactions on the same date, keeping their
// input order among themselves.
//
// Filtering: the filter decides which rows are listed and where the displayed
// opening cuts in (full fold strictly before the first listed date), but the
// closing balance is always the full-history fold; a filter never changes it.
func BuildPartyStatement(party domain.Party, txns []domain.Transaction, payments []domain.InvoicePayment, groupFilter string) domain.PartyStatement {
	entries := make([]domain.StatementEntry, 0, len(txns)+len(payments))
	for _, txn := range txns {
		concrete, ok := catalog.ResolveRecorded(txn.Category, txn.Flow, txn.Ledger)
		if !ok {
			// Historical row whose category definition is gone: it affects
			// no balance and is not listed.
			continue
		}
		entries = append(entries, domain.StatementEntry{
			Date:          txn.Date,
			Sequence:      txn.Sequence,
			Category:      txn.Category,
			Group:         concrete.Group,
			Description:   txn.Description,
			Amount:        txn.Amount,
			TransactionID: txn.TransactionID,
			InvoiceID:     txn.RelatedInvoiceID,
		})
	}
	for _, payment := range payments {
		if payment.PaidAmount.Sign() == 0 {
			continue
		}
		entries = append(entries, domain.StatementEntry{
			Date:             domain.DateOnly(payment.InvoiceDate),
			Category:         "Invoice Payment",
			Group:            "customer_payment",
			Amount:           payment.PaidAmount.Neg(),
			InvoiceID:        payment.InvoiceID,
			IsInvoicePayment: true,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.IsInvoicePayment != b.IsInvoicePayment {
			return !a.IsInvoicePayment
		}
		if a.IsInvoicePayment {
			return false
		}
		return a.Sequence < b.Sequence
	})

	opening := party.StatementOpening()
	statement := domain.PartyStatement{
		PartyID: party.PartyID,
		Kind:    party.Kind,
		Closing: opening,
	}
	for _, e := range entries {
		statement.Closing = statement.Closing.Add(e.Amount)
	}

	firstListed := -1
	for i, e := range entries {
		if matchesGroup(groupFilter, e.Group) {
			firstListed = i
			break
		}
	}
	if firstListed < 0 {
		// Nothing to list: the statement collapses to its final balance.
		statement.Opening = statement.Closing
		return statement
	}

	statement.Opening = opening
	cutoff := entries[firstListed].Date
	for _, e := range entries {
		if e.Date.Before(cutoff) {
			statement.Opening = statement.Opening.Add(e.Amount)
		}
	}

	running := statement.Opening
	for _, e := range entries {
		if !matchesGroup(groupFilter, e.Group) {
			continue
		}
		running = running.Add(e.Amount)
		e.RunningBalance = running
		statement.Entries = append(statement.Entries, e)
	}
	return statement
}

// matchesGroup applies the category-group filter with its documented merges:
// the loan and chit filters cover both directions, and the revenue filter
// also covers the legacy service group.
func matchesGroup(filter, group string) bool {
	if filter == "" {
		return true
	}
	switch filter {
	case "customer_loan":
		return group == "customer_loan_in" || group == "customer_loan_out"
	case "customer_chit":
		return group == "customer_chit_in" || group == "customer_chit_out"
	case "customer_revenue":
		return group == "customer_revenue" || group == "customer_service"
	}
	return group == filter
}
