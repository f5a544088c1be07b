package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bahikhata/bahikhata/internal/apperrors"
	"github.com/bahikhata/bahikhata/internal/core/catalog"
	"github.com/bahikhata/bahikhata/internal/core/domain"
	portsrepo "github.com/bahikhata/bahikhata/internal/core/ports/repositories"
	portssvc "github.com/bahikhata/bahikhata/internal/core/ports/services"
	"github.com/bahikhata/bahikhata/internal/dto"
	"github.com/bahikhata/bahikhata/internal/utils/accounting"
)

// transactionService is the normalizer and the only mutation point of the
// engine. Writes serialize behind a single mutex so two concurrent creates
// can never observe each other half-applied; reads re-fold from history and
// need no lock.
type transactionService struct {
	BaseService
	txRepo      portsrepo.TransactionRepositoryFacade
	partyRepo   portsrepo.PartyReader
	productRepo portsrepo.ProductReader

	writeMu sync.Mutex
}

// NewTransactionService creates the transaction write-path service.
func NewTransactionService(txRepo portsrepo.TransactionRepositoryFacade, partyRepo portsrepo.PartyReader, productRepo portsrepo.ProductReader) portssvc.TransactionSvcFacade {
	return &transactionService{
		txRepo:      txRepo,
		partyRepo:   partyRepo,
		productRepo: productRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates, normalizes and persists a proposed transaction.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	signed, concrete, items, deltas, err := s.normalize(ctx, req)
	if err != nil {
		s.LogError(ctx, err, "Transaction normalization failed",
			slog.String("base_category", req.BaseCategory))
		return nil, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:    uuid.NewString(),
		Date:             domain.DateOnly(req.Date),
		Amount:           signed,
		Category:         concrete.FullName,
		Flow:             concrete.Flow,
		Ledger:           concrete.Ledger,
		Description:      req.Description,
		CustomerID:       req.CustomerID,
		LenderID:         req.LenderID,
		AgreementID:      req.AgreementID,
		RelatedInvoiceID: req.RelatedInvoiceID,
		LineItems:        items,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	saved, err := s.txRepo.SaveTransaction(ctx, txn, deltas)
	if err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", saved.TransactionID),
		slog.String("category", saved.Category),
		slog.String("amount", saved.Amount.String()))
	return saved, nil
}

// UpdateTransaction replaces a transaction's content (edit-as-replace). The
// record keeps its identity and sequence; the amount and category are
// re-normalized and the old stock effect is corrected to the new one.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	existing, err := s.findExisting(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	signed, concrete, items, deltas, err := s.normalize(ctx, req)
	if err != nil {
		return nil, err
	}

	// Net out the stock effect of the record being replaced.
	if old, ok := catalog.ResolveRecorded(existing.Category, existing.Flow, existing.Ledger); ok {
		deltas = mergeDeltas(deltas, negateDeltas(accounting.StockDelta(old, existing.LineItems)))
	}

	txn := domain.Transaction{
		TransactionID:    existing.TransactionID,
		Sequence:         existing.Sequence,
		Date:             domain.DateOnly(req.Date),
		Amount:           signed,
		Category:         concrete.FullName,
		Flow:             concrete.Flow,
		Ledger:           concrete.Ledger,
		Description:      req.Description,
		CustomerID:       req.CustomerID,
		LenderID:         req.LenderID,
		AgreementID:      req.AgreementID,
		RelatedInvoiceID: req.RelatedInvoiceID,
		LineItems:        items,
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			CreatedBy:     existing.CreatedBy,
			LastUpdatedAt: time.Now().UTC(),
			LastUpdatedBy: userID,
		},
	}

	if err := s.txRepo.UpdateTransaction(ctx, txn, deltas); err != nil {
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	s.LogInfo(ctx, "Transaction replaced",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("category", txn.Category))
	return &txn, nil
}

// DeleteTransaction removes a transaction and reverses its stock effects.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	existing, err := s.findExisting(ctx, transactionID)
	if err != nil {
		return err
	}

	var deltas map[string]decimal.Decimal
	if old, ok := catalog.ResolveRecorded(existing.Category, existing.Flow, existing.Ledger); ok {
		deltas = negateDeltas(accounting.StockDelta(old, existing.LineItems))
	}

	if err := s.txRepo.DeleteTransaction(ctx, transactionID, deltas); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	s.LogInfo(ctx, "Transaction deleted",
		slog.String("transaction_id", transactionID),
		slog.String("deleted_by", userID))
	return nil
}

// GetTransaction retrieves a transaction by ID.
func (s *transactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.findExisting(ctx, transactionID)
}

func (s *transactionService) findExisting(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if txn == nil {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return txn, nil
}

// normalize applies the full write-path derivation: category resolution,
// party consistency, line-item totals, sign convention and stock deltas.
// Nothing is persisted until every step has passed.
func (s *transactionService) normalize(ctx context.Context, req dto.CreateTransactionRequest) (decimal.Decimal, domain.ConcreteCategory, []domain.LineItem, map[string]decimal.Decimal, error) {
	fail := func(err error) (decimal.Decimal, domain.ConcreteCategory, []domain.LineItem, map[string]decimal.Decimal, error) {
		return decimal.Zero, domain.ConcreteCategory{}, nil, nil, err
	}

	base, err := catalog.Lookup(req.BaseCategory)
	if err != nil {
		return fail(err)
	}

	if err := s.checkParty(ctx, base, req); err != nil {
		return fail(err)
	}

	concrete, err := catalog.Resolve(req.BaseCategory, domain.PaymentMode(req.PaymentMode))
	if err != nil {
		return fail(err)
	}

	items := req.ToLineItems()
	raw := req.Amount
	if len(items) > 0 {
		if err := s.checkProducts(ctx, items); err != nil {
			return fail(err)
		}
		if concrete.ProductSale || concrete.ProductPurchase {
			raw = accounting.LineItemsTotal(items)
		}
	}

	hasParty := req.CustomerID != "" || req.LenderID != ""
	signed, err := accounting.NormalizeAmount(concrete, raw, hasParty)
	if err != nil {
		return fail(err)
	}

	return signed, concrete, items, accounting.StockDelta(concrete, items), nil
}

// checkParty enforces the category's party relevance: customer categories
// need a customer, lender categories a lender, business-internal categories
// neither. The referenced party must exist.
func (s *transactionService) checkParty(ctx context.Context, base domain.BaseCategory, req dto.CreateTransactionRequest) error {
	switch base.RelevantTo {
	case domain.PartyCustomer:
		if req.CustomerID == "" || req.LenderID != "" {
			return fmt.Errorf("%w: category %q requires a customer reference", apperrors.ErrInconsistentParty, base.Name)
		}
		return s.partyExists(ctx, req.CustomerID, domain.PartyCustomer)
	case domain.PartyLender:
		if req.LenderID == "" || req.CustomerID != "" {
			return fmt.Errorf("%w: category %q requires a lender reference", apperrors.ErrInconsistentParty, base.Name)
		}
		return s.partyExists(ctx, req.LenderID, domain.PartyLender)
	default:
		if req.CustomerID != "" || req.LenderID != "" {
			return fmt.Errorf("%w: category %q is business-internal and takes no party", apperrors.ErrInconsistentParty, base.Name)
		}
		return nil
	}
}

func (s *transactionService) partyExists(ctx context.Context, partyID string, kind domain.PartyKind) error {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID, kind)
	if err != nil {
		return fmt.Errorf("failed to find %s %s: %w", kind, partyID, err)
	}
	if party == nil {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, kind, partyID)
	}
	return nil
}

func (s *transactionService) checkProducts(ctx context.Context, items []domain.LineItem) error {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	found, err := s.productRepo.FindProductsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to look up line-item products: %w", err)
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, id)
		}
	}
	return nil
}

func negateDeltas(deltas map[string]decimal.Decimal) map[string]decimal.Decimal {
	if len(deltas) == 0 {
		return nil
	}
	out := make(map[string]decimal.Decimal, len(deltas))
	for id, d := range deltas {
		out[id] = d.Neg()
	}
	return out
}

func mergeDeltas(a, b map[string]decimal.Decimal) map[string]decimal.Decimal {
	if len(a) == 0 {
		return b
	}
	for id, d := range b {
		a[id] = a[id].Add(d)
	}
	return a
}
