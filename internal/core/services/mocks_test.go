package services_test

import (
	"context"
	"time"

	"github.com/bahikhata/bahikhata/internal/core/domain"
	portsrepo "github.com/bahikhata/bahikhata/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByParty(ctx context.Context, partyID string, kind domain.PartyKind) ([]domain.Transaction, error) {
	args := m.Called(ctx, partyID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, stockDeltas map[string]decimal.Decimal) (*domain.Transaction, error) {
	args := m.Called(ctx, txn, stockDeltas)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, stockDeltas map[string]decimal.Decimal) error {
	args := m.Called(ctx, txn, stockDeltas)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, stockDeltas map[string]decimal.Decimal) error {
	args := m.Called(ctx, transactionID, stockDeltas)
	return args.Error(0)
}

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	mock.Mock
}

var _ portsrepo.PartyRepositoryFacade = (*MockPartyRepository)(nil)

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID string, kind domain.PartyKind) (*domain.Party, error) {
	args := m.Called(ctx, partyID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, from, to time.Time) ([]domain.Invoice, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicePayments(ctx context.Context, customerID string) ([]domain.InvoicePayment, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoicePayment), args.Error(1)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
