package services_test

import (
	"context"
	"testing"

	"github.com/bahikhata/bahikhata/internal/core/domain"
	portssvc "github.com/bahikhata/bahikhata/internal/core/ports/services"
	"github.com/bahikhata/bahikhata/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxRepo      *MockTransactionRepository
	mockPartyRepo   *MockPartyRepository
	mockInvoiceRepo *MockInvoiceRepository
	mockProductRepo *MockProductRepository
	service         portssvc.ReportingSvcFacade
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.mockTxRepo = new(MockTransactionRepository)
	s.mockPartyRepo = new(MockPartyRepository)
	s.mockInvoiceRepo = new(MockInvoiceRepository)
	s.mockProductRepo = new(MockProductRepository)
	s.service = services.NewReportingService(s.mockTxRepo, s.mockPartyRepo, s.mockInvoiceRepo, s.mockProductRepo)
}

func (s *ReportingServiceTestSuite) TestProfitAndLoss() {
	ctx := context.Background()
	t := s.T()

	product := domain.Product{
		ProductID: uuid.NewString(),
		Name:      "Rice Bag 25kg",
		CostPrice: decimal.NewFromInt(300),
	}
	invoices := []domain.Invoice{
		{
			InvoiceID:       uuid.NewString(),
			Status:          domain.InvoiceIssued,
			AmountBeforeTax: decimal.NewFromInt(1000),
			Lines: []domain.InvoiceLine{
				{ProductID: product.ProductID, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(500)},
			},
		},
		{
			// Drafts never count as revenue.
			InvoiceID:       uuid.NewString(),
			Status:          domain.InvoiceDraft,
			AmountBeforeTax: decimal.NewFromInt(9999),
		},
	}
	txns := []domain.Transaction{
		makeTxn(t, day(1), 1, "Other Business Income", domain.ModeCash, 200),
		makeTxn(t, day(1), 2, "Business Expense", domain.ModeBank, -150),
		makeTxn(t, day(1), 3, "Loan Interest Paid by Business", domain.ModeCash, -50),
		makeTxn(t, day(9), 4, "Business Expense", domain.ModeCash, -5000), // outside the period
	}

	s.mockInvoiceRepo.On("ListInvoices", ctx, day(0), day(2)).Return(invoices, nil).Once()
	s.mockProductRepo.On("ListProducts", ctx).Return([]domain.Product{product}, nil).Once()
	s.mockTxRepo.On("ListTransactions", ctx).Return(txns, nil).Once()

	report, err := s.service.ProfitAndLoss(ctx, day(0), day(2))

	s.Require().NoError(err)
	s.True(report.Revenue.Equal(decimal.NewFromInt(1000)))
	s.True(report.COGS.Equal(decimal.NewFromInt(600)))
	s.True(report.GrossProfit.Equal(decimal.NewFromInt(400)))
	s.True(report.OtherIncome.Equal(decimal.NewFromInt(200)))
	s.True(report.OperatingExpenses.Equal(decimal.NewFromInt(150)))
	s.True(report.InterestPaid.Equal(decimal.NewFromInt(50)))
	s.True(report.NetProfit.Equal(decimal.NewFromInt(400)))
	s.mockInvoiceRepo.AssertExpectations(t)
}

func (s *ReportingServiceTestSuite) TestValuation() {
	ctx := context.Background()
	t := s.T()

	customer := domain.Party{
		PartyID:        uuid.NewString(),
		Kind:           domain.PartyCustomer,
		OpeningBalance: decimal.NewFromInt(200),
	}
	supplier := domain.Party{
		PartyID:        uuid.NewString(),
		Kind:           domain.PartyLender,
		LenderType:     domain.LenderSupplier,
		OpeningBalance: decimal.NewFromInt(500),
	}
	bankLender := domain.Party{
		PartyID:    uuid.NewString(),
		Kind:       domain.PartyLender,
		LenderType: domain.LenderFinancial,
	}
	overRepaid := domain.Party{
		PartyID:    uuid.NewString(),
		Kind:       domain.PartyLender,
		LenderType: domain.LenderFinancial,
	}

	income := makeTxn(t, day(0), 1, "Other Business Income", domain.ModeCash, 1500)
	loanTaken := makeTxn(t, day(0), 2, "Loan Taken by Business", domain.ModeBank, 1000)
	loanTaken.LenderID = bankLender.PartyID
	repaid := makeTxn(t, day(1), 3, "Loan Principal Repaid by Business", domain.ModeCash, -300)
	repaid.LenderID = overRepaid.PartyID
	txns := []domain.Transaction{income, loanTaken, repaid}

	product := domain.Product{
		ProductID:    uuid.NewString(),
		CostPrice:    decimal.NewFromInt(30),
		CurrentStock: decimal.NewFromInt(10),
	}

	s.mockTxRepo.On("ListTransactions", ctx).Return(txns, nil).Once()
	s.mockPartyRepo.On("ListParties", ctx, domain.PartyCustomer).Return([]domain.Party{customer}, nil).Once()
	s.mockPartyRepo.On("ListParties", ctx, domain.PartyLender).Return([]domain.Party{supplier, bankLender, overRepaid}, nil).Once()
	s.mockInvoiceRepo.On("ListInvoicePayments", ctx, "").Return([]domain.InvoicePayment{}, nil).Once()
	s.mockProductRepo.On("ListProducts", ctx).Return([]domain.Product{product}, nil).Once()

	report, err := s.service.Valuation(ctx, day(1))

	s.Require().NoError(err)
	s.True(report.CashBalance.Equal(decimal.NewFromInt(1200)), "1500 income minus 300 repayment")
	s.True(report.BankBalance.Equal(decimal.NewFromInt(1000)))
	s.True(report.Receivables.Equal(decimal.NewFromInt(200)), "customer opening with no activity")
	s.True(report.StockValue.Equal(decimal.NewFromInt(300)))
	s.True(report.LoansGiven.Equal(decimal.NewFromInt(300)), "a negative lender balance is owed to the business")
	s.True(report.Payables.Equal(decimal.NewFromInt(500)))
	s.True(report.LoansTaken.Equal(decimal.NewFromInt(1000)))
	s.True(report.TotalAssets.Equal(decimal.NewFromInt(3000)))
	s.True(report.TotalLiabilities.Equal(decimal.NewFromInt(1500)))
	s.True(report.NetWorth.Equal(decimal.NewFromInt(1500)))
	s.mockTxRepo.AssertExpectations(t)
	s.mockPartyRepo.AssertExpectations(t)
}

func (s *ReportingServiceTestSuite) TestCashFlow() {
	ctx := context.Background()
	t := s.T()

	txns := []domain.Transaction{
		makeTxn(t, day(0), 1, "Other Business Income", domain.ModeCash, 100),
		makeTxn(t, day(1), 2, "Business Expense", domain.ModeCash, -40),
		makeTxn(t, day(1), 3, "Cash Deposited to Bank", "", -500),
		makeTxn(t, day(9), 4, "Other Business Income", domain.ModeBank, 7777), // after the period
	}
	s.mockTxRepo.On("ListTransactions", ctx).Return(txns, nil).Once()

	report, err := s.service.CashFlow(ctx, day(1), day(2))

	s.Require().NoError(err)
	s.True(report.CashOpening.Equal(decimal.NewFromInt(100)))
	s.True(report.CashIn.IsZero())
	s.True(report.CashOut.Equal(decimal.NewFromInt(540)))
	s.True(report.CashClosing.Equal(decimal.NewFromInt(-440)))
	s.True(report.BankOpening.IsZero())
	s.True(report.BankIn.Equal(decimal.NewFromInt(500)))
	s.True(report.BankOut.IsZero())
	s.True(report.BankClosing.Equal(decimal.NewFromInt(500)))
}

func (s *ReportingServiceTestSuite) TestTopCustomers() {
	ctx := context.Background()

	alpha := domain.Party{PartyID: uuid.NewString(), Kind: domain.PartyCustomer, Name: "Alpha Stores"}
	beta := domain.Party{PartyID: uuid.NewString(), Kind: domain.PartyCustomer, Name: "Beta Mart"}

	invoices := []domain.Invoice{
		{InvoiceID: uuid.NewString(), CustomerID: alpha.PartyID, Status: domain.InvoicePaid, AmountBeforeTax: decimal.NewFromInt(400)},
		{InvoiceID: uuid.NewString(), CustomerID: beta.PartyID, Status: domain.InvoiceIssued, AmountBeforeTax: decimal.NewFromInt(900)},
		{InvoiceID: uuid.NewString(), CustomerID: alpha.PartyID, Status: domain.InvoiceVoid, AmountBeforeTax: decimal.NewFromInt(9999)},
	}
	s.mockInvoiceRepo.On("ListInvoices", ctx, day(0), day(2)).Return(invoices, nil).Once()
	s.mockPartyRepo.On("ListParties", ctx, domain.PartyCustomer).Return([]domain.Party{alpha, beta}, nil).Once()

	rows, err := s.service.TopCustomers(ctx, day(0), day(2))

	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("Beta Mart", rows[0].Name)
	s.True(rows[0].Revenue.Equal(decimal.NewFromInt(900)))
	s.Equal("Alpha Stores", rows[1].Name)
	s.True(rows[1].Revenue.Equal(decimal.NewFromInt(400)), "voided invoices are excluded")
}

func (s *ReportingServiceTestSuite) TestTopProducts() {
	ctx := context.Background()

	rice := domain.Product{ProductID: uuid.NewString(), Name: "Rice Bag 25kg"}
	oil := domain.Product{ProductID: uuid.NewString(), Name: "Oil Tin 15L"}

	invoices := []domain.Invoice{
		{
			InvoiceID: uuid.NewString(),
			Status:    domain.InvoicePaid,
			Lines: []domain.InvoiceLine{
				{ProductID: rice.ProductID, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100)},
				{ProductID: oil.ProductID, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(500), Discount: decimal.NewFromInt(50)},
			},
		},
		{
			InvoiceID: uuid.NewString(),
			Status:    domain.InvoiceIssued,
			Lines: []domain.InvoiceLine{
				{ProductID: rice.ProductID, Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(100)},
			},
		},
	}
	s.mockInvoiceRepo.On("ListInvoices", ctx, day(0), day(2)).Return(invoices, nil).Once()
	s.mockProductRepo.On("ListProducts", ctx).Return([]domain.Product{rice, oil}, nil).Once()

	rows, err := s.service.TopProducts(ctx, day(0), day(2))

	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("Rice Bag 25kg", rows[0].Name)
	s.True(rows[0].Revenue.Equal(decimal.NewFromInt(500)))
	s.True(rows[0].QuantitySold.Equal(decimal.NewFromInt(5)))
	s.Equal("Oil Tin 15L", rows[1].Name)
	s.True(rows[1].Revenue.Equal(decimal.NewFromInt(450)))
}

func (s *ReportingServiceTestSuite) TestProfitAndLoss_InvoiceRepoError() {
	ctx := context.Background()
	s.mockInvoiceRepo.On("ListInvoices", ctx, day(0), day(0)).Return(nil, assert.AnError).Once()

	_, err := s.service.ProfitAndLoss(ctx, day(0), day(0))

	s.Require().Error(err)
	s.ErrorIs(err, assert.AnError)
	s.mockTxRepo.AssertNotCalled(s.T(), "ListTransactions", mock.Anything)
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
