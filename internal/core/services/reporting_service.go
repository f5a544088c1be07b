package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bahikhata/bahikhata/internal/core/catalog"
	"github.com/bahikhata/bahikhata/internal/core/domain"
	portsrepo "github.com/bahikhata/bahikhata/internal/core/ports/repositories"
	portssvc "github.com/bahikhata/bahikhata/internal/core/ports/services"
	"github.com/bahikhata/bahikhata/internal/utils/accounting"
)

// topReportSize caps the top-N customer/product reports.
const topReportSize = 10

// reportingService computes period aggregates over transactions and invoices.
type reportingService struct {
	BaseService
	txRepo      portsrepo.TransactionReader
	partyRepo   portsrepo.PartyReader
	invoiceRepo portsrepo.InvoiceReader
	productRepo portsrepo.ProductReader
}

// NewReportingService creates the reporting service.
func NewReportingService(txRepo portsrepo.TransactionReader, partyRepo portsrepo.PartyReader, invoiceRepo portsrepo.InvoiceReader, productRepo portsrepo.ProductReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		txRepo:      txRepo,
		partyRepo:   partyRepo,
		invoiceRepo: invoiceRepo,
		productRepo: productRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// ProfitAndLoss computes the period P&L. Revenue comes from non-void,
// non-draft invoices; COGS values invoice lines at the product's current
// cost price, since historical cost is never snapshotted.
func (s *reportingService) ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.ProfitAndLossReport, error) {
	from, to = domain.DateOnly(from), domain.DateOnly(to)

	invoices, err := s.invoiceRepo.ListInvoices(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	products, err := s.productsByID(ctx)
	if err != nil {
		return nil, err
	}
	txns, err := s.txRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	report := &domain.ProfitAndLossReport{From: from, To: to}

	for _, inv := range invoices {
		if !inv.Status.CountsAsRevenue() {
			continue
		}
		report.Revenue = report.Revenue.Add(inv.AmountBeforeTax)
		for _, line := range inv.Lines {
			if product, ok := products[line.ProductID]; ok {
				report.COGS = report.COGS.Add(product.CostPrice.Mul(line.Quantity))
			}
		}
	}

	for _, txn := range txns {
		if txn.Date.Before(from) || txn.Date.After(to) {
			continue
		}
		concrete, ok := catalog.ResolveRecorded(txn.Category, txn.Flow, txn.Ledger)
		if !ok {
			continue
		}
		abs := txn.Amount.Abs()
		if concrete.Flow.IsIncome() && concrete.Group != "customer_revenue" && concrete.Group != "customer_payment" {
			report.OtherIncome = report.OtherIncome.Add(abs)
		}
		if concrete.Group == "biz_ops" && txn.Amount.Sign() < 0 {
			report.OperatingExpenses = report.OperatingExpenses.Add(abs)
		}
		if concrete.BaseName == "Loan Interest Paid by Business" {
			report.InterestPaid = report.InterestPaid.Add(abs)
		}
	}

	report.GrossProfit = report.Revenue.Sub(report.COGS)
	report.NetProfit = report.GrossProfit.Add(report.OtherIncome).Sub(report.OperatingExpenses).Sub(report.InterestPaid)

	s.LogInfo(ctx, "Profit and loss computed",
		slog.String("from", from.Format(time.DateOnly)),
		slog.String("to", to.Format(time.DateOnly)),
		slog.String("net_profit", report.NetProfit.String()))
	return report, nil
}

// Valuation computes the point-in-time valuation snapshot: ledger closings
// plus receivables, stock at cost and loans given on the asset side;
// payables and loans taken on the liability side.
func (s *reportingService) Valuation(ctx context.Context, asOf time.Time) (*domain.ValuationReport, error) {
	asOf = domain.DateOnly(asOf)

	txns, err := s.txRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	report := &domain.ValuationReport{AsOf: asOf}
	report.CashBalance = BuildLedgerDay(domain.CashLedger, asOf, txns).Closing
	report.BankBalance = BuildLedgerDay(domain.BankLedger, asOf, txns).Closing

	customers, err := s.partyRepo.ListParties(ctx, domain.PartyCustomer)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	payments, err := s.invoiceRepo.ListInvoicePayments(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice payments: %w", err)
	}

	txnsByCustomer := make(map[string][]domain.Transaction)
	txnsByLender := make(map[string][]domain.Transaction)
	for _, txn := range txns {
		if txn.CustomerID != "" {
			txnsByCustomer[txn.CustomerID] = append(txnsByCustomer[txn.CustomerID], txn)
		}
		if txn.LenderID != "" {
			txnsByLender[txn.LenderID] = append(txnsByLender[txn.LenderID], txn)
		}
	}
	paymentsByCustomer := make(map[string][]domain.InvoicePayment)
	for _, p := range payments {
		paymentsByCustomer[p.CustomerID] = append(paymentsByCustomer[p.CustomerID], p)
	}

	for _, customer := range customers {
		statement := BuildPartyStatement(customer, txnsByCustomer[customer.PartyID], paymentsByCustomer[customer.PartyID], "")
		report.Receivables = report.Receivables.Add(statement.Closing)
	}

	lenders, err := s.partyRepo.ListParties(ctx, domain.PartyLender)
	if err != nil {
		return nil, fmt.Errorf("failed to load lenders: %w", err)
	}
	for _, lender := range lenders {
		statement := BuildPartyStatement(lender, txnsByLender[lender.PartyID], nil, "")
		balance := statement.Closing
		switch {
		case balance.Sign() < 0:
			// Negative payable: the party owes the business.
			report.LoansGiven = report.LoansGiven.Add(balance.Abs())
		case lender.LenderType == domain.LenderSupplier:
			report.Payables = report.Payables.Add(balance)
		default:
			report.LoansTaken = report.LoansTaken.Add(balance)
		}
	}

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	for _, product := range products {
		report.StockValue = report.StockValue.Add(product.CurrentStock.Mul(product.CostPrice))
	}

	report.TotalAssets = report.CashBalance.
		Add(report.BankBalance).
		Add(report.Receivables).
		Add(report.StockValue).
		Add(report.LoansGiven)
	report.TotalLiabilities = report.Payables.Add(report.LoansTaken)
	report.NetWorth = report.TotalAssets.Sub(report.TotalLiabilities)

	s.LogInfo(ctx, "Valuation computed",
		slog.String("as_of", asOf.Format(time.DateOnly)),
		slog.String("net_worth", report.NetWorth.String()))
	return report, nil
}

// CashFlow summarizes per-ledger inflows and outflows for the period.
func (s *reportingService) CashFlow(ctx context.Context, from, to time.Time) (*domain.CashFlowReport, error) {
	from, to = domain.DateOnly(from), domain.DateOnly(to)

	txns, err := s.txRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	report := &domain.CashFlowReport{From: from, To: to}
	for _, txn := range txns {
		if txn.Date.After(to) {
			continue
		}
		concrete, ok := catalog.ResolveRecorded(txn.Category, txn.Flow, txn.Ledger)
		if !ok {
			continue
		}
		for _, ledger := range []domain.Ledger{domain.CashLedger, domain.BankLedger} {
			if !concrete.Ledger.Includes(ledger) {
				continue
			}
			flow := accounting.LedgerFlow(concrete, txn.Amount, ledger)
			if txn.Date.Before(from) {
				if ledger == domain.CashLedger {
					report.CashOpening = report.CashOpening.Add(flow)
				} else {
					report.BankOpening = report.BankOpening.Add(flow)
				}
				continue
			}
			switch {
			case ledger == domain.CashLedger && flow.Sign() >= 0:
				report.CashIn = report.CashIn.Add(flow)
			case ledger == domain.CashLedger:
				report.CashOut = report.CashOut.Add(flow.Abs())
			case flow.Sign() >= 0:
				report.BankIn = report.BankIn.Add(flow)
			default:
				report.BankOut = report.BankOut.Add(flow.Abs())
			}
		}
	}
	report.CashClosing = report.CashOpening.Add(report.CashIn).Sub(report.CashOut)
	report.BankClosing = report.BankOpening.Add(report.BankIn).Sub(report.BankOut)
	return report, nil
}

// TopCustomers ranks customers by period invoice revenue.
func (s *reportingService) TopCustomers(ctx context.Context, from, to time.Time) ([]domain.TopCustomerRow, error) {
	from, to = domain.DateOnly(from), domain.DateOnly(to)

	invoices, err := s.invoiceRepo.ListInvoices(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	customers, err := s.partyRepo.ListParties(ctx, domain.PartyCustomer)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	names := make(map[string]string, len(customers))
	for _, c := range customers {
		names[c.PartyID] = c.Name
	}

	revenue := make(map[string]decimal.Decimal)
	for _, inv := range invoices {
		if !inv.Status.CountsAsRevenue() {
			continue
		}
		revenue[inv.CustomerID] = revenue[inv.CustomerID].Add(inv.AmountBeforeTax)
	}

	rows := make([]domain.TopCustomerRow, 0, len(revenue))
	for customerID, total := range revenue {
		rows = append(rows, domain.TopCustomerRow{
			CustomerID: customerID,
			Name:       names[customerID],
			Revenue:    total,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Revenue.Equal(rows[j].Revenue) {
			return rows[i].Revenue.GreaterThan(rows[j].Revenue)
		}
		return rows[i].Name < rows[j].Name
	})
	if len(rows) > topReportSize {
		rows = rows[:topReportSize]
	}
	return rows, nil
}

// TopProducts ranks products by period invoiced revenue.
func (s *reportingService) TopProducts(ctx context.Context, from, to time.Time) ([]domain.TopProductRow, error) {
	from, to = domain.DateOnly(from), domain.DateOnly(to)

	invoices, err := s.invoiceRepo.ListInvoices(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	products, err := s.productsByID(ctx)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[string]*domain.TopProductRow)
	for _, inv := range invoices {
		if !inv.Status.CountsAsRevenue() {
			continue
		}
		for _, line := range inv.Lines {
			row, ok := byProduct[line.ProductID]
			if !ok {
				row = &domain.TopProductRow{
					ProductID: line.ProductID,
					Name:      products[line.ProductID].Name,
				}
				byProduct[line.ProductID] = row
			}
			row.QuantitySold = row.QuantitySold.Add(line.Quantity)
			row.Revenue = row.Revenue.Add(line.Quantity.Mul(line.UnitPrice).Sub(line.Discount))
		}
	}

	rows := make([]domain.TopProductRow, 0, len(byProduct))
	for _, row := range byProduct {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Revenue.Equal(rows[j].Revenue) {
			return rows[i].Revenue.GreaterThan(rows[j].Revenue)
		}
		return rows[i].Name < rows[j].Name
	})
	if len(rows) > topReportSize {
		rows = rows[:topReportSize]
	}
	return rows, nil
}

func (s *reportingService) productsByID(ctx context.Context) (map[string]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}
	return byID, nil
}
