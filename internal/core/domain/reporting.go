package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfitAndLossReport is the period P&L. COGS is valued at current product
// cost price, not the cost at time of sale; a known limitation carried over
// from the source data model.
type ProfitAndLossReport struct {
	From              time.Time       `json:"from"`
	To                time.Time       `json:"to"`
	Revenue           decimal.Decimal `json:"revenue"`
	COGS              decimal.Decimal `json:"cogs"`
	GrossProfit       decimal.Decimal `json:"grossProfit"`
	OtherIncome       decimal.Decimal `json:"otherIncome"`
	OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
	InterestPaid      decimal.Decimal `json:"interestPaid"`
	NetProfit         decimal.Decimal `json:"netProfit"`
}

// ValuationReport is a point-in-time snapshot of business worth.
type ValuationReport struct {
	AsOf             time.Time       `json:"asOf"`
	CashBalance      decimal.Decimal `json:"cashBalance"`
	BankBalance      decimal.Decimal `json:"bankBalance"`
	Receivables      decimal.Decimal `json:"receivables"`
	StockValue       decimal.Decimal `json:"stockValue"`
	LoansGiven       decimal.Decimal `json:"loansGiven"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	Payables         decimal.Decimal `json:"payables"`
	LoansTaken       decimal.Decimal `json:"loansTaken"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetWorth         decimal.Decimal `json:"netWorth"`
}

// CashFlowReport summarizes period in/out flows per ledger.
type CashFlowReport struct {
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	CashOpening decimal.Decimal `json:"cashOpening"`
	CashIn      decimal.Decimal `json:"cashIn"`
	CashOut     decimal.Decimal `json:"cashOut"`
	CashClosing decimal.Decimal `json:"cashClosing"`
	BankOpening decimal.Decimal `json:"bankOpening"`
	BankIn      decimal.Decimal `json:"bankIn"`
	BankOut     decimal.Decimal `json:"bankOut"`
	BankClosing decimal.Decimal `json:"bankClosing"`
}

// TopCustomerRow is one row of the top-customers report, ranked by period
// invoice revenue.
type TopCustomerRow struct {
	CustomerID string          `json:"customerID"`
	Name       string          `json:"name"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// TopProductRow is one row of the top-products report, ranked by period
// invoiced revenue.
type TopProductRow struct {
	ProductID    string          `json:"productID"`
	Name         string          `json:"name"`
	QuantitySold decimal.Decimal `json:"quantitySold"`
	Revenue      decimal.Decimal `json:"revenue"`
}
