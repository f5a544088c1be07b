// Package catalog holds the canonical table of base transaction categories
// and the resolver that expands them, with a payment mode, into concrete
// ledger-affecting categories. The table is defined once at process start and
// never mutated; it is the single source of truth for category semantics.
package catalog

import (
	"github.com/bahikhata/bahikhata/internal/core/domain"
)

// entries is the full category table. Every rule needed to derive a concrete
// category lives on the one entry: display-name pattern, ledger pattern,
// party relevance and sign, and the flow tag per payment mode.
var entries = []domain.BaseCategory{
	{
		Name:             "Sale to Customer",
		Group:            "customer_revenue",
		RelevantTo:       domain.PartyCustomer,
		NeedsPaymentMode: true,
		PartySign:        +1,
		NamePattern:      "Sale to Customer ({PaymentMode})",
		LedgerPattern:    "{PaymentModeLowerCase}",
		FlowByMode: map[domain.PaymentMode]domain.FlowKind{
			domain.ModeCash:   domain.FlowCashIncome,
			domain.ModeBank:   domain.FlowBankIncome,
			domain.ModeCredit: domain.FlowReceivableIncrease,
		},
		ProductSale: true,
	},
	{
		Name:             "Service Charge to Customer",
		Group:            "customer_service",
		RelevantTo:       domain.PartyCustomer,
		NeedsPaymentMode: true,
		PartySign:        +1,
		NamePattern:      "Service Charge to Customer ({PaymentMode})",
		LedgerPattern:    "{PaymentModeLowerCase}",
		FlowByMode: map[domain.PaymentMode]domain.FlowKind{
			domain.ModeCash:   domain.FlowCashIncome,
			domain.ModeBank:   domain.FlowBankIncome,
			domain.ModeCredit: domain.FlowReceivableIncrease,
		},
	},
	{
		Name:             "Payment Received from Customer",
		Group:            "customer_payment",
		RelevantTo:       domain.PartyCustomer,
		NeedsPaymentMode: true,
		PartySign:        -1,
		NamePattern:      "Payment Received from Customer ({PaymentMode})",
		LedgerPattern:    "{PaymentModeLowerCase}",
		FlowByMode: map[domain.PaymentMode]domain.FlowKind{
			domain.ModeCash:   domain.FlowCashIncome,
			domain.ModeBank:   domain.FlowBankIncome,
			domain.ModeCredit: domain.FlowReceivableDecrease,
		},
	},
	{
		Name:             "Loan Given to Customer",
		Group:            "customer_loan_out",
		RelevantTo:       domain.PartyCustomer,
		NeedsPaymentMode: true,
		PartySign:        +1,
		NamePattern:      "Loan Given to Customer ({PaymentMode})",
		LedgerPattern:    "{PaymentModeLowerCase}",
		FlowByMode: map[domain.PaymentMode]domain.FlowKind{
			domain.ModeCash:   domain.FlowCashExpense,
			domain.ModeBank:   domain.FlowBankExpense,
			domain.ModeCredit: domain.FlowReceivableIncrease,
		},
	},
	{
		Name:             "Loan Repaid by Customer",
		Group:            "customer_loan_in",
		RelevantTo:       domain.PartyCustomer,
		NeedsPaymentMode: true,
		PartySign:        -1,
		NamePattern:      "Loan Repaid by Customer ({PaymentMode})",
		LedgerPattern:    "{PaymentModeLowerCase}",
		FlowByMode: map[domain.PaymentMode]domain.FlowKind{
			domain.ModeCash:   domain.FlowCashIncome,
			domain.ModeBank:   domain.FlowBankIncome,
			domain.ModeCredit: domain.FlowReceivableDecrease,
		},
	},
	{
		Name:             "Chit Installment Received from Customer",
		Group:            "customer_chit_in",
		RelevantTo:       domain.PartyCustomer,
		NeedsPaymentMode: true,
		PartySign:        -1,
		NamePattern:      "Chit Installment Received from Customer ({PaymentMode})",
		LedgerPattern:    "{PaymentModeLowerCase}",
		FlowByMode: map[domain.PaymentMode]domain.FlowKind{
			domain.ModeCash:   domain.FlowCashIncome,
			domain.ModeBank:   domain.FlowBankIncome,
			domain.ModeCredit: domain.FlowReceivableDecrease,
		},
	},
	{
		Name:             "Chit Payout Given to Customer",
		Group:            "customer_chit_out",
		RelevantTo:       domain.PartyCustomer,
		NeedsPaymentMode: true,
		PartySign:        +1,
		NamePattern:      "Chit Payout Given to Customer ({PaymentMode})",
		LedgerPattern:    "{PaymentModeLowerCase}",
		FlowByMode: map[domain.PaymentMode]domain.FlowKind{
			domain.ModeCash:   domain.FlowCashExpense,
			domain.ModeBank:   domain.FlowBankExpense,
			domain.ModeCredit: domain.FlowReceivableIncrease,
		},
	},
	{
		Name:             "Purchase from Supplier",
		Group:            "supplier_purchase",
		RelevantTo:       domain.PartyLender,
		NeedsPaymentMode: true,
		PartySign:        +1,
		NamePattern:      "Purchase from Supplier ({PaymentMode})",
		LedgerPattern:    "{PaymentModeLowerCase}",
		FlowByMode: map[domain.PaymentMode]domain.FlowKind{
			domain.ModeCash:   domain.FlowCashExpense,
			domain.ModeBank:   domain.FlowBankExpense,
			domain.ModeCredit: domain.FlowPayableIncrease,
		},
		ProductPurchase: true,
	},
	{
		Name:             "Payment Made to Supplier",
		Group:            "supplier_payment",
		RelevantTo:       domain.PartyLender,
		NeedsPaymentMode: true,
		PartySign:        -1,
		NamePattern:      "Payment Made to Supplier ({PaymentMode})",
		LedgerPattern:    "{PaymentModeLowerCase}",
		FlowByMode: map[domain.PaymentMode]domain.FlowKind{
			domain.ModeCash:   domain.FlowCashExpense,
			domain.ModeBank:   domain.FlowBankExpense,
			domain.ModeCredit: domain.FlowPayableDecrease,
		},
	},
	{
		Name:             "Loan Taken by Business",
		Group:            "biz_loan_in",
		RelevantTo:       domain.PartyLender,
		NeedsPaymentMode: true,
		PartySign:        +1,
		NamePattern:      "Loan Taken by Business {PaymentModeDestination}",
		LedgerPattern:    "{PaymentModeLowerCase}",
		FlowByMode: map[domain.PaymentMode]domain.FlowKind{
			domain.ModeCash:   domain.FlowCashIncome,
			domain.ModeBank:   domain.FlowBankIncome,
			domain.ModeCredit: domain.FlowLiabilityIncrease,
		},
	},
	{
		Name:             "Loan Principal Repaid by Business",
		Group:            "biz_loan_out",
		RelevantTo:       domain.PartyLender,
		NeedsPaymentMode: true,
		PartySign:        -1,
		NamePattern:      "Loan Principal Repaid by Business {PaymentModeDestination}",
		LedgerPattern:    "{PaymentModeLowerCase}",
		FlowByMode: map[domain.PaymentMode]domain.FlowKind{
			domain.ModeCash:   domain.FlowCashExpense,
			domain.ModeBank:   domain.FlowBankExpense,
			domain.ModeCredit: domain.FlowLiabilityDecrease,
		},
	},
	{
		// Interest does not move the outstanding principal, so it is a
		// business-internal expense tied to the loan via AgreementID.
		Name:             "Loan Interest Paid by Business",
		Group:            "biz_loan_out",
		RelevantTo:       domain.RelevantNone,
		NeedsPaymentMode: true,
		NamePattern:      "Loan Interest Paid by Business {PaymentModeDestination}",
		LedgerPattern:    "{PaymentModeLowerCase}",
		FlowByMode: map[domain.PaymentMode]domain.FlowKind{
			domain.ModeCash:   domain.FlowCashExpense,
			domain.ModeBank:   domain.FlowBankExpense,
			domain.ModeCredit: domain.FlowLiabilityIncrease,
		},
	},
	{
		Name:             "Business Expense",
		Group:            "biz_ops",
		RelevantTo:       domain.RelevantNone,
		NeedsPaymentMode: true,
		NamePattern:      "Business Expense ({PaymentMode})",
		LedgerPattern:    "{PaymentModeLowerCase}",
		FlowByMode: map[domain.PaymentMode]domain.FlowKind{
			domain.ModeCash:   domain.FlowCashExpense,
			domain.ModeBank:   domain.FlowBankExpense,
			domain.ModeCredit: domain.FlowPayableIncrease,
		},
	},
	{
		Name:             "Other Business Income",
		Group:            "biz_ops",
		RelevantTo:       domain.RelevantNone,
		NeedsPaymentMode: true,
		NamePattern:      "Other Business Income ({PaymentMode})",
		LedgerPattern:    "{PaymentModeLowerCase}",
		FlowByMode: map[domain.PaymentMode]domain.FlowKind{
			domain.ModeCash:   domain.FlowCashIncome,
			domain.ModeBank:   domain.FlowBankIncome,
			domain.ModeCredit: domain.FlowReceivableIncrease,
		},
	},
	{
		Name:          "Cash Deposited to Bank",
		Group:         "biz_transfer",
		RelevantTo:    domain.RelevantNone,
		NamePattern:   "Cash Deposited to Bank",
		LedgerPattern: string(domain.AffectsCashOutBankIn),
		Flow:          domain.FlowNeutralCash,
	},
	{
		Name:          "Cash Withdrawn from Bank",
		Group:         "biz_transfer",
		RelevantTo:    domain.RelevantNone,
		NamePattern:   "Cash Withdrawn from Bank",
		LedgerPattern: string(domain.AffectsCashInBankOut),
		Flow:          domain.FlowNeutralCash,
	},
	{
		Name:          "Stock Adjustment (Increase)",
		Group:         "biz_stock",
		RelevantTo:    domain.RelevantNone,
		NamePattern:   "Stock Adjustment (Increase)",
		LedgerPattern: string(domain.AffectsNone),
		Flow:          domain.FlowNeutralStock,
	},
	{
		Name:          "Stock Adjustment (Decrease)",
		Group:         "biz_stock",
		RelevantTo:    domain.RelevantNone,
		NamePattern:   "Stock Adjustment (Decrease)",
		LedgerPattern: string(domain.AffectsNone),
		Flow:          domain.FlowNeutralStock,
	},
}

var byName = buildIndex()

func buildIndex() map[string]domain.BaseCategory {
	m := make(map[string]domain.BaseCategory, len(entries))
	for _, e := range entries {
		m[e.Name] = e
	}
	return m
}

// All returns the catalog entries in their declaration order.
func All() []domain.BaseCategory {
	out := make([]domain.BaseCategory, len(entries))
	copy(out, entries)
	return out
}
