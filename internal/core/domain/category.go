package domain

import "strings"

// PaymentMode is how a transaction settles: immediately in cash, through the
// bank, or not at all yet (on credit against the party's balance).
type PaymentMode string

const (
	ModeCash   PaymentMode = "Cash"
	ModeBank   PaymentMode = "Bank"
	ModeCredit PaymentMode = "On Credit"
)

// IsValid reports whether the mode is one of the three supported modes.
func (m PaymentMode) IsValid() bool {
	return m == ModeCash || m == ModeBank || m == ModeCredit
}

// FlowKind is the semantic tag carried alongside a transaction that fixes its
// ledger and balance behaviour. Projections branch on this tag instead of
// re-parsing the category display string.
type FlowKind string

const (
	FlowCashIncome         FlowKind = "cash_income"
	FlowBankIncome         FlowKind = "bank_income"
	FlowCashExpense        FlowKind = "cash_expense"
	FlowBankExpense        FlowKind = "bank_expense"
	FlowReceivableIncrease FlowKind = "receivable_increase"
	FlowReceivableDecrease FlowKind = "receivable_decrease"
	FlowPayableIncrease    FlowKind = "payable_increase"
	FlowPayableDecrease    FlowKind = "payable_decrease"
	FlowLiabilityIncrease  FlowKind = "liability_increase"
	FlowLiabilityDecrease  FlowKind = "liability_decrease"
	FlowNeutralCash        FlowKind = "neutral_cash_movement"
	FlowNeutralStock       FlowKind = "neutral_stock"
)

// IsIncome reports whether the flow brings money into a cash/bank ledger.
func (f FlowKind) IsIncome() bool {
	return strings.Contains(string(f), "income")
}

// IsExpense reports whether the flow takes money out of a cash/bank ledger.
func (f FlowKind) IsExpense() bool {
	return strings.Contains(string(f), "expense")
}

// Ledger selects one of the two cash-position views.
type Ledger string

const (
	CashLedger Ledger = "cash"
	BankLedger Ledger = "bank"
)

// LedgerEffect describes which ledger(s) a concrete category posts to.
// The two "both" effects are the contra categories that move value between
// the ledgers with no net change in total funds.
type LedgerEffect string

const (
	AffectsCash          LedgerEffect = "cash"
	AffectsBank          LedgerEffect = "bank"
	AffectsNone          LedgerEffect = "none"
	AffectsCashOutBankIn LedgerEffect = "both_cash_out_bank_in"
	AffectsCashInBankOut LedgerEffect = "both_cash_in_bank_out"
)

// Includes reports whether the effect posts to the given ledger.
func (e LedgerEffect) Includes(l Ledger) bool {
	switch e {
	case AffectsCash:
		return l == CashLedger
	case AffectsBank:
		return l == BankLedger
	case AffectsCashOutBankIn, AffectsCashInBankOut:
		return true
	}
	return false
}

// PartyKind distinguishes the two balance relationships a business keeps, and
// doubles as a category's relevance tag (RelevantNone for internal categories).
type PartyKind string

const (
	PartyCustomer PartyKind = "customer"
	PartyLender   PartyKind = "lender"
	RelevantNone  PartyKind = "none"
)

// BaseCategory is an immutable catalog entry: an abstract transaction type
// before payment-mode expansion, together with every rule needed to derive
// the concrete category. The catalog is the single source of truth for
// category semantics; nothing else may be consulted.
type BaseCategory struct {
	Name             string                   // unique key
	Group            string                   // e.g. customer_revenue, biz_ops
	RelevantTo       PartyKind                // customer, lender or none
	NeedsPaymentMode bool                     // whether Resolve requires a mode
	PartySign        int                      // +1, -1 or 0: sign applied to the party balance
	NamePattern      string                   // display-name template with {PaymentMode} placeholders
	LedgerPattern    string                   // ledger effect or "{PaymentModeLowerCase}"
	FlowByMode       map[PaymentMode]FlowKind // flow tag per mode, when NeedsPaymentMode
	Flow             FlowKind                 // flow tag for fixed categories
	ProductSale      bool                     // line items reduce stock
	ProductPurchase  bool                     // line items increase stock
}

// ConcreteCategory is the result of expanding a BaseCategory with a payment
// mode. It is derived, never stored as its own entity; transactions persist
// its FullName plus the Flow and Ledger tags.
type ConcreteCategory struct {
	FullName        string
	BaseName        string
	Group           string
	Mode            PaymentMode
	Flow            FlowKind
	Ledger          LedgerEffect
	RelevantTo      PartyKind
	PartySign       int
	ProductSale     bool
	ProductPurchase bool
}
