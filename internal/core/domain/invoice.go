package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft         InvoiceStatus = "DRAFT"
	InvoiceIssued        InvoiceStatus = "ISSUED"
	InvoicePartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoicePaid          InvoiceStatus = "PAID"
	InvoiceVoid          InvoiceStatus = "VOID"
)

// CountsAsRevenue reports whether the invoice participates in revenue
// aggregates: drafts and voided invoices do not.
func (s InvoiceStatus) CountsAsRevenue() bool {
	return s != InvoiceDraft && s != InvoiceVoid
}

// InvoiceLine is one product line on an invoice.
type InvoiceLine struct {
	ProductID string          `json:"productID"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Discount  decimal.Decimal `json:"discount"`
}

// Invoice is a billed sale to a customer. Payments recorded against it feed
// the customer statement as synthesized credit entries.
type Invoice struct {
	InvoiceID       string          `json:"invoiceID"` // Primary key (UUID)
	CustomerID      string          `json:"customerID"`
	InvoiceDate     time.Time       `json:"invoiceDate"`
	Status          InvoiceStatus   `json:"status"`
	AmountBeforeTax decimal.Decimal `json:"amountBeforeTax"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	GrandTotal      decimal.Decimal `json:"grandTotal"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	Lines           []InvoiceLine   `json:"lines,omitempty"`
	AuditFields
}

// InvoicePayment is the slice of an invoice a statement projection consumes:
// the paid amount anchored to the invoice date.
type InvoicePayment struct {
	InvoiceID   string          `json:"invoiceID"`
	CustomerID  string          `json:"customerID"`
	InvoiceDate time.Time       `json:"invoiceDate"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
}
