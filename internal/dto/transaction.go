// Package dto carries the request shapes the write path accepts from
// whatever calling layer sits above this module, together with their
// validation rules.
package dto

import (
	"fmt"
	"time"

	"github.com/bahikhata/bahikhata/internal/apperrors"
	"github.com/bahikhata/bahikhata/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// LineItemRequest is one product line on a product-bearing transaction request.
type LineItemRequest struct {
	ProductID string          `json:"productID" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Discount  decimal.Decimal `json:"discount"`
}

// CreateTransactionRequest is a proposed transaction before normalization.
// Amount is the non-negative magnitude the user entered; for product-bearing
// categories it is ignored in favour of the line-item grand total.
type CreateTransactionRequest struct {
	BaseCategory     string            `json:"baseCategory" validate:"required"`
	PaymentMode      string            `json:"paymentMode" validate:"omitempty,oneof='Cash' 'Bank' 'On Credit'"`
	Date             time.Time         `json:"date" validate:"required"`
	Amount           decimal.Decimal   `json:"amount"`
	Description      string            `json:"description" validate:"max=500"`
	CustomerID       string            `json:"customerID" validate:"omitempty,uuid4"`
	LenderID         string            `json:"lenderID" validate:"omitempty,uuid4"`
	AgreementID      string            `json:"agreementID" validate:"omitempty,uuid4"`
	RelatedInvoiceID string            `json:"relatedInvoiceID" validate:"omitempty,uuid4"`
	LineItems        []LineItemRequest `json:"lineItems" validate:"omitempty,dive"`
}

// Validate runs tag validation plus the cross-field rule that a transaction
// references at most one party.
func (r CreateTransactionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if r.CustomerID != "" && r.LenderID != "" {
		return fmt.Errorf("%w: a transaction may reference a customer or a lender, not both", apperrors.ErrValidation)
	}
	return nil
}

// ToLineItems converts the request lines to domain line items.
func (r CreateTransactionRequest) ToLineItems() []domain.LineItem {
	if len(r.LineItems) == 0 {
		return nil
	}
	items := make([]domain.LineItem, 0, len(r.LineItems))
	for _, l := range r.LineItems {
		items = append(items, domain.LineItem{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Discount:  l.Discount,
		})
	}
	return items
}

// UpdateTransactionRequest replaces an existing transaction's content
// (edit-as-replace: the record keeps its identity and sequence, everything
// else is re-normalized from scratch).
type UpdateTransactionRequest = CreateTransactionRequest
