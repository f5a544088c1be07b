package mapping

import (
	"github.com/bahikhata/bahikhata/internal/core/domain"
	"github.com/bahikhata/bahikhata/internal/models"
)

// ToModelTransaction converts a domain Transaction to its storage model.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:    d.TransactionID,
		Sequence:         d.Sequence,
		TxnDate:          d.Date,
		Amount:           d.Amount,
		Category:         d.Category,
		Flow:             string(d.Flow),
		LedgerEffect:     string(d.Ledger),
		Description:      d.Description,
		CustomerID:       optional(d.CustomerID),
		LenderID:         optional(d.LenderID),
		AgreementID:      optional(d.AgreementID),
		RelatedInvoiceID: optional(d.RelatedInvoiceID),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a storage model Transaction to the domain.
func ToDomainTransaction(m models.Transaction, lines []models.TransactionLineItem) domain.Transaction {
	txn := domain.Transaction{
		TransactionID:    m.TransactionID,
		Sequence:         m.Sequence,
		Date:             domain.DateOnly(m.TxnDate),
		Amount:           m.Amount,
		Category:         m.Category,
		Flow:             domain.FlowKind(m.Flow),
		Ledger:           domain.LedgerEffect(m.LedgerEffect),
		Description:      m.Description,
		CustomerID:       deref(m.CustomerID),
		LenderID:         deref(m.LenderID),
		AgreementID:      deref(m.AgreementID),
		RelatedInvoiceID: deref(m.RelatedInvoiceID),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
	for _, line := range lines {
		txn.LineItems = append(txn.LineItems, domain.LineItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Discount:  line.Discount,
		})
	}
	return txn
}

// ToModelLineItems converts domain line items to storage rows for a transaction.
func ToModelLineItems(transactionID string, items []domain.LineItem) []models.TransactionLineItem {
	rows := make([]models.TransactionLineItem, 0, len(items))
	for i, item := range items {
		rows = append(rows, models.TransactionLineItem{
			TransactionID: transactionID,
			Position:      i,
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			Discount:      item.Discount,
		})
	}
	return rows
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
