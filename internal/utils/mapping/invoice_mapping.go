package mapping

import (
	"github.com/bahikhata/bahikhata/internal/core/domain"
	"github.com/bahikhata/bahikhata/internal/models"
)

// ToDomainInvoice converts a storage model Invoice and its lines to the domain.
func ToDomainInvoice(m models.Invoice, lines []models.InvoiceLineItem) domain.Invoice {
	inv := domain.Invoice{
		InvoiceID:       m.InvoiceID,
		CustomerID:      m.CustomerID,
		InvoiceDate:     domain.DateOnly(m.InvoiceDate),
		Status:          domain.InvoiceStatus(m.Status),
		AmountBeforeTax: m.AmountBeforeTax,
		TaxAmount:       m.TaxAmount,
		GrandTotal:      m.GrandTotal,
		PaidAmount:      m.PaidAmount,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	for _, line := range lines {
		inv.Lines = append(inv.Lines, domain.InvoiceLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Discount:  line.Discount,
		})
	}
	return inv
}
