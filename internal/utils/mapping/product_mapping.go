package mapping

import (
	"github.com/bahikhata/bahikhata/internal/core/domain"
	"github.com/bahikhata/bahikhata/internal/models"
)

// ToModelProduct converts a domain Product to its storage model.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:    d.ProductID,
		Name:         d.Name,
		CostPrice:    d.CostPrice,
		SellingPrice: d.SellingPrice,
		CurrentStock: d.CurrentStock,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a storage model Product to the domain.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:    m.ProductID,
		Name:         m.Name,
		CostPrice:    m.CostPrice,
		SellingPrice: m.SellingPrice,
		CurrentStock: m.CurrentStock,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
