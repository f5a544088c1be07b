package mapping

import (
	"github.com/bahikhata/bahikhata/internal/core/domain"
	"github.com/bahikhata/bahikhata/internal/models"
)

// ToModelParty converts a domain Party to its storage model.
func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		PartyID:        d.PartyID,
		Kind:           string(d.Kind),
		LenderType:     optional(string(d.LenderType)),
		Name:           d.Name,
		Phone:          d.Phone,
		OpeningBalance: d.OpeningBalance,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainParty converts a storage model Party to the domain.
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:        m.PartyID,
		Kind:           domain.PartyKind(m.Kind),
		LenderType:     domain.LenderType(deref(m.LenderType)),
		Name:           m.Name,
		Phone:          m.Phone,
		OpeningBalance: m.OpeningBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
