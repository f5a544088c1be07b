package repositories

import (
	"context"

	"github.com/bahikhata/bahikhata/internal/core/domain"
)

// PartyReader defines read operations for customer and lender data.
type PartyReader interface {
	// FindPartyByID retrieves a party by ID and kind.
	FindPartyByID(ctx context.Context, partyID string, kind domain.PartyKind) (*domain.Party, error)

	// ListParties retrieves all parties of a kind, ordered by name.
	ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error)
}

// PartyWriter defines write operations for party data.
type PartyWriter interface {
	// SaveParty persists a new party.
	SaveParty(ctx context.Context, party domain.Party) error
}

// PartyRepositoryFacade combines all party repository interfaces.
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}
