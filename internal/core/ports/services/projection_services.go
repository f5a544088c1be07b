package services

import (
	"context"
	"time"

	"github.com/bahikhata/bahikhata/internal/core/domain"
)

// LedgerSvcFacade projects the cash/bank ledgers. Projections are pure folds
// over the stored history: no checkpoints, always re-derivable for any date.
type LedgerSvcFacade interface {
	// ProjectLedger computes one ledger's day view for the given date:
	// opening balance from all prior history, the day's entries with running
	// balances, and closing totals.
	ProjectLedger(ctx context.Context, ledger domain.Ledger, asOf time.Time) (*domain.LedgerDay, error)
}

// StatementSvcFacade projects party running-balance statements.
type StatementSvcFacade interface {
	// ProjectPartyStatement computes a party's chronological statement.
	// groupFilter optionally restricts the listed entries to a category
	// group (with the documented group merges); it never changes the opening
	// or closing balance.
	ProjectPartyStatement(ctx context.Context, partyID string, kind domain.PartyKind, groupFilter string) (*domain.PartyStatement, error)
}
