package models

import "github.com/shopspring/decimal"

// Party is the storage representation of a customer or lender row.
type Party struct {
	PartyID        string          `db:"party_id"`
	Kind           string          `db:"kind"`
	LenderType     *string         `db:"lender_type"`
	Name           string          `db:"name"`
	Phone          string          `db:"phone"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	AuditFields
}
