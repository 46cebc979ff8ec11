package domain

import "github.com/shopspring/decimal"

// ApartmentBalance is the derived net position of one apartment against the
// rest of the building. Balance equals the sum of IsOwed minus the sum of
// Owes; a positive balance means the apartment is a net creditor.
type ApartmentBalance struct {
	Name    string                     `json:"name"`
	Balance decimal.Decimal            `json:"balance"`
	Owes    map[string]decimal.Decimal `json:"owes"`   // creditor apartment ID -> amount
	IsOwed  map[string]decimal.Decimal `json:"isOwed"` // debtor apartment ID -> amount
}

// BalanceDelta is one signed adjustment to a monthly balance-sheet bucket,
// emitted by the payment reconciler. Deltas are applied as atomic increments
// so concurrent payment edits against the same bucket commute.
type BalanceDelta struct {
	ApartmentID        string          `json:"apartmentID"`
	MonthYear          string          `json:"monthYear"`
	TotalIncomeDelta   decimal.Decimal `json:"totalIncomeDelta"`
	TotalExpensesDelta decimal.Decimal `json:"totalExpensesDelta"`
}

// MonthlyBalance is the persisted ledger bucket: per-apartment, per-month
// aggregates of approved income and expense payments.
type MonthlyBalance struct {
	ApartmentID   string          `json:"apartmentID"`
	MonthYear     string          `json:"monthYear"` // "YYYY-MM"
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	AuditFields
}
