package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents one shared or personal cost fronted by a single
// apartment. The debt-bearing fields (OwedByApartments, PerApartmentShare,
// PaidByApartments) are computed once at creation time by the splitter and
// never retroactively recomputed; PaidByApartments grows over time as
// apartments settle their share.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (e.g., UUID)
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // Positive, in the building's currency
	Date        time.Time       `json:"date"`   // Date the cost was incurred
	CategoryID  string          `json:"categoryID"`

	// PaidByApartment is the apartment that fronted the money.
	PaidByApartment string `json:"paidByApartment"`
	// OwedByApartments lists every apartment owing a share, payer included.
	// Empty for no-split expenses.
	OwedByApartments []string `json:"owedByApartments"`
	// PerApartmentShare is Amount / len(OwedByApartments), zero when not split.
	PerApartmentShare decimal.Decimal `json:"perApartmentShare"`
	// PaidByApartments is the subset of OwedByApartments that have settled
	// their share. The payer's own share is settled at creation time.
	PaidByApartments []string `json:"paidByApartments"`

	AuditFields
}

// ExpenseSplit holds the debt-bearing fields the splitter attaches to a new
// expense record.
type ExpenseSplit struct {
	PaidByApartment   string          `json:"paidByApartment"`
	OwedByApartments  []string        `json:"owedByApartments"`
	PerApartmentShare decimal.Decimal `json:"perApartmentShare"`
	PaidByApartments  []string        `json:"paidByApartments"`
}

// IsSettledBy reports whether the given apartment has already settled its
// share of this expense.
func (e *Expense) IsSettledBy(apartmentID string) bool {
	for _, id := range e.PaidByApartments {
		if id == apartmentID {
			return true
		}
	}
	return false
}

// OwedBy reports whether the given apartment owes a share of this expense.
func (e *Expense) OwedBy(apartmentID string) bool {
	for _, id := range e.OwedByApartments {
		if id == apartmentID {
			return true
		}
	}
	return false
}
