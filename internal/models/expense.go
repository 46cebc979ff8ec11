package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a row in the expenses table. The owed and settled
// apartment sets are stored as text[] columns.
type Expense struct {
	ExpenseID         string          `db:"expense_id"`
	Description       string          `db:"description"`
	Amount            decimal.Decimal `db:"amount"`
	Date              time.Time       `db:"date"`
	CategoryID        string          `db:"category_id"`
	PaidByApartment   string          `db:"paid_by_apartment"`
	OwedByApartments  []string        `db:"owed_by_apartments"`
	PerApartmentShare decimal.Decimal `db:"per_apartment_share"`
	PaidByApartments  []string        `db:"paid_by_apartments"`
	AuditFields
}
