package models

import (
	"github.com/shopspring/decimal"
)

// MonthlyBalance represents a row in the monthly_balances table. The primary
// key is (apartment_id, month_year).
type MonthlyBalance struct {
	ApartmentID   string          `db:"apartment_id"`
	MonthYear     string          `db:"month_year"`
	TotalIncome   decimal.Decimal `db:"total_income"`
	TotalExpenses decimal.Decimal `db:"total_expenses"`
	AuditFields
}
