package models

import (
	"github.com/shopspring/decimal"
)

// PaymentCategory mirrors domain.PaymentCategory for DB storage.
type PaymentCategory string

// PaymentStatus mirrors domain.PaymentStatus for DB storage.
type PaymentStatus string

// Payment represents a row in the payments table.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	PayerID     string          `db:"payer_id"`
	PayeeID     string          `db:"payee_id"`
	ApartmentID string          `db:"apartment_id"`
	Category    PaymentCategory `db:"category"`
	Amount      decimal.Decimal `db:"amount"`
	Status      PaymentStatus   `db:"status"`
	MonthYear   string          `db:"month_year"`
	Reason      string          `db:"reason"`
	AuditFields
}
