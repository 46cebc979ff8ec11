package domain

import "github.com/shopspring/decimal"

// PaymentCategory distinguishes the two ledger sides a payment can affect.
type PaymentCategory string

const (
	PaymentIncome  PaymentCategory = "INCOME"
	PaymentExpense PaymentCategory = "EXPENSE"
)

// PaymentStatus is the lifecycle state of a payment event. Only APPROVED
// payments are reflected in the monthly balance-sheet ledger.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentApproved  PaymentStatus = "APPROVED"
	PaymentRejected  PaymentStatus = "REJECTED"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

// Payment is a single income or expense event attributed to one apartment
// and one ledger month.
type Payment struct {
	PaymentID   string          `json:"paymentID"` // Primary Key (e.g., UUID)
	PayerID     string          `json:"payerID"`   // UserID that initiated the payment
	PayeeID     string          `json:"payeeID"`   // UserID or account receiving it
	ApartmentID string          `json:"apartmentID"`
	Category    PaymentCategory `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Status      PaymentStatus   `json:"status"`
	MonthYear   string          `json:"monthYear"` // Ledger bucket, "YYYY-MM"
	Reason      string          `json:"reason"`
	AuditFields
}

// IsApproved reports whether this payment's amount is currently reflected
// in the monthly balance-sheet ledger.
func (p *Payment) IsApproved() bool {
	return p.Status == PaymentApproved
}
