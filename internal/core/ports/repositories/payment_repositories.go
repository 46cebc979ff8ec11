package repositories

import (
	"context"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its unique identifier.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByMonth retrieves all payments in a ledger month,
	// optionally filtered by status.
	ListPaymentsByMonth(ctx context.Context, monthYear string, status *domain.PaymentStatus) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data. Every write takes
// the ledger deltas the reconciler computed for the transition and applies
// them in the same database transaction as the payment row mutation.
type PaymentWriter interface {
	// SavePayment persists a new payment and applies its ledger deltas.
	SavePayment(ctx context.Context, payment domain.Payment, deltas []domain.BalanceDelta) error

	// UpdatePayment updates a payment and applies its ledger deltas.
	UpdatePayment(ctx context.Context, payment domain.Payment, deltas []domain.BalanceDelta) error

	// DeletePayment removes a payment and applies its ledger deltas.
	DeletePayment(ctx context.Context, paymentID string, updatedByUserID string, deltas []domain.BalanceDelta) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
