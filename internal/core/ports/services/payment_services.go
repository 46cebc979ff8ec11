package services

import (
	"context"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	"github.com/deepak-sekarbabu-coder/apargo/internal/dto"
)

// PaymentSvcFacade defines the payment operations exposed to handlers.
// Every mutating operation reconciles the transition into ledger deltas and
// applies them atomically with the payment write.
type PaymentSvcFacade interface {
	// CreatePayment records a new payment event.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error)

	// GetPaymentByID retrieves a single payment.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPayments retrieves a month's payments, optionally by status.
	ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.Payment, error)

	// UpdatePayment edits a payment's status, amount, apartment or month.
	UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, userID string) (*domain.Payment, error)

	// DeletePayment removes a payment, backing an approved amount out of the
	// ledger.
	DeletePayment(ctx context.Context, paymentID string, userID string) error
}
