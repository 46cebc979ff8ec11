package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/deepak-sekarbabu-coder/apargo/internal/apperrors"
	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	portsrepo "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/repositories"
	portssvc "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/services"
	"github.com/deepak-sekarbabu-coder/apargo/internal/dto"
	"github.com/deepak-sekarbabu-coder/apargo/internal/middleware"
)

var ErrAmountNotPositive = errors.New("payment amount must be positive")

// paymentService records payment events and keeps the monthly balance-sheet
// ledger consistent by reconciling every transition into deltas that the
// repository applies atomically with the payment write.
type paymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{paymentRepo: paymentRepo}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// reconcileTransition computes the full delta set (both ledger columns) for
// a previous -> next payment transition.
func reconcileTransition(previous, next *domain.Payment) []domain.BalanceDelta {
	deltas := ComputeApprovedExpensePaymentDeltas(previous, next)
	return append(deltas, ComputeApprovedIncomePaymentDeltas(previous, next)...)
}

// CreatePayment records a new payment event. A payment created directly in
// the APPROVED state enters the ledger in the same transaction.
func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: got %s", ErrAmountNotPositive, req.Amount.String())
	}

	status := req.Status
	if status == "" {
		status = domain.PaymentPending
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		PayerID:     req.PayerID,
		PayeeID:     req.PayeeID,
		ApartmentID: req.ApartmentID,
		Category:    req.Category,
		Amount:      req.Amount,
		Status:      status,
		MonthYear:   req.MonthYear,
		Reason:      req.Reason,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	deltas := reconcileTransition(nil, &payment)
	if err := s.paymentRepo.SavePayment(ctx, payment, deltas); err != nil {
		logger.Error("Failed to save payment", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	logger.Info("Payment created",
		slog.String("payment_id", payment.PaymentID),
		slog.String("status", string(payment.Status)),
		slog.Int("ledger_deltas", len(deltas)))
	return &payment, nil
}

// GetPaymentByID retrieves a single payment.
func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find payment by ID", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}
	return payment, nil
}

// ListPayments retrieves a month's payments, optionally filtered by status.
func (s *paymentService) ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.Payment, error) {
	var status *domain.PaymentStatus
	if params.Status != nil {
		st := domain.PaymentStatus(*params.Status)
		status = &st
	}

	payments, err := s.paymentRepo.ListPaymentsByMonth(ctx, params.MonthYear, status)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list payments", slog.String("error", err.Error()), slog.String("month_year", params.MonthYear))
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	return payments, nil
}

// UpdatePayment edits a payment. The stored record is diffed against the
// edited one so status flips, amount edits and bucket moves each translate
// into the minimal ledger adjustment.
func (s *paymentService) UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, userID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	previous, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Payment not found for update", slog.String("payment_id", paymentID))
		}
		return nil, err
	}

	next := *previous
	updated := false
	if req.Status != nil && *req.Status != previous.Status {
		next.Status = *req.Status
		updated = true
	}
	if req.Amount != nil && !req.Amount.Equal(previous.Amount) {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: got %s", ErrAmountNotPositive, req.Amount.String())
		}
		next.Amount = *req.Amount
		updated = true
	}
	if req.ApartmentID != nil && *req.ApartmentID != previous.ApartmentID {
		next.ApartmentID = *req.ApartmentID
		updated = true
	}
	if req.MonthYear != nil && *req.MonthYear != previous.MonthYear {
		next.MonthYear = *req.MonthYear
		updated = true
	}
	if req.Reason != nil {
		next.Reason = *req.Reason
		updated = true
	}

	if !updated {
		logger.Debug("No fields provided for payment update", slog.String("payment_id", paymentID))
		return previous, nil
	}

	now := time.Now().UTC()
	next.LastUpdatedAt = now
	next.LastUpdatedBy = userID

	deltas := reconcileTransition(previous, &next)
	if err := s.paymentRepo.UpdatePayment(ctx, next, deltas); err != nil {
		logger.Error("Failed to update payment", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	logger.Info("Payment updated",
		slog.String("payment_id", paymentID),
		slog.String("status", string(next.Status)),
		slog.Int("ledger_deltas", len(deltas)))
	return &next, nil
}

// DeletePayment removes a payment. If it was approved, its amount is backed
// out of the ledger in the same transaction.
func (s *paymentService) DeletePayment(ctx context.Context, paymentID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	previous, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return err
	}

	deltas := reconcileTransition(previous, nil)
	if err := s.paymentRepo.DeletePayment(ctx, paymentID, userID, deltas); err != nil {
		logger.Error("Failed to delete payment", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	logger.Info("Payment deleted", slog.String("payment_id", paymentID), slog.Int("ledger_deltas", len(deltas)))
	return nil
}
