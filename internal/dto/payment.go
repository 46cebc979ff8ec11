package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
)

// CreatePaymentRequest defines the payload for recording a payment event.
// Status defaults to PENDING when omitted; recording a payment directly as
// APPROVED enters it into the monthly ledger immediately.
type CreatePaymentRequest struct {
	PayerID     string               `json:"payerID" binding:"required"`
	PayeeID     string               `json:"payeeID"`
	ApartmentID string               `json:"apartmentID" binding:"required"`
	Category    domain.PaymentCategory `json:"category" binding:"required,oneof=INCOME EXPENSE"`
	Amount      decimal.Decimal      `json:"amount" binding:"required"`
	Status      domain.PaymentStatus `json:"status" binding:"omitempty,oneof=PENDING PAID APPROVED REJECTED CANCELLED"`
	MonthYear   string               `json:"monthYear" binding:"required,monthyear"`
	Reason      string               `json:"reason"`
}

// UpdatePaymentRequest defines the payload for editing a payment. Pointer
// fields distinguish "not provided" from zero values; the service diffs the
// stored record against the edited one to derive ledger deltas.
type UpdatePaymentRequest struct {
	Status      *domain.PaymentStatus `json:"status,omitempty" binding:"omitempty,oneof=PENDING PAID APPROVED REJECTED CANCELLED"`
	Amount      *decimal.Decimal      `json:"amount,omitempty"`
	ApartmentID *string               `json:"apartmentID,omitempty"`
	MonthYear   *string               `json:"monthYear,omitempty" binding:"omitempty,monthyear"`
	Reason      *string               `json:"reason,omitempty"`
}

// ListPaymentsParams holds query parameters for listing payments.
type ListPaymentsParams struct {
	MonthYear string  `form:"monthYear" binding:"required,monthyear"`
	Status    *string `form:"status" binding:"omitempty,oneof=PENDING PAID APPROVED REJECTED CANCELLED"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID   string                 `json:"paymentID"`
	PayerID     string                 `json:"payerID"`
	PayeeID     string                 `json:"payeeID"`
	ApartmentID string                 `json:"apartmentID"`
	Category    domain.PaymentCategory `json:"category"`
	Amount      decimal.Decimal        `json:"amount"`
	Status      domain.PaymentStatus   `json:"status"`
	MonthYear   string                 `json:"monthYear"`
	Reason      string                 `json:"reason"`
	CreatedAt   time.Time              `json:"createdAt"`
	CreatedBy   string                 `json:"createdBy"`
}

// ListPaymentsResponse wraps a month's payments.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		PayerID:     p.PayerID,
		PayeeID:     p.PayeeID,
		ApartmentID: p.ApartmentID,
		Category:    p.Category,
		Amount:      p.Amount,
		Status:      p.Status,
		MonthYear:   p.MonthYear,
		Reason:      p.Reason,
		CreatedAt:   p.CreatedAt,
		CreatedBy:   p.CreatedBy,
	}
}

// ToPaymentResponses converts a slice of domain.Payment to []PaymentResponse.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}
