package mapping

import (
	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	"github.com/deepak-sekarbabu-coder/apargo/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		PayerID:     d.PayerID,
		PayeeID:     d.PayeeID,
		ApartmentID: d.ApartmentID,
		Category:    models.PaymentCategory(d.Category),
		Amount:      d.Amount,
		Status:      models.PaymentStatus(d.Status),
		MonthYear:   d.MonthYear,
		Reason:      d.Reason,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		PayerID:     m.PayerID,
		PayeeID:     m.PayeeID,
		ApartmentID: m.ApartmentID,
		Category:    domain.PaymentCategory(m.Category),
		Amount:      m.Amount,
		Status:      domain.PaymentStatus(m.Status),
		MonthYear:   m.MonthYear,
		Reason:      m.Reason,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to a slice of domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
