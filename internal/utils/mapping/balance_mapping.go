package mapping

import (
	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	"github.com/deepak-sekarbabu-coder/apargo/internal/models"
)

// ToModelMonthlyBalance converts a domain MonthlyBalance to a model MonthlyBalance
func ToModelMonthlyBalance(d domain.MonthlyBalance) models.MonthlyBalance {
	return models.MonthlyBalance{
		ApartmentID:   d.ApartmentID,
		MonthYear:     d.MonthYear,
		TotalIncome:   d.TotalIncome,
		TotalExpenses: d.TotalExpenses,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMonthlyBalance converts a model MonthlyBalance to a domain MonthlyBalance
func ToDomainMonthlyBalance(m models.MonthlyBalance) domain.MonthlyBalance {
	return domain.MonthlyBalance{
		ApartmentID:   m.ApartmentID,
		MonthYear:     m.MonthYear,
		TotalIncome:   m.TotalIncome,
		TotalExpenses: m.TotalExpenses,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMonthlyBalanceSlice converts a slice of model MonthlyBalances to a slice of domain MonthlyBalances
func ToDomainMonthlyBalanceSlice(ms []models.MonthlyBalance) []domain.MonthlyBalance {
	ds := make([]domain.MonthlyBalance, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMonthlyBalance(m)
	}
	return ds
}
