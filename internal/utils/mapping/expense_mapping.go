package mapping

import (
	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	"github.com/deepak-sekarbabu-coder/apargo/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:         d.ExpenseID,
		Description:       d.Description,
		Amount:            d.Amount,
		Date:              d.Date,
		CategoryID:        d.CategoryID,
		PaidByApartment:   d.PaidByApartment,
		OwedByApartments:  d.OwedByApartments,
		PerApartmentShare: d.PerApartmentShare,
		PaidByApartments:  d.PaidByApartments,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:         m.ExpenseID,
		Description:       m.Description,
		Amount:            m.Amount,
		Date:              m.Date,
		CategoryID:        m.CategoryID,
		PaidByApartment:   m.PaidByApartment,
		OwedByApartments:  m.OwedByApartments,
		PerApartmentShare: m.PerApartmentShare,
		PaidByApartments:  m.PaidByApartments,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to a slice of domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
