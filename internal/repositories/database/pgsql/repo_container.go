package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	apartmentRepo := newPgxApartmentRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	balanceSheetRepo := newPgxBalanceSheetRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool, balanceSheetRepo)

	return portsrepo.RepositoryProvider{
		ApartmentRepo:    apartmentRepo,
		CategoryRepo:     categoryRepo,
		ExpenseRepo:      expenseRepo,
		PaymentRepo:      paymentRepo,
		BalanceSheetRepo: balanceSheetRepo,
	}
}
