package services

import (
	portsrepo "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/repositories"
	portssvc "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/services"
	"github.com/deepak-sekarbabu-coder/apargo/pkg/config"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Apartment: NewApartmentService(repos.ApartmentRepo),
		Category:  NewCategoryService(repos.CategoryRepo),
		Expense:   NewExpenseService(repos.ExpenseRepo, repos.ApartmentRepo, repos.CategoryRepo),
		Payment:   NewPaymentService(repos.PaymentRepo),
		Balance:   NewBalanceService(repos.ExpenseRepo, repos.ApartmentRepo, repos.PaymentRepo, repos.BalanceSheetRepo),
		Auth:      NewAuthService(cfg),
	}
}
