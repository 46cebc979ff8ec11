package services

import (
	"context"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	"github.com/deepak-sekarbabu-coder/apargo/internal/dto"
)

// ExpenseSvcFacade defines the expense operations exposed to handlers.
type ExpenseSvcFacade interface {
	// CreateExpense runs the splitter over the current roster and persists
	// the resulting expense record.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)

	// GetExpenseByID retrieves a single expense.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves a paginated list of expenses.
	ListExpenses(ctx context.Context, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error)

	// MarkApartmentPaid settles one apartment's share of an expense.
	MarkApartmentPaid(ctx context.Context, expenseID string, apartmentID string, userID string) (*domain.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string, userID string) error
}
