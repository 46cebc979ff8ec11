package repositories

import (
	"context"
	"time"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves a paginated list of expenses ordered by date
	// using token-based pagination. It returns the expenses, a token for the
	// next page, and an error.
	ListExpenses(ctx context.Context, limit int, nextToken *string) ([]domain.Expense, *string, error)

	// ListAllExpenses retrieves the full expense history for balance
	// aggregation.
	ListAllExpenses(ctx context.Context) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists a new expense with its debt-bearing fields.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// MarkApartmentPaid appends the apartment to the expense's settled set.
	// The append is a single atomic update so concurrent settlements of the
	// same expense do not race.
	MarkApartmentPaid(ctx context.Context, expenseID string, apartmentID string, updatedByUserID string, updatedAt time.Time) error

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
