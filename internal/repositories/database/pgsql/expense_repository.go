package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deepak-sekarbabu-coder/apargo/internal/apperrors"
	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	portsrepo "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/repositories"
	"github.com/deepak-sekarbabu-coder/apargo/internal/models"
	"github.com/deepak-sekarbabu-coder/apargo/internal/utils/mapping"
	"github.com/deepak-sekarbabu-coder/apargo/internal/utils/pagination"
)

type PgxExpenseRepository struct {
	pool *pgxpool.Pool
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{pool: pool}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, description, amount, date, category_id, paid_by_apartment, owed_by_apartments, per_apartment_share, paid_by_apartments, created_at, created_by, last_updated_at, last_updated_by`

func scanExpenseRow(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.Description,
		&m.Amount,
		&m.Date,
		&m.CategoryID,
		&m.PaidByApartment,
		&m.OwedByApartments,
		&m.PerApartmentShare,
		&m.PaidByApartments,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveExpense inserts a new expense with its debt-bearing fields.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	modelExp := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		modelExp.ExpenseID,
		modelExp.Description,
		modelExp.Amount,
		modelExp.Date,
		modelExp.CategoryID,
		modelExp.PaidByApartment,
		modelExp.OwedByApartments,
		modelExp.PerApartmentShare,
		modelExp.PaidByApartments,
		modelExp.CreatedAt,
		modelExp.CreatedBy,
		modelExp.LastUpdatedAt,
		modelExp.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: expense with ID %s already exists", apperrors.ErrDuplicate, modelExp.ExpenseID)
		}
		return fmt.Errorf("failed to save expense %s: %w", modelExp.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves an expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`

	modelExp, err := scanExpenseRow(r.pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}

	domainExp := mapping.ToDomainExpense(modelExp)
	return &domainExp, nil
}

// ListExpenses retrieves a paginated list of expenses ordered by date
// descending with created_at as a tie-breaker, using token-based pagination.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	var args []interface{}
	query := `SELECT ` + expenseColumns + ` FROM expenses`

	if nextToken != nil && *nextToken != "" {
		expenseDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` WHERE (date, created_at) < ($1, $2)`
		args = append(args, expenseDate, createdAt)
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY date DESC, created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		m, err := scanExpenseRow(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}

	var newToken *string
	if len(expenses) > limit {
		expenses = expenses[:limit]
		last := expenses[len(expenses)-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		newToken = &token
	}

	return mapping.ToDomainExpenseSlice(expenses), newToken, nil
}

// ListAllExpenses retrieves the full expense history for balance aggregation.
func (r *PgxExpenseRepository) ListAllExpenses(ctx context.Context) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses ORDER BY date DESC, created_at DESC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		m, err := scanExpenseRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}

	return mapping.ToDomainExpenseSlice(expenses), nil
}

// MarkApartmentPaid appends the apartment to the expense's settled set. The
// guard on the WHERE clause makes the append idempotent under concurrency:
// two racing settlements of the same share leave exactly one entry.
func (r *PgxExpenseRepository) MarkApartmentPaid(ctx context.Context, expenseID string, apartmentID string, updatedByUserID string, updatedAt time.Time) error {
	query := `
		UPDATE expenses
		SET paid_by_apartments = array_append(paid_by_apartments, $2),
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE expense_id = $1
		  AND NOT (paid_by_apartments @> ARRAY[$2]);
	`
	cmdTag, err := r.pool.Exec(ctx, query, expenseID, apartmentID, updatedAt, updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to mark apartment %s paid on expense %s: %w", apartmentID, expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the expense does not exist or the share is already settled.
		_, findErr := r.FindExpenseByID(ctx, expenseID)
		if errors.Is(findErr, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		} else if findErr != nil {
			return fmt.Errorf("failed to check expense status after settlement attempt for %s: %w", expenseID, findErr)
		}
		return apperrors.ErrConflict
	}
	return nil
}

// DeleteExpense removes an expense.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	query := `DELETE FROM expenses WHERE expense_id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
