package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deepak-sekarbabu-coder/apargo/internal/apperrors"
	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	portsrepo "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/repositories"
	"github.com/deepak-sekarbabu-coder/apargo/internal/models"
	"github.com/deepak-sekarbabu-coder/apargo/internal/utils/mapping"
)

type PgxBalanceSheetRepository struct {
	BaseRepository
}

// newPgxBalanceSheetRepository creates a new repository for monthly
// balance-sheet data.
func newPgxBalanceSheetRepository(pool *pgxpool.Pool) portsrepo.BalanceSheetRepositoryFacade {
	return &PgxBalanceSheetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBalanceSheetRepository implements portsrepo.BalanceSheetRepositoryFacade
var _ portsrepo.BalanceSheetRepositoryFacade = (*PgxBalanceSheetRepository)(nil)

// FindMonthlyBalance retrieves one (apartment, month) ledger bucket.
func (r *PgxBalanceSheetRepository) FindMonthlyBalance(ctx context.Context, apartmentID string, monthYear string) (*domain.MonthlyBalance, error) {
	query := `
		SELECT apartment_id, month_year, total_income, total_expenses, created_at, created_by, last_updated_at, last_updated_by
		FROM monthly_balances
		WHERE apartment_id = $1 AND month_year = $2;
	`
	var m models.MonthlyBalance
	err := r.Pool.QueryRow(ctx, query, apartmentID, monthYear).Scan(
		&m.ApartmentID,
		&m.MonthYear,
		&m.TotalIncome,
		&m.TotalExpenses,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find monthly balance for apartment %s in %s: %w", apartmentID, monthYear, err)
	}

	d := mapping.ToDomainMonthlyBalance(m)
	return &d, nil
}

// ListMonthlyBalances retrieves all ledger buckets for a month ordered by
// apartment ID.
func (r *PgxBalanceSheetRepository) ListMonthlyBalances(ctx context.Context, monthYear string) ([]domain.MonthlyBalance, error) {
	query := `
		SELECT apartment_id, month_year, total_income, total_expenses, created_at, created_by, last_updated_at, last_updated_by
		FROM monthly_balances
		WHERE month_year = $1
		ORDER BY apartment_id;
	`
	rows, err := r.Pool.Query(ctx, query, monthYear)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly balances for %s: %w", monthYear, err)
	}
	defer rows.Close()

	balances := []models.MonthlyBalance{}
	for rows.Next() {
		var m models.MonthlyBalance
		err := rows.Scan(
			&m.ApartmentID,
			&m.MonthYear,
			&m.TotalIncome,
			&m.TotalExpenses,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly balance row: %w", err)
		}
		balances = append(balances, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating monthly balance rows: %w", rows.Err())
	}

	return mapping.ToDomainMonthlyBalanceSlice(balances), nil
}

// ApplyDeltasInTx applies reconciler deltas as atomic increments to the
// affected ledger buckets, creating buckets that do not exist yet. Running
// the increments as upserts keeps concurrent payment edits against the same
// bucket commutative.
func (r *PgxBalanceSheetRepository) ApplyDeltasInTx(ctx context.Context, tx pgx.Tx, deltas []domain.BalanceDelta, updatedByUserID string, updatedAt time.Time) error {
	if len(deltas) == 0 {
		return nil // Nothing to apply
	}

	query := `
		INSERT INTO monthly_balances (apartment_id, month_year, total_income, total_expenses, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $5, $6)
		ON CONFLICT (apartment_id, month_year) DO UPDATE
		SET total_income = monthly_balances.total_income + EXCLUDED.total_income,
		    total_expenses = monthly_balances.total_expenses + EXCLUDED.total_expenses,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`

	batch := &pgx.Batch{}
	for _, delta := range deltas {
		if delta.TotalIncomeDelta.IsZero() && delta.TotalExpensesDelta.IsZero() {
			continue
		}
		batch.Queue(query, delta.ApartmentID, delta.MonthYear, delta.TotalIncomeDelta, delta.TotalExpensesDelta, updatedAt, updatedByUserID)
	}

	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to apply balance delta: %w", err)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close balance delta batch: %w", err)
	}
	return batchErr
}

// ReplaceMonthlyBalances transactionally replaces every ledger bucket of a
// month with the given recomputed set.
func (r *PgxBalanceSheetRepository) ReplaceMonthlyBalances(ctx context.Context, monthYear string, balances []domain.MonthlyBalance) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM monthly_balances WHERE month_year = $1;`, monthYear); err != nil {
		return fmt.Errorf("failed to clear monthly balances for %s: %w", monthYear, err)
	}

	insert := `
		INSERT INTO monthly_balances (apartment_id, month_year, total_income, total_expenses, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	batch := &pgx.Batch{}
	for _, balance := range balances {
		m := mapping.ToModelMonthlyBalance(balance)
		batch.Queue(insert, m.ApartmentID, m.MonthYear, m.TotalIncome, m.TotalExpenses, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	}

	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		var batchErr error
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil && batchErr == nil {
				batchErr = fmt.Errorf("failed to insert monthly balance: %w", err)
			}
		}
		if err := br.Close(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to close monthly balance batch: %w", err)
		}
		if batchErr != nil {
			return batchErr
		}
	}

	return r.Commit(ctx, tx)
}
