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
)

type PgxPaymentRepository struct {
	BaseRepository
	balanceSheetRepo portsrepo.BalanceSheetWriter
}

// newPgxPaymentRepository creates a new repository for payment data. Ledger
// deltas accompanying a payment write are applied through balanceSheetRepo
// inside the same transaction.
func newPgxPaymentRepository(pool *pgxpool.Pool, balanceSheetRepo portsrepo.BalanceSheetWriter) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository:   BaseRepository{Pool: pool},
		balanceSheetRepo: balanceSheetRepo,
	}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, payer_id, payee_id, apartment_id, category, amount, status, month_year, reason, created_at, created_by, last_updated_at, last_updated_by`

func scanPaymentRow(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.PayerID,
		&m.PayeeID,
		&m.ApartmentID,
		&m.Category,
		&m.Amount,
		&m.Status,
		&m.MonthYear,
		&m.Reason,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`

	modelPay, err := scanPaymentRow(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}

	domainPay := mapping.ToDomainPayment(modelPay)
	return &domainPay, nil
}

// ListPaymentsByMonth retrieves all payments in a ledger month, optionally
// filtered by status.
func (r *PgxPaymentRepository) ListPaymentsByMonth(ctx context.Context, monthYear string, status *domain.PaymentStatus) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE month_year = $1`
	args := []interface{}{monthYear}

	if status != nil {
		query += ` AND status = $2`
		args = append(args, string(*status))
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for %s: %w", monthYear, err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		m, err := scanPaymentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}

	return mapping.ToDomainPaymentSlice(payments), nil
}

// SavePayment persists a new payment and applies its ledger deltas in the
// same transaction, so the payment row and its ledger effect commit
// together.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, deltas []domain.BalanceDelta) error {
	modelPay := mapping.ToModelPayment(payment)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		modelPay.PaymentID,
		modelPay.PayerID,
		modelPay.PayeeID,
		modelPay.ApartmentID,
		modelPay.Category,
		modelPay.Amount,
		modelPay.Status,
		modelPay.MonthYear,
		modelPay.Reason,
		modelPay.CreatedAt,
		modelPay.CreatedBy,
		modelPay.LastUpdatedAt,
		modelPay.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: payment with ID %s already exists", apperrors.ErrDuplicate, modelPay.PaymentID)
		}
		return fmt.Errorf("failed to save payment %s: %w", modelPay.PaymentID, err)
	}

	if err := r.balanceSheetRepo.ApplyDeltasInTx(ctx, tx, deltas, modelPay.CreatedBy, modelPay.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdatePayment updates a payment and applies its ledger deltas in the same
// transaction.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment, deltas []domain.BalanceDelta) error {
	modelPay := mapping.ToModelPayment(payment)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		UPDATE payments
		SET payer_id = $2, payee_id = $3, apartment_id = $4, category = $5, amount = $6, status = $7, month_year = $8, reason = $9, last_updated_at = $10, last_updated_by = $11
		WHERE payment_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		modelPay.PaymentID,
		modelPay.PayerID,
		modelPay.PayeeID,
		modelPay.ApartmentID,
		modelPay.Category,
		modelPay.Amount,
		modelPay.Status,
		modelPay.MonthYear,
		modelPay.Reason,
		modelPay.LastUpdatedAt,
		modelPay.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update payment %s: %w", modelPay.PaymentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.balanceSheetRepo.ApplyDeltasInTx(ctx, tx, deltas, modelPay.LastUpdatedBy, modelPay.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeletePayment removes a payment and applies its ledger deltas in the same
// transaction.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID string, updatedByUserID string, deltas []domain.BalanceDelta) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	cmdTag, err := tx.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.balanceSheetRepo.ApplyDeltasInTx(ctx, tx, deltas, updatedByUserID, time.Now()); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
