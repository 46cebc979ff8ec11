package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
)

// BalanceSheetReader defines read operations for monthly balance-sheet data
type BalanceSheetReader interface {
	// FindMonthlyBalance retrieves one (apartment, month) ledger bucket.
	FindMonthlyBalance(ctx context.Context, apartmentID string, monthYear string) (*domain.MonthlyBalance, error)

	// ListMonthlyBalances retrieves all ledger buckets for a month.
	ListMonthlyBalances(ctx context.Context, monthYear string) ([]domain.MonthlyBalance, error)
}

// BalanceSheetWriter defines write operations for monthly balance-sheet data
type BalanceSheetWriter interface {
	// ApplyDeltasInTx applies reconciler deltas as atomic increments to the
	// affected ledger buckets, creating buckets that do not exist yet. It
	// runs inside the caller's transaction so a payment mutation and its
	// ledger effect commit together.
	ApplyDeltasInTx(ctx context.Context, tx pgx.Tx, deltas []domain.BalanceDelta, updatedByUserID string, updatedAt time.Time) error

	// ReplaceMonthlyBalances transactionally replaces every ledger bucket of
	// a month with the given recomputed set.
	ReplaceMonthlyBalances(ctx context.Context, monthYear string, balances []domain.MonthlyBalance) error
}

// BalanceSheetRepositoryFacade combines all balance-sheet repository interfaces
type BalanceSheetRepositoryFacade interface {
	BalanceSheetReader
	BalanceSheetWriter
}
