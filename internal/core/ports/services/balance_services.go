package services

import (
	"context"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
)

// BalanceSvcFacade defines the derived balance views exposed to handlers.
type BalanceSvcFacade interface {
	// GetApartmentBalances aggregates the full expense history into each
	// apartment's net balance and pairwise breakdown.
	GetApartmentBalances(ctx context.Context) (map[string]domain.ApartmentBalance, error)

	// GetUnpaidBillsCount returns the dashboard's unpaid-shares counter.
	GetUnpaidBillsCount(ctx context.Context) (int, error)

	// ListMonthlyBalances retrieves the persisted ledger buckets of a month.
	ListMonthlyBalances(ctx context.Context, monthYear string) ([]domain.MonthlyBalance, error)

	// RebuildMonthlyBalances recomputes one month's ledger buckets from the
	// approved payments on record, replacing whatever the incremental deltas
	// have accumulated. Admin repair path.
	RebuildMonthlyBalances(ctx context.Context, monthYear string, userID string) ([]domain.MonthlyBalance, error)
}
