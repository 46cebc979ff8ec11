package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	portsrepo "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/repositories"
	portssvc "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/services"
	"github.com/deepak-sekarbabu-coder/apargo/internal/middleware"
)

// balanceService serves the derived balance views: the who-owes-whom
// aggregation over the expense history, and the persisted monthly ledger.
type balanceService struct {
	expenseRepo      portsrepo.ExpenseReader
	apartmentRepo    portsrepo.ApartmentReader
	paymentRepo      portsrepo.PaymentReader
	balanceSheetRepo portsrepo.BalanceSheetRepositoryFacade
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(expenseRepo portsrepo.ExpenseReader, apartmentRepo portsrepo.ApartmentReader, paymentRepo portsrepo.PaymentReader, balanceSheetRepo portsrepo.BalanceSheetRepositoryFacade) portssvc.BalanceSvcFacade {
	return &balanceService{
		expenseRepo:      expenseRepo,
		apartmentRepo:    apartmentRepo,
		paymentRepo:      paymentRepo,
		balanceSheetRepo: balanceSheetRepo,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// GetApartmentBalances runs the optimized aggregator over the full expense
// history and current roster.
func (s *balanceService) GetApartmentBalances(ctx context.Context) (map[string]domain.ApartmentBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	apartments, err := s.apartmentRepo.ListApartments(ctx)
	if err != nil {
		logger.Error("Failed to load apartment roster for balances", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load apartments: %w", err)
	}

	expenses, err := s.expenseRepo.ListAllExpenses(ctx)
	if err != nil {
		logger.Error("Failed to load expense history for balances", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	balances := ComputeApartmentBalancesOptimized(expenses, apartments)
	logger.Debug("Apartment balances computed", slog.Int("apartments", len(apartments)), slog.Int("expenses", len(expenses)))
	return balances, nil
}

// GetUnpaidBillsCount returns the count of unpaid non-payer shares across
// the full expense history.
func (s *balanceService) GetUnpaidBillsCount(ctx context.Context) (int, error) {
	expenses, err := s.expenseRepo.ListAllExpenses(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to load expenses for unpaid count", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to load expenses: %w", err)
	}
	return CalculateUnpaidBillsCount(expenses), nil
}

// ListMonthlyBalances retrieves the persisted ledger buckets of a month.
func (s *balanceService) ListMonthlyBalances(ctx context.Context, monthYear string) ([]domain.MonthlyBalance, error) {
	balances, err := s.balanceSheetRepo.ListMonthlyBalances(ctx, monthYear)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list monthly balances", slog.String("error", err.Error()), slog.String("month_year", monthYear))
		return nil, fmt.Errorf("failed to retrieve monthly balances: %w", err)
	}
	return balances, nil
}

// RebuildMonthlyBalances recomputes a month's ledger buckets from the
// approved payments on record and replaces the persisted rows. The result
// must match what the incremental deltas have accumulated; this is the
// repair path for buckets that drifted through out-of-band edits.
func (s *balanceService) RebuildMonthlyBalances(ctx context.Context, monthYear string, userID string) ([]domain.MonthlyBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	approved := domain.PaymentApproved
	payments, err := s.paymentRepo.ListPaymentsByMonth(ctx, monthYear, &approved)
	if err != nil {
		logger.Error("Failed to load approved payments for rebuild", slog.String("error", err.Error()), slog.String("month_year", monthYear))
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	now := time.Now().UTC()
	buckets := make(map[string]*domain.MonthlyBalance)
	for i := range payments {
		p := &payments[i]
		bucket, ok := buckets[p.ApartmentID]
		if !ok {
			bucket = &domain.MonthlyBalance{
				ApartmentID: p.ApartmentID,
				MonthYear:   monthYear,
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					CreatedBy:     userID,
					LastUpdatedAt: now,
					LastUpdatedBy: userID,
				},
			}
			buckets[p.ApartmentID] = bucket
		}
		switch p.Category {
		case domain.PaymentIncome:
			bucket.TotalIncome = bucket.TotalIncome.Add(p.Amount)
		case domain.PaymentExpense:
			bucket.TotalExpenses = bucket.TotalExpenses.Add(p.Amount)
		}
	}

	balances := make([]domain.MonthlyBalance, 0, len(buckets))
	for _, bucket := range buckets {
		balances = append(balances, *bucket)
	}
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].ApartmentID < balances[j].ApartmentID
	})

	if err := s.balanceSheetRepo.ReplaceMonthlyBalances(ctx, monthYear, balances); err != nil {
		logger.Error("Failed to replace monthly balances", slog.String("error", err.Error()), slog.String("month_year", monthYear))
		return nil, fmt.Errorf("failed to replace monthly balances: %w", err)
	}

	logger.Info("Monthly balances rebuilt", slog.String("month_year", monthYear), slog.Int("buckets", len(balances)))
	return balances, nil
}
