package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/deepak-sekarbabu-coder/apargo/internal/apperrors"
	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	portsrepo "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/repositories"
	portssvc "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/services"
	"github.com/deepak-sekarbabu-coder/apargo/internal/dto"
	"github.com/deepak-sekarbabu-coder/apargo/internal/middleware"
)

var (
	ErrNotOwingApartment = errors.New("apartment does not owe a share of this expense")
	ErrAlreadySettled    = errors.New("apartment has already settled its share")
)

// expenseService provides expense creation, settlement and listing. The
// splitter runs exactly once, at creation time; settlement only ever appends
// to the paid set.
type expenseService struct {
	expenseRepo   portsrepo.ExpenseRepositoryFacade
	apartmentRepo portsrepo.ApartmentReader
	categoryRepo  portsrepo.CategoryReader
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, apartmentRepo portsrepo.ApartmentReader, categoryRepo portsrepo.CategoryReader) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo:   expenseRepo,
		apartmentRepo: apartmentRepo,
		categoryRepo:  categoryRepo,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense loads the roster and category configuration, runs the
// splitter, and persists the resulting expense.
func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	apartments, err := s.apartmentRepo.ListApartments(ctx)
	if err != nil {
		logger.Error("Failed to load apartment roster for expense creation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load apartments: %w", err)
	}

	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		logger.Error("Failed to load categories for expense creation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	split, err := SplitExpense(req.Amount, req.CategoryID, req.PaidByApartment, apartments, categories)
	if err != nil {
		if errors.Is(err, apperrors.ErrApartmentDataNotReady) {
			logger.Warn("Apartment roster empty, expense creation deferred")
		}
		// Propagate untouched: ErrApartmentDataNotReady carries retry
		// semantics for the caller.
		return nil, err
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:         uuid.NewString(),
		Description:       req.Description,
		Amount:            req.Amount,
		Date:              req.Date,
		CategoryID:        req.CategoryID,
		PaidByApartment:   split.PaidByApartment,
		OwedByApartments:  split.OwedByApartments,
		PerApartmentShare: split.PerApartmentShare,
		PaidByApartments:  split.PaidByApartments,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		logger.Error("Failed to save expense", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	logger.Info("Expense created",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("paid_by", expense.PaidByApartment),
		slog.Int("owed_by_count", len(expense.OwedByApartments)))
	return &expense, nil
}

// GetExpenseByID retrieves a single expense.
func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find expense by ID", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	return expense, nil
}

// ListExpenses retrieves a paginated list of expenses ordered by date.
func (s *expenseService) ListExpenses(ctx context.Context, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20 // Default limit
	}

	expenses, nextToken, err := s.expenseRepo.ListExpenses(ctx, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list expenses from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve expenses: %w", err)
	}

	resp := &dto.ListExpensesResponse{
		Expenses:  dto.ToExpenseResponses(expenses),
		NextToken: nextToken,
	}

	logger.Debug("Expenses listed", slog.Int("count", len(expenses)))
	return resp, nil
}

// MarkApartmentPaid settles one apartment's share of an expense. The repo
// performs the append atomically; this method validates the request against
// the current record first so callers get a meaningful error instead of a
// silent no-op.
func (s *expenseService) MarkApartmentPaid(ctx context.Context, expenseID string, apartmentID string, userID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	if !expense.OwedBy(apartmentID) {
		return nil, fmt.Errorf("%w: apartment %s, expense %s", ErrNotOwingApartment, apartmentID, expenseID)
	}
	if expense.IsSettledBy(apartmentID) {
		return nil, fmt.Errorf("%w: apartment %s, expense %s", ErrAlreadySettled, apartmentID, expenseID)
	}

	now := time.Now().UTC()
	if err := s.expenseRepo.MarkApartmentPaid(ctx, expenseID, apartmentID, userID, now); err != nil {
		logger.Error("Failed to mark apartment paid", slog.String("error", err.Error()), slog.String("expense_id", expenseID), slog.String("apartment_id", apartmentID))
		return nil, fmt.Errorf("failed to settle share: %w", err)
	}

	expense.PaidByApartments = append(expense.PaidByApartments, apartmentID)
	expense.LastUpdatedAt = now
	expense.LastUpdatedBy = userID

	logger.Info("Apartment share settled", slog.String("expense_id", expenseID), slog.String("apartment_id", apartmentID))
	return expense, nil
}

// DeleteExpense removes an expense record.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.expenseRepo.FindExpenseByID(ctx, expenseID); err != nil {
		return fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		logger.Error("Failed to delete expense", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	logger.Info("Expense deleted", slog.String("expense_id", expenseID), slog.String("deleted_by", userID))
	return nil
}
