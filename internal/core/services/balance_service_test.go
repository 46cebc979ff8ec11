package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	portssvc "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/services"
	"github.com/deepak-sekarbabu-coder/apargo/internal/core/services"
)

// --- Mock BalanceSheetRepository ---
type MockBalanceSheetRepository struct {
	mock.Mock
}

func (m *MockBalanceSheetRepository) FindMonthlyBalance(ctx context.Context, apartmentID string, monthYear string) (*domain.MonthlyBalance, error) {
	args := m.Called(ctx, apartmentID, monthYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyBalance), args.Error(1)
}

func (m *MockBalanceSheetRepository) ListMonthlyBalances(ctx context.Context, monthYear string) ([]domain.MonthlyBalance, error) {
	args := m.Called(ctx, monthYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyBalance), args.Error(1)
}

func (m *MockBalanceSheetRepository) ApplyDeltasInTx(ctx context.Context, tx pgx.Tx, deltas []domain.BalanceDelta, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, deltas, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockBalanceSheetRepository) ReplaceMonthlyBalances(ctx context.Context, monthYear string, balances []domain.MonthlyBalance) error {
	args := m.Called(ctx, monthYear, balances)
	return args.Error(0)
}

// --- Test Suite ---
type BalanceServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo      *MockExpenseRepository
	mockApartmentRepo    *MockApartmentReader
	mockPaymentRepo      *MockPaymentRepository
	mockBalanceSheetRepo *MockBalanceSheetRepository
	service              portssvc.BalanceSvcFacade
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockApartmentRepo = new(MockApartmentReader)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockBalanceSheetRepo = new(MockBalanceSheetRepository)
	suite.service = services.NewBalanceService(suite.mockExpenseRepo, suite.mockApartmentRepo, suite.mockPaymentRepo, suite.mockBalanceSheetRepo)
}

// --- Test Cases ---

func (suite *BalanceServiceTestSuite) TestGetApartmentBalances() {
	ctx := context.Background()
	apartments := testRoster("G1", "F1")
	expenses := []domain.Expense{
		sharedExpense("G1", 40, []string{"G1", "F1"}, []string{"G1"}),
	}

	suite.mockApartmentRepo.On("ListApartments", ctx).Return(apartments, nil).Once()
	suite.mockExpenseRepo.On("ListAllExpenses", ctx).Return(expenses, nil).Once()

	balances, err := suite.service.GetApartmentBalances(ctx)

	suite.Require().NoError(err)
	suite.Len(balances, 2)
	suite.True(balances["F1"].Owes["G1"].Equal(decimal.NewFromInt(20)))
	suite.True(balances["G1"].Balance.Equal(decimal.NewFromInt(20)))
	suite.mockApartmentRepo.AssertExpectations(suite.T())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestGetUnpaidBillsCount() {
	ctx := context.Background()
	expenses := []domain.Expense{
		sharedExpense("G1", 60, []string{"G1", "F1", "F2"}, []string{"G1"}),
	}

	suite.mockExpenseRepo.On("ListAllExpenses", ctx).Return(expenses, nil).Once()

	count, err := suite.service.GetUnpaidBillsCount(ctx)

	suite.Require().NoError(err)
	suite.Equal(2, count)
}

func (suite *BalanceServiceTestSuite) TestRebuildMonthlyBalances() {
	ctx := context.Background()
	userID := uuid.NewString()
	approved := domain.PaymentApproved
	payments := []domain.Payment{
		{PaymentID: "pay-1", ApartmentID: "G1", Category: domain.PaymentIncome, Amount: decimal.NewFromInt(2000), Status: approved, MonthYear: "2025-08"},
		{PaymentID: "pay-2", ApartmentID: "G1", Category: domain.PaymentExpense, Amount: decimal.NewFromInt(400), Status: approved, MonthYear: "2025-08"},
		{PaymentID: "pay-3", ApartmentID: "F1", Category: domain.PaymentExpense, Amount: decimal.NewFromInt(150), Status: approved, MonthYear: "2025-08"},
	}

	suite.mockPaymentRepo.On("ListPaymentsByMonth", ctx, "2025-08", mock.MatchedBy(func(s *domain.PaymentStatus) bool {
		return s != nil && *s == domain.PaymentApproved
	})).Return(payments, nil).Once()
	suite.mockBalanceSheetRepo.On("ReplaceMonthlyBalances", ctx, "2025-08", mock.MatchedBy(func(balances []domain.MonthlyBalance) bool {
		if len(balances) != 2 {
			return false
		}
		// Sorted by apartment ID: F1 then G1.
		return balances[0].ApartmentID == "F1" &&
			balances[0].TotalExpenses.Equal(decimal.NewFromInt(150)) &&
			balances[1].ApartmentID == "G1" &&
			balances[1].TotalIncome.Equal(decimal.NewFromInt(2000)) &&
			balances[1].TotalExpenses.Equal(decimal.NewFromInt(400))
	})).Return(nil).Once()

	balances, err := suite.service.RebuildMonthlyBalances(ctx, "2025-08", userID)

	suite.Require().NoError(err)
	suite.Len(balances, 2)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockBalanceSheetRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestRebuildMonthlyBalances_EmptyMonth() {
	ctx := context.Background()

	suite.mockPaymentRepo.On("ListPaymentsByMonth", ctx, "2025-09", mock.Anything).Return([]domain.Payment{}, nil).Once()
	suite.mockBalanceSheetRepo.On("ReplaceMonthlyBalances", ctx, "2025-09", mock.MatchedBy(func(balances []domain.MonthlyBalance) bool {
		return len(balances) == 0
	})).Return(nil).Once()

	balances, err := suite.service.RebuildMonthlyBalances(ctx, "2025-09", uuid.NewString())

	suite.Require().NoError(err)
	suite.Empty(balances)
	suite.mockBalanceSheetRepo.AssertExpectations(suite.T())
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
