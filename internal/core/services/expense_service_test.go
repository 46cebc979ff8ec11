package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/deepak-sekarbabu-coder/apargo/internal/apperrors"
	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	portssvc "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/services"
	"github.com/deepak-sekarbabu-coder/apargo/internal/core/services"
	"github.com/deepak-sekarbabu-coder/apargo/internal/dto"
)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return expenses, token, args.Error(2)
}

func (m *MockExpenseRepository) ListAllExpenses(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) MarkApartmentPaid(ctx context.Context, expenseID string, apartmentID string, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, expenseID, apartmentID, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

// --- Mock ApartmentReader ---
type MockApartmentReader struct {
	mock.Mock
}

func (m *MockApartmentReader) FindApartmentByID(ctx context.Context, apartmentID string) (*domain.Apartment, error) {
	args := m.Called(ctx, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Apartment), args.Error(1)
}

func (m *MockApartmentReader) ListApartments(ctx context.Context) ([]domain.Apartment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Apartment), args.Error(1)
}

// --- Mock CategoryReader ---
type MockCategoryReader struct {
	mock.Mock
}

func (m *MockCategoryReader) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryReader) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

// --- Test Suite ---
type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo   *MockExpenseRepository
	mockApartmentRepo *MockApartmentReader
	mockCategoryRepo  *MockCategoryReader
	service           portssvc.ExpenseSvcFacade
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockApartmentRepo = new(MockApartmentReader)
	suite.mockCategoryRepo = new(MockCategoryReader)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockApartmentRepo, suite.mockCategoryRepo)
}

// --- Test Cases ---

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	apartments := testRoster("G1", "F1", "F2")
	categories := []domain.Category{{CategoryID: "cat-utilities", Name: "Utilities"}}
	req := dto.CreateExpenseRequest{
		Description:     "Water tanker",
		Amount:          decimal.NewFromInt(90),
		Date:            time.Now().UTC(),
		CategoryID:      "cat-utilities",
		PaidByApartment: "F1",
	}

	suite.mockApartmentRepo.On("ListApartments", ctx).Return(apartments, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx).Return(categories, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.PaidByApartment == "F1" &&
			len(e.OwedByApartments) == 3 &&
			e.PerApartmentShare.Equal(decimal.NewFromInt(30)) &&
			len(e.PaidByApartments) == 1 && e.PaidByApartments[0] == "F1" &&
			e.CreatedBy == creatorUserID
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.NotEmpty(expense.ExpenseID)
	suite.Equal([]string{"G1", "F1", "F2"}, expense.OwedByApartments)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockApartmentRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NoSplitCategory() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	apartments := testRoster("G1", "F1")
	categories := []domain.Category{{CategoryID: "cat-personal", Name: "Groceries", NoSplit: true}}
	req := dto.CreateExpenseRequest{
		Description:     "Groceries",
		Amount:          decimal.NewFromInt(50),
		Date:            time.Now().UTC(),
		CategoryID:      "cat-personal",
		PaidByApartment: "G1",
	}

	suite.mockApartmentRepo.On("ListApartments", ctx).Return(apartments, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx).Return(categories, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return len(e.OwedByApartments) == 0 && e.PerApartmentShare.IsZero()
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Empty(expense.OwedByApartments)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_EmptyRoster() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Description:     "Water tanker",
		Amount:          decimal.NewFromInt(90),
		Date:            time.Now().UTC(),
		CategoryID:      "cat-utilities",
		PaidByApartment: "F1",
	}

	suite.mockApartmentRepo.On("ListApartments", ctx).Return([]domain.Apartment{}, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx).Return([]domain.Category{}, nil).Once()

	expense, err := suite.service.CreateExpense(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrApartmentDataNotReady)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestMarkApartmentPaid_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expense := &domain.Expense{
		ExpenseID:         "exp-1",
		PaidByApartment:   "G1",
		OwedByApartments:  []string{"G1", "F1"},
		PerApartmentShare: decimal.NewFromInt(20),
		PaidByApartments:  []string{"G1"},
	}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, "exp-1").Return(expense, nil).Once()
	suite.mockExpenseRepo.On("MarkApartmentPaid", ctx, "exp-1", "F1", userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.MarkApartmentPaid(ctx, "exp-1", "F1", userID)

	suite.Require().NoError(err)
	suite.Contains(updated.PaidByApartments, "F1")
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestMarkApartmentPaid_NotOwing() {
	ctx := context.Background()
	expense := &domain.Expense{
		ExpenseID:        "exp-1",
		PaidByApartment:  "G1",
		OwedByApartments: []string{"G1", "F1"},
		PaidByApartments: []string{"G1"},
	}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, "exp-1").Return(expense, nil).Once()

	updated, err := suite.service.MarkApartmentPaid(ctx, "exp-1", "S9", uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, services.ErrNotOwingApartment)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "MarkApartmentPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestMarkApartmentPaid_AlreadySettled() {
	ctx := context.Background()
	expense := &domain.Expense{
		ExpenseID:        "exp-1",
		PaidByApartment:  "G1",
		OwedByApartments: []string{"G1", "F1"},
		PaidByApartments: []string{"G1", "F1"},
	}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, "exp-1").Return(expense, nil).Once()

	updated, err := suite.service.MarkApartmentPaid(ctx, "exp-1", "F1", uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, services.ErrAlreadySettled)
}

func (suite *ExpenseServiceTestSuite) TestGetExpenseByID_NotFound() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	expense, err := suite.service.GetExpenseByID(ctx, "missing")

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_DefaultsLimit() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("ListExpenses", ctx, 20, (*string)(nil)).Return([]domain.Expense{}, nil, nil).Once()

	resp, err := suite.service.ListExpenses(ctx, dto.ListExpensesParams{})

	suite.Require().NoError(err)
	suite.Empty(resp.Expenses)
	suite.Nil(resp.NextToken)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_NotFound() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteExpense(ctx, "missing", uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "DeleteExpense", mock.Anything, mock.Anything)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
