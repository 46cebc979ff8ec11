package services_test

import (
	"context"
	"testing"

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

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByMonth(ctx context.Context, monthYear string, status *domain.PaymentStatus) ([]domain.Payment, error) {
	args := m.Called(ctx, monthYear, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, deltas []domain.BalanceDelta) error {
	args := m.Called(ctx, payment, deltas)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment, deltas []domain.BalanceDelta) error {
	args := m.Called(ctx, payment, deltas)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID string, updatedByUserID string, deltas []domain.BalanceDelta) error {
	args := m.Called(ctx, paymentID, updatedByUserID, deltas)
	return args.Error(0)
}

// --- Test Suite ---
type PaymentServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPaymentRepository
	service  portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPaymentRepository)
	suite.service = services.NewPaymentService(suite.mockRepo)
}

func statusPtr(s domain.PaymentStatus) *domain.PaymentStatus { return &s }

// --- Test Cases ---

func (suite *PaymentServiceTestSuite) TestCreatePayment_DefaultsToPending() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		PayerID:     uuid.NewString(),
		ApartmentID: "G1",
		Category:    domain.PaymentExpense,
		Amount:      decimal.NewFromInt(400),
		MonthYear:   "2025-08",
	}

	// A pending payment must not touch the ledger.
	suite.mockRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Status == domain.PaymentPending && p.Amount.Equal(decimal.NewFromInt(400))
	}), mock.MatchedBy(func(deltas []domain.BalanceDelta) bool {
		return len(deltas) == 0
	})).Return(nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentPending, payment.Status)
	suite.NotEmpty(payment.PaymentID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_ApprovedEntersLedger() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		PayerID:     uuid.NewString(),
		ApartmentID: "G1",
		Category:    domain.PaymentExpense,
		Amount:      decimal.NewFromInt(400),
		Status:      domain.PaymentApproved,
		MonthYear:   "2025-08",
	}

	suite.mockRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.Payment"), mock.MatchedBy(func(deltas []domain.BalanceDelta) bool {
		return len(deltas) == 1 &&
			deltas[0].ApartmentID == "G1" &&
			deltas[0].MonthYear == "2025-08" &&
			deltas[0].TotalExpensesDelta.Equal(decimal.NewFromInt(400)) &&
			deltas[0].TotalIncomeDelta.IsZero()
	})).Return(nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentApproved, payment.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		PayerID:     uuid.NewString(),
		ApartmentID: "G1",
		Category:    domain.PaymentExpense,
		Amount:      decimal.Zero,
		MonthYear:   "2025-08",
	}

	payment, err := suite.service.CreatePayment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, services.ErrAmountNotPositive)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_ApprovalPassesDelta() {
	ctx := context.Background()
	userID := uuid.NewString()
	previous := &domain.Payment{
		PaymentID:   "pay-1",
		ApartmentID: "G1",
		Category:    domain.PaymentExpense,
		Amount:      decimal.NewFromInt(400),
		Status:      domain.PaymentPending,
		MonthYear:   "2025-08",
	}

	suite.mockRepo.On("FindPaymentByID", ctx, "pay-1").Return(previous, nil).Once()
	suite.mockRepo.On("UpdatePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Status == domain.PaymentApproved && p.LastUpdatedBy == userID
	}), mock.MatchedBy(func(deltas []domain.BalanceDelta) bool {
		return len(deltas) == 1 && deltas[0].TotalExpensesDelta.Equal(decimal.NewFromInt(400))
	})).Return(nil).Once()

	updated, err := suite.service.UpdatePayment(ctx, "pay-1", dto.UpdatePaymentRequest{
		Status: statusPtr(domain.PaymentApproved),
	}, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentApproved, updated.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_AmountEditOnApproved() {
	ctx := context.Background()
	previous := &domain.Payment{
		PaymentID:   "pay-1",
		ApartmentID: "G1",
		Category:    domain.PaymentExpense,
		Amount:      decimal.NewFromInt(400),
		Status:      domain.PaymentApproved,
		MonthYear:   "2025-08",
	}
	newAmount := decimal.NewFromInt(250)

	suite.mockRepo.On("FindPaymentByID", ctx, "pay-1").Return(previous, nil).Once()
	suite.mockRepo.On("UpdatePayment", ctx, mock.AnythingOfType("domain.Payment"), mock.MatchedBy(func(deltas []domain.BalanceDelta) bool {
		return len(deltas) == 1 && deltas[0].TotalExpensesDelta.Equal(decimal.NewFromInt(-150))
	})).Return(nil).Once()

	updated, err := suite.service.UpdatePayment(ctx, "pay-1", dto.UpdatePaymentRequest{
		Amount: &newAmount,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(newAmount))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_NoFieldsIsNoOp() {
	ctx := context.Background()
	previous := &domain.Payment{
		PaymentID:   "pay-1",
		ApartmentID: "G1",
		Category:    domain.PaymentExpense,
		Amount:      decimal.NewFromInt(400),
		Status:      domain.PaymentApproved,
		MonthYear:   "2025-08",
	}

	suite.mockRepo.On("FindPaymentByID", ctx, "pay-1").Return(previous, nil).Once()

	updated, err := suite.service.UpdatePayment(ctx, "pay-1", dto.UpdatePaymentRequest{}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(previous, updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdatePayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindPaymentByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdatePayment(ctx, "missing", dto.UpdatePaymentRequest{
		Status: statusPtr(domain.PaymentApproved),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_ApprovedBacksOut() {
	ctx := context.Background()
	userID := uuid.NewString()
	previous := &domain.Payment{
		PaymentID:   "pay-1",
		ApartmentID: "G1",
		Category:    domain.PaymentIncome,
		Amount:      decimal.NewFromInt(2000),
		Status:      domain.PaymentApproved,
		MonthYear:   "2025-08",
	}

	suite.mockRepo.On("FindPaymentByID", ctx, "pay-1").Return(previous, nil).Once()
	suite.mockRepo.On("DeletePayment", ctx, "pay-1", userID, mock.MatchedBy(func(deltas []domain.BalanceDelta) bool {
		return len(deltas) == 1 && deltas[0].TotalIncomeDelta.Equal(decimal.NewFromInt(-2000))
	})).Return(nil).Once()

	err := suite.service.DeletePayment(ctx, "pay-1", userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_PendingTouchesNothing() {
	ctx := context.Background()
	userID := uuid.NewString()
	previous := &domain.Payment{
		PaymentID:   "pay-2",
		ApartmentID: "G1",
		Category:    domain.PaymentExpense,
		Amount:      decimal.NewFromInt(100),
		Status:      domain.PaymentPending,
		MonthYear:   "2025-08",
	}

	suite.mockRepo.On("FindPaymentByID", ctx, "pay-2").Return(previous, nil).Once()
	suite.mockRepo.On("DeletePayment", ctx, "pay-2", userID, mock.MatchedBy(func(deltas []domain.BalanceDelta) bool {
		return len(deltas) == 0
	})).Return(nil).Once()

	err := suite.service.DeletePayment(ctx, "pay-2", userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestListPayments_StatusFilter() {
	ctx := context.Background()
	status := "APPROVED"
	stored := []domain.Payment{{PaymentID: "pay-1", Status: domain.PaymentApproved, MonthYear: "2025-08"}}

	suite.mockRepo.On("ListPaymentsByMonth", ctx, "2025-08", mock.MatchedBy(func(s *domain.PaymentStatus) bool {
		return s != nil && *s == domain.PaymentApproved
	})).Return(stored, nil).Once()

	payments, err := suite.service.ListPayments(ctx, dto.ListPaymentsParams{MonthYear: "2025-08", Status: &status})

	suite.Require().NoError(err)
	suite.Len(payments, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
