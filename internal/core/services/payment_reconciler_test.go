package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	"github.com/deepak-sekarbabu-coder/apargo/internal/core/services"
)

func expensePayment(apartmentID, monthYear string, amount int64, status domain.PaymentStatus) *domain.Payment {
	return &domain.Payment{
		PaymentID:   "pay-1",
		ApartmentID: apartmentID,
		Category:    domain.PaymentExpense,
		Amount:      decimal.NewFromInt(amount),
		Status:      status,
		MonthYear:   monthYear,
	}
}

func incomePayment(apartmentID, monthYear string, amount int64, status domain.PaymentStatus) *domain.Payment {
	p := expensePayment(apartmentID, monthYear, amount, status)
	p.Category = domain.PaymentIncome
	return p
}

func TestExpenseDeltas_ApprovalEntersLedger(t *testing.T) {
	previous := expensePayment("G1", "2025-08", 400, domain.PaymentPending)
	next := expensePayment("G1", "2025-08", 400, domain.PaymentApproved)

	deltas := services.ComputeApprovedExpensePaymentDeltas(previous, next)

	require.Len(t, deltas, 1)
	assert.Equal(t, "G1", deltas[0].ApartmentID)
	assert.Equal(t, "2025-08", deltas[0].MonthYear)
	assert.True(t, deltas[0].TotalExpensesDelta.Equal(decimal.NewFromInt(400)))
	assert.True(t, deltas[0].TotalIncomeDelta.IsZero())
}

func TestExpenseDeltas_RevocationLeavesLedger(t *testing.T) {
	previous := expensePayment("G1", "2025-08", 400, domain.PaymentApproved)
	next := expensePayment("G1", "2025-08", 400, domain.PaymentRejected)

	deltas := services.ComputeApprovedExpensePaymentDeltas(previous, next)

	require.Len(t, deltas, 1)
	assert.True(t, deltas[0].TotalExpensesDelta.Equal(decimal.NewFromInt(-400)))
}

func TestExpenseDeltas_AmountEditEmitsNetDifference(t *testing.T) {
	previous := expensePayment("G1", "2025-08", 400, domain.PaymentApproved)
	next := expensePayment("G1", "2025-08", 250, domain.PaymentApproved)

	deltas := services.ComputeApprovedExpensePaymentDeltas(previous, next)

	// A single net adjustment, not a -400/+250 pair.
	require.Len(t, deltas, 1)
	assert.True(t, deltas[0].TotalExpensesDelta.Equal(decimal.NewFromInt(-150)),
		"expected net -150, got %s", deltas[0].TotalExpensesDelta)
}

func TestExpenseDeltas_NoChangeEmitsNothing(t *testing.T) {
	previous := expensePayment("G1", "2025-08", 400, domain.PaymentApproved)
	next := expensePayment("G1", "2025-08", 400, domain.PaymentApproved)

	assert.Nil(t, services.ComputeApprovedExpensePaymentDeltas(previous, next))
}

func TestExpenseDeltas_BucketMoveEmitsPair(t *testing.T) {
	previous := expensePayment("G1", "2025-08", 400, domain.PaymentApproved)
	next := expensePayment("G1", "2025-09", 400, domain.PaymentApproved)

	deltas := services.ComputeApprovedExpensePaymentDeltas(previous, next)

	require.Len(t, deltas, 2)
	assert.Equal(t, "2025-08", deltas[0].MonthYear)
	assert.True(t, deltas[0].TotalExpensesDelta.Equal(decimal.NewFromInt(-400)))
	assert.Equal(t, "2025-09", deltas[1].MonthYear)
	assert.True(t, deltas[1].TotalExpensesDelta.Equal(decimal.NewFromInt(400)))
}

func TestExpenseDeltas_ApartmentMoveEmitsPair(t *testing.T) {
	previous := expensePayment("G1", "2025-08", 400, domain.PaymentApproved)
	next := expensePayment("F1", "2025-08", 300, domain.PaymentApproved)

	deltas := services.ComputeApprovedExpensePaymentDeltas(previous, next)

	require.Len(t, deltas, 2)
	assert.Equal(t, "G1", deltas[0].ApartmentID)
	assert.True(t, deltas[0].TotalExpensesDelta.Equal(decimal.NewFromInt(-400)))
	assert.Equal(t, "F1", deltas[1].ApartmentID)
	assert.True(t, deltas[1].TotalExpensesDelta.Equal(decimal.NewFromInt(300)))
}

func TestExpenseDeltas_CreationAndDeletion(t *testing.T) {
	// Creation directly in the approved state enters the ledger.
	created := expensePayment("G1", "2025-08", 120, domain.PaymentApproved)
	deltas := services.ComputeApprovedExpensePaymentDeltas(nil, created)
	require.Len(t, deltas, 1)
	assert.True(t, deltas[0].TotalExpensesDelta.Equal(decimal.NewFromInt(120)))

	// Creation in a non-approved state touches nothing.
	pending := expensePayment("G1", "2025-08", 120, domain.PaymentPending)
	assert.Nil(t, services.ComputeApprovedExpensePaymentDeltas(nil, pending))

	// Deleting an approved payment backs its amount out.
	deltas = services.ComputeApprovedExpensePaymentDeltas(created, nil)
	require.Len(t, deltas, 1)
	assert.True(t, deltas[0].TotalExpensesDelta.Equal(decimal.NewFromInt(-120)))

	// Deleting a pending payment touches nothing.
	assert.Nil(t, services.ComputeApprovedExpensePaymentDeltas(pending, nil))
}

func TestExpenseDeltas_TransitionsBetweenNonApprovedStates(t *testing.T) {
	previous := expensePayment("G1", "2025-08", 400, domain.PaymentPending)
	next := expensePayment("G1", "2025-08", 400, domain.PaymentPaid)

	assert.Nil(t, services.ComputeApprovedExpensePaymentDeltas(previous, next))
}

func TestExpenseDeltas_IgnoresIncomeCategory(t *testing.T) {
	previous := incomePayment("G1", "2025-08", 400, domain.PaymentPending)
	next := incomePayment("G1", "2025-08", 400, domain.PaymentApproved)

	assert.Nil(t, services.ComputeApprovedExpensePaymentDeltas(previous, next))
}

func TestIncomeDeltas_MirrorIntoIncomeColumn(t *testing.T) {
	previous := incomePayment("G1", "2025-08", 400, domain.PaymentPending)
	next := incomePayment("G1", "2025-08", 400, domain.PaymentApproved)

	deltas := services.ComputeApprovedIncomePaymentDeltas(previous, next)

	require.Len(t, deltas, 1)
	assert.True(t, deltas[0].TotalIncomeDelta.Equal(decimal.NewFromInt(400)))
	assert.True(t, deltas[0].TotalExpensesDelta.IsZero())
}

func TestIncomeDeltas_IgnoresExpenseCategory(t *testing.T) {
	previous := expensePayment("G1", "2025-08", 400, domain.PaymentApproved)

	assert.Nil(t, services.ComputeApprovedIncomePaymentDeltas(previous, nil))
}

func TestDeltas_CategorySwitchBacksOutOldColumn(t *testing.T) {
	// An approved payment recategorized from EXPENSE to INCOME leaves the
	// expense column and enters the income column.
	previous := expensePayment("G1", "2025-08", 400, domain.PaymentApproved)
	next := incomePayment("G1", "2025-08", 400, domain.PaymentApproved)

	expenseDeltas := services.ComputeApprovedExpensePaymentDeltas(previous, next)
	require.Len(t, expenseDeltas, 1)
	assert.True(t, expenseDeltas[0].TotalExpensesDelta.Equal(decimal.NewFromInt(-400)))

	incomeDeltas := services.ComputeApprovedIncomePaymentDeltas(previous, next)
	require.Len(t, incomeDeltas, 1)
	assert.True(t, incomeDeltas[0].TotalIncomeDelta.Equal(decimal.NewFromInt(400)))
}
