package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak-sekarbabu-coder/apargo/internal/apperrors"
	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	"github.com/deepak-sekarbabu-coder/apargo/internal/core/services"
)

func testRoster(ids ...string) []domain.Apartment {
	apartments := make([]domain.Apartment, len(ids))
	for i, id := range ids {
		apartments[i] = domain.Apartment{ApartmentID: id, Name: id}
	}
	return apartments
}

func TestSplitExpense_SharedAcrossRoster(t *testing.T) {
	apartments := testRoster("G1", "F1", "F2", "S1")
	categories := []domain.Category{{CategoryID: "cat-utilities", Name: "Utilities", NoSplit: false}}

	split, err := services.SplitExpense(decimal.NewFromInt(100), "cat-utilities", "F1", apartments, categories)
	require.NoError(t, err)

	assert.Equal(t, "F1", split.PaidByApartment)
	assert.Equal(t, []string{"G1", "F1", "F2", "S1"}, split.OwedByApartments, "every apartment owes a share, payer included")
	assert.True(t, split.PerApartmentShare.Equal(decimal.NewFromInt(25)), "share should be amount divided by roster size, got %s", split.PerApartmentShare)
	assert.Equal(t, []string{"F1"}, split.PaidByApartments, "payer's own share is settled at creation")
}

func TestSplitExpense_ShareTimesRosterEqualsAmount(t *testing.T) {
	apartments := testRoster("G1", "F1", "F2")
	categories := []domain.Category{{CategoryID: "cat-water", Name: "Water"}}
	amount := decimal.NewFromInt(100)

	split, err := services.SplitExpense(amount, "cat-water", "G1", apartments, categories)
	require.NoError(t, err)

	total := split.PerApartmentShare.Mul(decimal.NewFromInt(int64(len(split.OwedByApartments))))
	assert.True(t, total.Sub(amount).Abs().LessThan(decimal.New(1, -10)),
		"shares should reassemble to the original amount, got %s", total)
}

func TestSplitExpense_NoSplitCategoryFlag(t *testing.T) {
	apartments := testRoster("G1", "F1")
	categories := []domain.Category{{CategoryID: "cat-personal", Name: "Groceries", NoSplit: true}}

	split, err := services.SplitExpense(decimal.NewFromInt(80), "cat-personal", "G1", apartments, categories)
	require.NoError(t, err)

	assert.Empty(t, split.OwedByApartments, "no-split expense creates no debts")
	assert.Empty(t, split.PaidByApartments)
	assert.True(t, split.PerApartmentShare.IsZero())
	assert.Equal(t, "G1", split.PaidByApartment)
}

func TestSplitExpense_LegacyNameFallback(t *testing.T) {
	apartments := testRoster("G1", "F1")

	// Historical records stored the category name where the ID now lives.
	// An unknown ID matching a legacy no-split name is treated as no-split.
	split, err := services.SplitExpense(decimal.NewFromInt(50), "Maintenance", "G1", apartments, nil)
	require.NoError(t, err)
	assert.Empty(t, split.OwedByApartments)

	// An unknown ID that matches no legacy name splits as usual.
	split, err = services.SplitExpense(decimal.NewFromInt(50), "Utilities", "G1", apartments, nil)
	require.NoError(t, err)
	assert.Len(t, split.OwedByApartments, 2)
}

func TestSplitExpense_FlagWinsOverLegacyName(t *testing.T) {
	apartments := testRoster("G1", "F1")
	// A known category whose name collides with a legacy no-split name
	// answers via its flag, not the name.
	categories := []domain.Category{{CategoryID: "cat-maint", Name: "Maintenance", NoSplit: false}}

	split, err := services.SplitExpense(decimal.NewFromInt(60), "cat-maint", "F1", apartments, categories)
	require.NoError(t, err)
	assert.Len(t, split.OwedByApartments, 2, "known category with NoSplit=false must split")
}

func TestSplitExpense_EmptyRoster(t *testing.T) {
	_, err := services.SplitExpense(decimal.NewFromInt(100), "cat-utilities", "G1", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrApartmentDataNotReady, "empty roster is recoverable, not a validation failure")
}

func TestSplitExpense_NonPositiveAmount(t *testing.T) {
	apartments := testRoster("G1", "F1")

	_, err := services.SplitExpense(decimal.Zero, "cat-utilities", "G1", apartments, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = services.SplitExpense(decimal.NewFromInt(-10), "cat-utilities", "G1", apartments, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSplitExpense_UnknownPayer(t *testing.T) {
	apartments := testRoster("G1", "F1")

	_, err := services.SplitExpense(decimal.NewFromInt(100), "cat-utilities", "Z9", apartments, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
