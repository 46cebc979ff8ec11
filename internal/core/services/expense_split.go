package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/deepak-sekarbabu-coder/apargo/internal/apperrors"
	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
)

// legacyNoSplitNames covers historical expense records created before the
// NoSplit flag existed: their category ID was the category name itself.
// A lookup miss that matches one of these names is treated as no-split.
var legacyNoSplitNames = map[string]struct{}{
	"maintenance": {},
	"personal":    {},
}

// SplitExpense decides whether a new expense is shared across apartments or
// borne solely by the payer, and produces the debt-bearing fields to attach
// to the expense record. It is pure: the output is fully determined by its
// arguments.
//
// In the split case every apartment owes a share, payer included; the
// payer's own share is pre-marked settled. In the no-split case (category
// flagged NoSplit, or an unknown category matching a legacy no-split name)
// nobody owes anything and the payer carries the full amount.
func SplitExpense(amount decimal.Decimal, categoryID string, payingApartmentID string, apartments []domain.Apartment, categories []domain.Category) (domain.ExpenseSplit, error) {
	if len(apartments) == 0 {
		// Recoverable: the roster has not loaded yet, the caller retries.
		return domain.ExpenseSplit{}, apperrors.ErrApartmentDataNotReady
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ExpenseSplit{}, fmt.Errorf("%w: expense amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}

	payerKnown := false
	for _, apt := range apartments {
		if apt.ApartmentID == payingApartmentID {
			payerKnown = true
			break
		}
	}
	if !payerKnown {
		return domain.ExpenseSplit{}, fmt.Errorf("%w: paying apartment %s is not in the roster", apperrors.ErrValidation, payingApartmentID)
	}

	if isNoSplitCategory(categoryID, categories) {
		return domain.ExpenseSplit{
			PaidByApartment:   payingApartmentID,
			OwedByApartments:  []string{},
			PerApartmentShare: decimal.Zero,
			PaidByApartments:  []string{},
		}, nil
	}

	owedBy := make([]string, len(apartments))
	for i, apt := range apartments {
		owedBy[i] = apt.ApartmentID
	}

	return domain.ExpenseSplit{
		PaidByApartment:   payingApartmentID,
		OwedByApartments:  owedBy,
		PerApartmentShare: amount.Div(decimal.NewFromInt(int64(len(owedBy)))),
		PaidByApartments:  []string{payingApartmentID},
	}, nil
}

// isNoSplitCategory resolves the split policy for a category ID. A category
// found in the list answers via its NoSplit flag; an unknown ID falls back
// to the legacy name match.
func isNoSplitCategory(categoryID string, categories []domain.Category) bool {
	for _, cat := range categories {
		if cat.CategoryID == categoryID {
			return cat.NoSplit
		}
	}
	_, legacy := legacyNoSplitNames[strings.ToLower(categoryID)]
	return legacy
}
