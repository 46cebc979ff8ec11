package services

import (
	"github.com/shopspring/decimal"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
)

// The payment reconciler translates a payment document transition (previous
// vs next state) into the minimal set of signed deltas to apply to the
// monthly balance-sheet ledger, so the ledger stays consistent incrementally
// instead of being rebuilt from all payments on every change.
//
// A nil previous models creation, a nil next models deletion. Only APPROVED
// payments are reflected in the ledger; the reconciler never reads or writes
// the ledger itself and performs no format validation.

// ComputeApprovedExpensePaymentDeltas computes ledger deltas for the expense
// side of the balance sheet. Payments whose category is not EXPENSE never
// contribute.
func ComputeApprovedExpensePaymentDeltas(previous, next *domain.Payment) []domain.BalanceDelta {
	return computeApprovedDeltas(previous, next, domain.PaymentExpense, func(apartmentID, monthYear string, amount decimal.Decimal) domain.BalanceDelta {
		return domain.BalanceDelta{
			ApartmentID:        apartmentID,
			MonthYear:          monthYear,
			TotalExpensesDelta: amount,
		}
	})
}

// ComputeApprovedIncomePaymentDeltas mirrors the expense reconciler for
// INCOME-category payments, emitting deltas against the income column.
func ComputeApprovedIncomePaymentDeltas(previous, next *domain.Payment) []domain.BalanceDelta {
	return computeApprovedDeltas(previous, next, domain.PaymentIncome, func(apartmentID, monthYear string, amount decimal.Decimal) domain.BalanceDelta {
		return domain.BalanceDelta{
			ApartmentID:      apartmentID,
			MonthYear:        monthYear,
			TotalIncomeDelta: amount,
		}
	})
}

// computeApprovedDeltas implements the shared status/amount/location state
// machine. makeDelta decides which ledger column the signed amount lands in.
func computeApprovedDeltas(previous, next *domain.Payment, category domain.PaymentCategory, makeDelta func(apartmentID, monthYear string, amount decimal.Decimal) domain.BalanceDelta) []domain.BalanceDelta {
	wasInLedger := previous != nil && previous.Category == category && previous.IsApproved()
	isInLedger := next != nil && next.Category == category && next.IsApproved()

	switch {
	case !wasInLedger && !isInLedger:
		return nil

	case !wasInLedger:
		// Entering the ledger: pending/rejected/cancelled -> approved,
		// or a payment created directly in the approved state.
		return []domain.BalanceDelta{
			makeDelta(next.ApartmentID, next.MonthYear, next.Amount),
		}

	case !isInLedger:
		// Leaving the ledger: approved -> any other state, or deletion.
		return []domain.BalanceDelta{
			makeDelta(previous.ApartmentID, previous.MonthYear, previous.Amount.Neg()),
		}

	default:
		// Approved before and after.
		if previous.ApartmentID == next.ApartmentID && previous.MonthYear == next.MonthYear {
			diff := next.Amount.Sub(previous.Amount)
			if diff.IsZero() {
				return nil
			}
			// Net change only, not a remove/re-add pair.
			return []domain.BalanceDelta{
				makeDelta(next.ApartmentID, next.MonthYear, diff),
			}
		}
		// The record moved buckets: back out of the old key, enter the new.
		return []domain.BalanceDelta{
			makeDelta(previous.ApartmentID, previous.MonthYear, previous.Amount.Neg()),
			makeDelta(next.ApartmentID, next.MonthYear, next.Amount),
		}
	}
}
