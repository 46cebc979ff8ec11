package services

import (
	"github.com/shopspring/decimal"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
)

// newApartmentBalances initializes a zero balance record for every apartment.
func newApartmentBalances(apartments []domain.Apartment) map[string]domain.ApartmentBalance {
	balances := make(map[string]domain.ApartmentBalance, len(apartments))
	for _, apt := range apartments {
		balances[apt.ApartmentID] = domain.ApartmentBalance{
			Name:    apt.Name,
			Balance: decimal.Zero,
			Owes:    make(map[string]decimal.Decimal),
			IsOwed:  make(map[string]decimal.Decimal),
		}
	}
	return balances
}

// ComputeApartmentBalances computes every apartment's net balance and its
// owed-to/owed-by breakdown against every other apartment, by scanning the
// full expense history once per apartment. It is a total function: malformed
// expenses are accepted as given, never rejected.
//
// Kept alongside ComputeApartmentBalancesOptimized as the reference
// implementation; both must produce identical results.
func ComputeApartmentBalances(expenses []domain.Expense, apartments []domain.Apartment) map[string]domain.ApartmentBalance {
	balances := newApartmentBalances(apartments)

	for _, apt := range apartments {
		bal := balances[apt.ApartmentID]
		for i := range expenses {
			exp := &expenses[i]
			if len(exp.OwedByApartments) == 0 {
				continue
			}
			// Debts this apartment owes to the payer of exp.
			if exp.PaidByApartment != apt.ApartmentID && exp.OwedBy(apt.ApartmentID) && !exp.IsSettledBy(apt.ApartmentID) {
				bal.Owes[exp.PaidByApartment] = bal.Owes[exp.PaidByApartment].Add(exp.PerApartmentShare)
			}
			// Debts other apartments owe this apartment as the payer.
			if exp.PaidByApartment == apt.ApartmentID {
				for _, debtor := range exp.OwedByApartments {
					if debtor == apt.ApartmentID || exp.IsSettledBy(debtor) {
						continue
					}
					bal.IsOwed[debtor] = bal.IsOwed[debtor].Add(exp.PerApartmentShare)
				}
			}
		}
		bal.Balance = netBalance(bal)
		balances[apt.ApartmentID] = bal
	}

	return balances
}

// ComputeApartmentBalancesOptimized produces the same result as
// ComputeApartmentBalances with a single pass over the expense history:
// unpaid shares are first accumulated into a (debtor, creditor) pair map,
// then written into the per-apartment records. The pairwise netting means
// Owes[x] reflects the apartment's total debt to x across all unpaid
// expenses, not one entry per expense.
func ComputeApartmentBalancesOptimized(expenses []domain.Expense, apartments []domain.Apartment) map[string]domain.ApartmentBalance {
	balances := newApartmentBalances(apartments)

	// pairDebts[debtor][creditor] = total unpaid share
	pairDebts := make(map[string]map[string]decimal.Decimal)

	for i := range expenses {
		exp := &expenses[i]
		if len(exp.OwedByApartments) == 0 {
			continue
		}
		for _, debtor := range exp.OwedByApartments {
			// Self-debt is never recorded: an expense whose sole owing
			// apartment is its own payer contributes zero net balance.
			if debtor == exp.PaidByApartment || exp.IsSettledBy(debtor) {
				continue
			}
			if pairDebts[debtor] == nil {
				pairDebts[debtor] = make(map[string]decimal.Decimal)
			}
			pairDebts[debtor][exp.PaidByApartment] = pairDebts[debtor][exp.PaidByApartment].Add(exp.PerApartmentShare)
		}
	}

	for debtor, creditors := range pairDebts {
		for creditor, amount := range creditors {
			if debtorBal, ok := balances[debtor]; ok {
				debtorBal.Owes[creditor] = debtorBal.Owes[creditor].Add(amount)
				balances[debtor] = debtorBal
			}
			if creditorBal, ok := balances[creditor]; ok {
				creditorBal.IsOwed[debtor] = creditorBal.IsOwed[debtor].Add(amount)
				balances[creditor] = creditorBal
			}
		}
	}

	for id, bal := range balances {
		bal.Balance = netBalance(bal)
		balances[id] = bal
	}

	return balances
}

// netBalance computes sum(IsOwed) - sum(Owes) for one apartment record.
func netBalance(bal domain.ApartmentBalance) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range bal.IsOwed {
		total = total.Add(amount)
	}
	for _, amount := range bal.Owes {
		total = total.Sub(amount)
	}
	return total
}

// CalculateUnpaidBillsCount returns the total number of (expense, owing
// apartment) pairs where the owing apartment is not the payer and has not
// yet settled its share. It counts pairs, not amounts, and matches the
// pairwise semantics of the balance computation exactly.
func CalculateUnpaidBillsCount(expenses []domain.Expense) int {
	count := 0
	for i := range expenses {
		exp := &expenses[i]
		for _, debtor := range exp.OwedByApartments {
			if debtor == exp.PaidByApartment || exp.IsSettledBy(debtor) {
				continue
			}
			count++
		}
	}
	return count
}
