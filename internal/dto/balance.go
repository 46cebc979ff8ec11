package dto

import (
	"github.com/shopspring/decimal"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
)

// ApartmentBalanceResponse defines the derived balance data returned for one
// apartment: its net position and pairwise breakdown.
type ApartmentBalanceResponse struct {
	ApartmentID string                     `json:"apartmentID"`
	Name        string                     `json:"name"`
	Balance     decimal.Decimal            `json:"balance"`
	Owes        map[string]decimal.Decimal `json:"owes"`
	IsOwed      map[string]decimal.Decimal `json:"isOwed"`
}

// ListBalancesResponse wraps the building-wide balance sheet view.
type ListBalancesResponse struct {
	Balances []ApartmentBalanceResponse `json:"balances"`
}

// UnpaidBillsResponse carries the dashboard's unpaid-shares counter.
type UnpaidBillsResponse struct {
	UnpaidBills int `json:"unpaidBills"`
}

// MonthlyBalanceResponse defines the data returned for one ledger bucket.
type MonthlyBalanceResponse struct {
	ApartmentID   string          `json:"apartmentID"`
	MonthYear     string          `json:"monthYear"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
}

// ListMonthlyBalancesResponse wraps a month's ledger buckets.
type ListMonthlyBalancesResponse struct {
	MonthYear string                   `json:"monthYear"`
	Balances  []MonthlyBalanceResponse `json:"balances"`
}

// RebuildBalancesRequest names the ledger month to recompute from scratch.
type RebuildBalancesRequest struct {
	MonthYear string `json:"monthYear" binding:"required,monthyear"`
}

// ToApartmentBalanceResponse converts one aggregator result entry to its DTO.
func ToApartmentBalanceResponse(apartmentID string, b domain.ApartmentBalance) ApartmentBalanceResponse {
	return ApartmentBalanceResponse{
		ApartmentID: apartmentID,
		Name:        b.Name,
		Balance:     b.Balance,
		Owes:        b.Owes,
		IsOwed:      b.IsOwed,
	}
}

// ToMonthlyBalanceResponse converts a domain.MonthlyBalance to its DTO.
func ToMonthlyBalanceResponse(mb *domain.MonthlyBalance) MonthlyBalanceResponse {
	return MonthlyBalanceResponse{
		ApartmentID:   mb.ApartmentID,
		MonthYear:     mb.MonthYear,
		TotalIncome:   mb.TotalIncome,
		TotalExpenses: mb.TotalExpenses,
	}
}
