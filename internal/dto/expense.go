package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
)

// CreateExpenseRequest defines the payload for submitting an expense. The
// debt-bearing fields are computed server-side by the splitter, never
// accepted from the client.
type CreateExpenseRequest struct {
	Description     string          `json:"description" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Date            time.Time       `json:"date" binding:"required"`
	CategoryID      string          `json:"categoryID" binding:"required"`
	PaidByApartment string          `json:"paidByApartment" binding:"required"`
}

// SettleExpenseRequest marks one apartment's share of an expense as paid.
type SettleExpenseRequest struct {
	ApartmentID string `json:"apartmentID" binding:"required"`
}

// ListExpensesParams holds query parameters for listing expenses.
type ListExpensesParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID         string          `json:"expenseID"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	Date              time.Time       `json:"date"`
	CategoryID        string          `json:"categoryID"`
	PaidByApartment   string          `json:"paidByApartment"`
	OwedByApartments  []string        `json:"owedByApartments"`
	PerApartmentShare decimal.Decimal `json:"perApartmentShare"`
	PaidByApartments  []string        `json:"paidByApartments"`
	CreatedAt         time.Time       `json:"createdAt"`
	CreatedBy         string          `json:"createdBy"`
}

// ListExpensesResponse wraps a page of expenses with the pagination token.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:         e.ExpenseID,
		Description:       e.Description,
		Amount:            e.Amount,
		Date:              e.Date,
		CategoryID:        e.CategoryID,
		PaidByApartment:   e.PaidByApartment,
		OwedByApartments:  e.OwedByApartments,
		PerApartmentShare: e.PerApartmentShare,
		PaidByApartments:  e.PaidByApartments,
		CreatedAt:         e.CreatedAt,
		CreatedBy:         e.CreatedBy,
	}
}

// ToExpenseResponses converts a slice of domain.Expense to []ExpenseResponse.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}
