package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepak-sekarbabu-coder/apargo/internal/apperrors"
	portssvc "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/services"
	"github.com/deepak-sekarbabu-coder/apargo/internal/core/services"
	"github.com/deepak-sekarbabu-coder/apargo/internal/dto"
	"github.com/deepak-sekarbabu-coder/apargo/internal/middleware"
)

// expenseHandler handles HTTP requests related to expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

// registerExpenseRoutes registers routes related to expenses.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:id", h.getExpense)
		expenses.POST("/:id/settlements", h.settleExpense)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

// createExpense godoc
// @Summary Create a new expense
// @Description Submits an expense; the split across the apartment roster is computed server-side
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 503 {object} ErrorResponse "Apartment roster not loaded yet"
// @Failure 500 {object} ErrorResponse "Failed to create expense"
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger.Info("Received request to create expense",
		slog.String("category_id", req.CategoryID),
		slog.String("paid_by_apartment", req.PaidByApartment),
	)

	newExpense, err := h.expenseService.CreateExpense(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrApartmentDataNotReady) {
			// Recoverable: the roster has not been loaded yet, the client
			// should retry rather than treat the expense as rejected.
			logger.Warn("Apartment roster not ready for expense creation")
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Apartment data not ready, retry shortly"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating expense", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create expense in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create expense"})
		}
		return
	}

	logger.Info("Expense created successfully", slog.String("expense_id", newExpense.ExpenseID))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(newExpense))
}

// getExpense godoc
// @Summary Get an expense by ID
// @Description Retrieves details for a specific expense by its ID
// @Tags expenses
// @Produce  json
// @Param   id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve expense"
// @Security BearerAuth
// @Router /expenses/{id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("id")

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Expense not found", slog.String("expense_id", expenseID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Expense not found"})
		} else {
			logger.Error("Failed to get expense from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve expense"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List expenses
// @Description Retrieves a paginated list of expenses ordered by date
// @Tags expenses
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list expenses"
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListExpenses", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.expenseService.ListExpenses(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid pagination token for ListExpenses", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to list expenses from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list expenses"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// settleExpense godoc
// @Summary Settle an apartment's share
// @Description Marks one apartment's share of an expense as paid
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Expense ID"
// @Param   settlement body dto.SettleExpenseRequest true "Settling apartment"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse "Apartment does not owe a share"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Failure 409 {object} ErrorResponse "Share already settled"
// @Failure 500 {object} ErrorResponse "Failed to settle expense"
// @Security BearerAuth
// @Router /expenses/{id}/settlements [post]
func (h *expenseHandler) settleExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("id")

	var req dto.SettleExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SettleExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger.Info("Received request to settle expense share",
		slog.String("expense_id", expenseID),
		slog.String("apartment_id", req.ApartmentID),
	)

	expense, err := h.expenseService.MarkApartmentPaid(c.Request.Context(), expenseID, req.ApartmentID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Expense not found for settlement", slog.String("expense_id", expenseID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Expense not found"})
		} else if errors.Is(err, services.ErrNotOwingApartment) {
			logger.Warn("Apartment does not owe a share", slog.String("apartment_id", req.ApartmentID))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, services.ErrAlreadySettled) || errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Share already settled", slog.String("apartment_id", req.ApartmentID))
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Apartment has already settled its share"})
		} else {
			logger.Error("Failed to settle expense in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to settle expense"})
		}
		return
	}

	logger.Info("Expense share settled", slog.String("expense_id", expenseID), slog.String("apartment_id", req.ApartmentID))
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Description Removes an expense record
// @Tags expenses
// @Produce  json
// @Param   id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Failure 500 {object} ErrorResponse "Failed to delete expense"
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("id")

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), expenseID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Expense not found for delete", slog.String("expense_id", expenseID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Expense not found"})
		} else {
			logger.Error("Failed to delete expense in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete expense"})
		}
		return
	}

	logger.Info("Expense deleted", slog.String("expense_id", expenseID))
	c.Status(http.StatusNoContent)
}
