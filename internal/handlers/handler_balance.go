package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/deepak-sekarbabu-coder/apargo/internal/apperrors"
	portssvc "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/services"
	"github.com/deepak-sekarbabu-coder/apargo/internal/dto"
	"github.com/deepak-sekarbabu-coder/apargo/internal/middleware"
)

// balanceHandler handles HTTP requests for derived balance views.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

// newBalanceHandler creates a new balanceHandler.
func newBalanceHandler(bs portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{balanceService: bs}
}

// registerBalanceRoutes registers routes for balances and balance sheets.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := newBalanceHandler(balanceService)

	balances := rg.Group("/balances")
	{
		balances.GET("", h.listBalances)
		balances.GET("/unpaid-count", h.getUnpaidBillsCount)
	}

	balanceSheets := rg.Group("/balance-sheets")
	{
		balanceSheets.GET("", h.listMonthlyBalances)
		balanceSheets.POST("/rebuild", h.rebuildMonthlyBalances)
	}
}

// listBalances godoc
// @Summary List apartment balances
// @Description Aggregates the full expense history into each apartment's net balance and pairwise breakdown
// @Tags balances
// @Produce  json
// @Success 200 {object} dto.ListBalancesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute balances"
// @Security BearerAuth
// @Router /balances [get]
func (h *balanceHandler) listBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balances, err := h.balanceService.GetApartmentBalances(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute apartment balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute balances"})
		return
	}

	// Stable output order for clients.
	ids := make([]string, 0, len(balances))
	for id := range balances {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	resp := dto.ListBalancesResponse{Balances: make([]dto.ApartmentBalanceResponse, 0, len(ids))}
	for _, id := range ids {
		resp.Balances = append(resp.Balances, dto.ToApartmentBalanceResponse(id, balances[id]))
	}
	c.JSON(http.StatusOK, resp)
}

// getUnpaidBillsCount godoc
// @Summary Get the unpaid shares counter
// @Description Counts every (expense, apartment) pair still owing across the expense history
// @Tags balances
// @Produce  json
// @Success 200 {object} dto.UnpaidBillsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to count unpaid bills"
// @Security BearerAuth
// @Router /balances/unpaid-count [get]
func (h *balanceHandler) getUnpaidBillsCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	count, err := h.balanceService.GetUnpaidBillsCount(c.Request.Context())
	if err != nil {
		logger.Error("Failed to count unpaid bills", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to count unpaid bills"})
		return
	}

	c.JSON(http.StatusOK, dto.UnpaidBillsResponse{UnpaidBills: count})
}

// listMonthlyBalances godoc
// @Summary List a month's ledger buckets
// @Description Retrieves the persisted per-apartment income/expense aggregates for a ledger month
// @Tags balance-sheets
// @Produce  json
// @Param   monthYear query string true "Ledger month, YYYY-MM"
// @Success 200 {object} dto.ListMonthlyBalancesResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list balance sheets"
// @Security BearerAuth
// @Router /balance-sheets [get]
func (h *balanceHandler) listMonthlyBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	monthYear := c.Query("monthYear")
	if monthYear == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "monthYear query parameter is required"})
		return
	}

	balances, err := h.balanceService.ListMonthlyBalances(c.Request.Context(), monthYear)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid monthYear for ListMonthlyBalances", slog.String("month_year", monthYear))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to list monthly balances", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list balance sheets"})
		}
		return
	}

	resp := dto.ListMonthlyBalancesResponse{
		MonthYear: monthYear,
		Balances:  make([]dto.MonthlyBalanceResponse, len(balances)),
	}
	for i := range balances {
		resp.Balances[i] = dto.ToMonthlyBalanceResponse(&balances[i])
	}
	c.JSON(http.StatusOK, resp)
}

// rebuildMonthlyBalances godoc
// @Summary Rebuild a month's ledger buckets
// @Description Recomputes one month's ledger from the approved payments on record, replacing the incremental state. Admin repair path.
// @Tags balance-sheets
// @Accept  json
// @Produce  json
// @Param   rebuild body dto.RebuildBalancesRequest true "Ledger month to rebuild"
// @Success 200 {object} dto.ListMonthlyBalancesResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to rebuild balance sheets"
// @Security BearerAuth
// @Router /balance-sheets/rebuild [post]
func (h *balanceHandler) rebuildMonthlyBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RebuildBalancesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RebuildMonthlyBalances", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger.Info("Received request to rebuild monthly balances", slog.String("month_year", req.MonthYear))

	balances, err := h.balanceService.RebuildMonthlyBalances(c.Request.Context(), req.MonthYear, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error rebuilding monthly balances", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to rebuild monthly balances", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to rebuild balance sheets"})
		}
		return
	}

	resp := dto.ListMonthlyBalancesResponse{
		MonthYear: req.MonthYear,
		Balances:  make([]dto.MonthlyBalanceResponse, len(balances)),
	}
	for i := range balances {
		resp.Balances[i] = dto.ToMonthlyBalanceResponse(&balances[i])
	}
	c.JSON(http.StatusOK, resp)
}
