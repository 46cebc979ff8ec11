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

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("", h.listPayments)
		payments.GET("/:id", h.getPayment)
		payments.PUT("/:id", h.updatePayment)
		payments.DELETE("/:id", h.deletePayment)
	}
}

// createPayment godoc
// @Summary Record a payment event
// @Description Records an income or expense payment; an APPROVED payment enters the monthly ledger immediately
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create payment"
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger.Info("Received request to create payment",
		slog.String("apartment_id", req.ApartmentID),
		slog.String("category", string(req.Category)),
		slog.String("month_year", req.MonthYear),
	)

	newPayment, err := h.paymentService.CreatePayment(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, services.ErrAmountNotPositive) || errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating payment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create payment"})
		}
		return
	}

	logger.Info("Payment created successfully", slog.String("payment_id", newPayment.PaymentID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(newPayment))
}

// getPayment godoc
// @Summary Get a payment by ID
// @Description Retrieves details for a specific payment by its ID
// @Tags payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve payment"
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("id")

	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Payment not found", slog.String("payment_id", paymentID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment not found"})
		} else {
			logger.Error("Failed to get payment from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve payment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List a month's payments
// @Description Retrieves all payments in a ledger month, optionally filtered by status
// @Tags payments
// @Produce  json
// @Param   monthYear query string true "Ledger month, YYYY-MM"
// @Param   status query string false "Filter by payment status"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list payments"
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListPayments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list payments from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ListPaymentsResponse{Payments: dto.ToPaymentResponses(payments)})
}

// updatePayment godoc
// @Summary Update a payment
// @Description Edits a payment's status, amount, apartment or month; the monthly ledger is adjusted atomically
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   id path string true "Payment ID"
// @Param   payment body dto.UpdatePaymentRequest true "Fields to update"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 500 {object} ErrorResponse "Failed to update payment"
// @Security BearerAuth
// @Router /payments/{id} [put]
func (h *paymentHandler) updatePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("id")

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), paymentID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Payment not found for update", slog.String("payment_id", paymentID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment not found"})
		} else if errors.Is(err, services.ErrAmountNotPositive) || errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating payment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update payment"})
		}
		return
	}

	logger.Info("Payment updated successfully", slog.String("payment_id", paymentID))
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Removes a payment; an approved amount is backed out of the monthly ledger
// @Tags payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 500 {object} ErrorResponse "Failed to delete payment"
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("id")

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), paymentID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Payment not found for delete", slog.String("payment_id", paymentID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment not found"})
		} else {
			logger.Error("Failed to delete payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete payment"})
		}
		return
	}

	logger.Info("Payment deleted", slog.String("payment_id", paymentID))
	c.Status(http.StatusNoContent)
}
