package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepak-sekarbabu-coder/apargo/internal/apperrors"
	portssvc "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/services"
	"github.com/deepak-sekarbabu-coder/apargo/internal/dto"
	"github.com/deepak-sekarbabu-coder/apargo/internal/middleware"
)

// apartmentHandler handles HTTP requests related to apartments.
type apartmentHandler struct {
	apartmentService portssvc.ApartmentSvcFacade
}

// newApartmentHandler creates a new apartmentHandler.
func newApartmentHandler(as portssvc.ApartmentSvcFacade) *apartmentHandler {
	return &apartmentHandler{apartmentService: as}
}

// registerApartmentRoutes registers routes related to apartments.
func registerApartmentRoutes(rg *gin.RouterGroup, apartmentService portssvc.ApartmentSvcFacade) {
	h := newApartmentHandler(apartmentService)

	apartments := rg.Group("/apartments")
	{
		apartments.POST("", h.createApartment)
		apartments.GET("", h.listApartments)
		apartments.GET("/:id", h.getApartment)
		apartments.PUT("/:id", h.updateApartment)
	}
}

// createApartment godoc
// @Summary Create a new apartment
// @Description Adds an apartment to the building roster
// @Tags apartments
// @Accept  json
// @Produce  json
// @Param   apartment body dto.CreateApartmentRequest true "Apartment details"
// @Success 201 {object} dto.ApartmentResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create apartment"
// @Security BearerAuth
// @Router /apartments [post]
func (h *apartmentHandler) createApartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateApartment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger.Info("Received request to create apartment", slog.String("apartment_name", req.Name))

	newApartment, err := h.apartmentService.CreateApartment(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Validation error creating apartment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create apartment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create apartment"})
		}
		return
	}

	logger.Info("Apartment created successfully", slog.String("apartment_id", newApartment.ApartmentID))
	c.JSON(http.StatusCreated, dto.ToApartmentResponse(newApartment))
}

// getApartment godoc
// @Summary Get an apartment by ID
// @Description Retrieves details for a specific apartment by its ID
// @Tags apartments
// @Produce  json
// @Param   id path string true "Apartment ID"
// @Success 200 {object} dto.ApartmentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Apartment not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve apartment"
// @Security BearerAuth
// @Router /apartments/{id} [get]
func (h *apartmentHandler) getApartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	apartmentID := c.Param("id")

	apartment, err := h.apartmentService.GetApartmentByID(c.Request.Context(), apartmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Apartment not found", slog.String("apartment_id", apartmentID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Apartment not found"})
		} else {
			logger.Error("Failed to get apartment from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve apartment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToApartmentResponse(apartment))
}

// listApartments godoc
// @Summary List apartments
// @Description Retrieves the full apartment roster
// @Tags apartments
// @Produce  json
// @Success 200 {object} dto.ListApartmentsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list apartments"
// @Security BearerAuth
// @Router /apartments [get]
func (h *apartmentHandler) listApartments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	apartments, err := h.apartmentService.ListApartments(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list apartments from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list apartments"})
		return
	}

	resp := dto.ListApartmentsResponse{Apartments: make([]dto.ApartmentResponse, len(apartments))}
	for i := range apartments {
		resp.Apartments[i] = dto.ToApartmentResponse(&apartments[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateApartment godoc
// @Summary Update an apartment
// @Description Updates an apartment's name or resident members
// @Tags apartments
// @Accept  json
// @Produce  json
// @Param   id path string true "Apartment ID"
// @Param   apartment body dto.UpdateApartmentRequest true "Fields to update"
// @Success 200 {object} dto.ApartmentResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Apartment not found"
// @Failure 500 {object} ErrorResponse "Failed to update apartment"
// @Security BearerAuth
// @Router /apartments/{id} [put]
func (h *apartmentHandler) updateApartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	apartmentID := c.Param("id")

	var req dto.UpdateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateApartment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	apartment, err := h.apartmentService.UpdateApartment(c.Request.Context(), apartmentID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Apartment not found for update", slog.String("apartment_id", apartmentID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Apartment not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating apartment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update apartment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update apartment"})
		}
		return
	}

	logger.Info("Apartment updated successfully", slog.String("apartment_id", apartmentID))
	c.JSON(http.StatusOK, dto.ToApartmentResponse(apartment))
}
