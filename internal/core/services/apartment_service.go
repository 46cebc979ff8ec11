package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	portsrepo "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/repositories"
	portssvc "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/services"
	"github.com/deepak-sekarbabu-coder/apargo/internal/dto"
	"github.com/deepak-sekarbabu-coder/apargo/internal/middleware"
)

// apartmentService administers the apartment roster.
type apartmentService struct {
	apartmentRepo portsrepo.ApartmentRepositoryFacade
}

// NewApartmentService creates a new ApartmentService.
func NewApartmentService(apartmentRepo portsrepo.ApartmentRepositoryFacade) portssvc.ApartmentSvcFacade {
	return &apartmentService{apartmentRepo: apartmentRepo}
}

var _ portssvc.ApartmentSvcFacade = (*apartmentService)(nil)

func (s *apartmentService) CreateApartment(ctx context.Context, req dto.CreateApartmentRequest, creatorUserID string) (*domain.Apartment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	apartment := domain.Apartment{
		ApartmentID: uuid.NewString(),
		Name:        req.Name,
		Members:     req.Members,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if apartment.Members == nil {
		apartment.Members = []string{}
	}

	if err := s.apartmentRepo.SaveApartment(ctx, apartment); err != nil {
		logger.Error("Failed to save apartment", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save apartment: %w", err)
	}

	logger.Info("Apartment created", slog.String("apartment_id", apartment.ApartmentID), slog.String("name", apartment.Name))
	return &apartment, nil
}

func (s *apartmentService) GetApartmentByID(ctx context.Context, apartmentID string) (*domain.Apartment, error) {
	apartment, err := s.apartmentRepo.FindApartmentByID(ctx, apartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find apartment %s: %w", apartmentID, err)
	}
	return apartment, nil
}

func (s *apartmentService) ListApartments(ctx context.Context) ([]domain.Apartment, error) {
	apartments, err := s.apartmentRepo.ListApartments(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list apartments", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve apartments: %w", err)
	}
	return apartments, nil
}

func (s *apartmentService) UpdateApartment(ctx context.Context, apartmentID string, req dto.UpdateApartmentRequest, userID string) (*domain.Apartment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	apartment, err := s.apartmentRepo.FindApartmentByID(ctx, apartmentID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		apartment.Name = *req.Name
		updated = true
	}
	if req.Members != nil {
		apartment.Members = *req.Members
		updated = true
	}
	if !updated {
		return apartment, nil
	}

	apartment.LastUpdatedAt = time.Now().UTC()
	apartment.LastUpdatedBy = userID

	if err := s.apartmentRepo.UpdateApartment(ctx, *apartment); err != nil {
		logger.Error("Failed to update apartment", slog.String("error", err.Error()), slog.String("apartment_id", apartmentID))
		return nil, fmt.Errorf("failed to update apartment: %w", err)
	}

	logger.Info("Apartment updated", slog.String("apartment_id", apartmentID))
	return apartment, nil
}
