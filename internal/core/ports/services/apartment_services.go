package services

import (
	"context"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	"github.com/deepak-sekarbabu-coder/apargo/internal/dto"
)

// ApartmentSvcFacade defines the apartment roster administration operations.
type ApartmentSvcFacade interface {
	CreateApartment(ctx context.Context, req dto.CreateApartmentRequest, creatorUserID string) (*domain.Apartment, error)
	GetApartmentByID(ctx context.Context, apartmentID string) (*domain.Apartment, error)
	ListApartments(ctx context.Context) ([]domain.Apartment, error)
	UpdateApartment(ctx context.Context, apartmentID string, req dto.UpdateApartmentRequest, userID string) (*domain.Apartment, error)
}
