package repositories

import (
	"context"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
)

// ApartmentReader defines read operations for apartment data
type ApartmentReader interface {
	// FindApartmentByID retrieves a specific apartment by its unique identifier.
	FindApartmentByID(ctx context.Context, apartmentID string) (*domain.Apartment, error)

	// ListApartments retrieves the full apartment roster.
	ListApartments(ctx context.Context) ([]domain.Apartment, error)
}

// ApartmentWriter defines write operations for apartment data
type ApartmentWriter interface {
	// SaveApartment persists a new apartment.
	SaveApartment(ctx context.Context, apartment domain.Apartment) error

	// UpdateApartment updates an existing apartment's name and members.
	UpdateApartment(ctx context.Context, apartment domain.Apartment) error
}

// ApartmentRepositoryFacade combines all apartment-related repository interfaces
type ApartmentRepositoryFacade interface {
	ApartmentReader
	ApartmentWriter
}
