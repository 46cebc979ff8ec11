package dto

import (
	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
)

// CreateApartmentRequest defines the payload for creating an apartment.
type CreateApartmentRequest struct {
	Name    string   `json:"name" binding:"required"`
	Members []string `json:"members"`
}

// UpdateApartmentRequest defines the payload for updating an apartment.
// Pointer fields distinguish "not provided" from zero values.
type UpdateApartmentRequest struct {
	Name    *string   `json:"name,omitempty"`
	Members *[]string `json:"members,omitempty"`
}

// ApartmentResponse defines the data returned for an apartment.
type ApartmentResponse struct {
	ApartmentID string   `json:"apartmentID"`
	Name        string   `json:"name"`
	Members     []string `json:"members"`
}

// ListApartmentsResponse wraps the apartment roster.
type ListApartmentsResponse struct {
	Apartments []ApartmentResponse `json:"apartments"`
}

// ToApartmentResponse converts a domain.Apartment to ApartmentResponse DTO.
func ToApartmentResponse(a *domain.Apartment) ApartmentResponse {
	return ApartmentResponse{
		ApartmentID: a.ApartmentID,
		Name:        a.Name,
		Members:     a.Members,
	}
}
