package mapping

import (
	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	"github.com/deepak-sekarbabu-coder/apargo/internal/models"
)

// ToModelApartment converts a domain Apartment to a model Apartment
func ToModelApartment(d domain.Apartment) models.Apartment {
	return models.Apartment{
		ApartmentID: d.ApartmentID,
		Name:        d.Name,
		Members:     d.Members,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainApartment converts a model Apartment to a domain Apartment
func ToDomainApartment(m models.Apartment) domain.Apartment {
	return domain.Apartment{
		ApartmentID: m.ApartmentID,
		Name:        m.Name,
		Members:     m.Members,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainApartmentSlice converts a slice of model Apartments to a slice of domain Apartments
func ToDomainApartmentSlice(ms []models.Apartment) []domain.Apartment {
	ds := make([]domain.Apartment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainApartment(m)
	}
	return ds
}
