package models

// Apartment represents a row in the apartments table.
type Apartment struct {
	ApartmentID string   `db:"apartment_id"`
	Name        string   `db:"name"`
	Members     []string `db:"members"` // text[] of user IDs
	AuditFields
}
