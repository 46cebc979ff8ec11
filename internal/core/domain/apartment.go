package domain

// Apartment is the unit of financial accounting: debts and credits are
// always between apartments, never between individual residents.
type Apartment struct {
	ApartmentID string   `json:"apartmentID"` // Primary Key (e.g., UUID)
	Name        string   `json:"name"`        // Display name, e.g. "G1"
	Members     []string `json:"members"`     // UserIDs of residents
	AuditFields
}
