package models

// Category represents a row in the categories table.
type Category struct {
	CategoryID string `db:"category_id"`
	Name       string `db:"name"`
	NoSplit    bool   `db:"no_split"`
	AuditFields
}
