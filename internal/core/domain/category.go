package domain

// Category classifies expenses and carries the per-category split policy.
// Categories are configuration: the core reads them, administrative
// endpoints mutate them.
type Category struct {
	CategoryID string `json:"categoryID"` // Primary Key (e.g., UUID)
	Name       string `json:"name"`
	NoSplit    bool   `json:"noSplit"` // Expense is borne entirely by the paying apartment
	AuditFields
}
