package repositories

import (
	"context"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
)

// CategoryReader defines read operations for expense category data
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category by its unique identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all configured expense categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryWriter defines write operations for expense category data
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates an existing category's name and split policy.
	UpdateCategory(ctx context.Context, category domain.Category) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
