package services

import (
	"context"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	"github.com/deepak-sekarbabu-coder/apargo/internal/dto"
)

// CategorySvcFacade defines the expense category administration operations.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error)
}
