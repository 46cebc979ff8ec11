package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	portsrepo "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/repositories"
	portssvc "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/services"
	"github.com/deepak-sekarbabu-coder/apargo/internal/dto"
	"github.com/deepak-sekarbabu-coder/apargo/internal/middleware"
)

// categoryService administers expense categories and their split policy.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		NoSplit:    req.NoSplit,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Error("Failed to save category", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID), slog.String("name", category.Name), slog.Bool("no_split", category.NoSplit))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list categories", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		category.Name = *req.Name
		updated = true
	}
	if req.NoSplit != nil {
		// Policy changes only affect expenses created from now on; existing
		// expenses keep the split computed at their creation time.
		category.NoSplit = *req.NoSplit
		updated = true
	}
	if !updated {
		return category, nil
	}

	category.LastUpdatedAt = time.Now().UTC()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		logger.Error("Failed to update category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	logger.Info("Category updated", slog.String("category_id", categoryID))
	return category, nil
}
