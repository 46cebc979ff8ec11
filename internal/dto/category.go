package dto

import (
	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
)

// CreateCategoryRequest defines the payload for creating an expense category.
type CreateCategoryRequest struct {
	Name    string `json:"name" binding:"required"`
	NoSplit bool   `json:"noSplit"`
}

// UpdateCategoryRequest defines the payload for updating a category.
type UpdateCategoryRequest struct {
	Name    *string `json:"name,omitempty"`
	NoSplit *bool   `json:"noSplit,omitempty"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	NoSplit    bool   `json:"noSplit"`
}

// ListCategoriesResponse wraps the configured categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		NoSplit:    c.NoSplit,
	}
}
