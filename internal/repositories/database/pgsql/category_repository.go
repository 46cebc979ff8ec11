package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deepak-sekarbabu-coder/apargo/internal/apperrors"
	"github.com/deepak-sekarbabu-coder/apargo/internal/core/domain"
	portsrepo "github.com/deepak-sekarbabu-coder/apargo/internal/core/ports/repositories"
	"github.com/deepak-sekarbabu-coder/apargo/internal/models"
	"github.com/deepak-sekarbabu-coder/apargo/internal/utils/mapping"
)

type PgxCategoryRepository struct {
	pool *pgxpool.Pool
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{pool: pool}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	modelCat := mapping.ToModelCategory(category)

	query := `
		INSERT INTO categories (category_id, name, no_split, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		modelCat.CategoryID,
		modelCat.Name,
		modelCat.NoSplit,
		modelCat.CreatedAt,
		modelCat.CreatedBy,
		modelCat.LastUpdatedAt,
		modelCat.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: category with ID %s already exists", apperrors.ErrDuplicate, modelCat.CategoryID)
		}
		return fmt.Errorf("failed to save category %s: %w", modelCat.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
		SELECT category_id, name, no_split, created_at, created_by, last_updated_at, last_updated_by
		FROM categories
		WHERE category_id = $1;
	`
	var modelCat models.Category
	err := r.pool.QueryRow(ctx, query, categoryID).Scan(
		&modelCat.CategoryID,
		&modelCat.Name,
		&modelCat.NoSplit,
		&modelCat.CreatedAt,
		&modelCat.CreatedBy,
		&modelCat.LastUpdatedAt,
		&modelCat.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}

	domainCat := mapping.ToDomainCategory(modelCat)
	return &domainCat, nil
}

// ListCategories retrieves all configured categories ordered by name.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT category_id, name, no_split, created_at, created_by, last_updated_at, last_updated_by
		FROM categories
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var modelCat models.Category
		err := rows.Scan(
			&modelCat.CategoryID,
			&modelCat.Name,
			&modelCat.NoSplit,
			&modelCat.CreatedAt,
			&modelCat.CreatedBy,
			&modelCat.LastUpdatedAt,
			&modelCat.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, modelCat)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}

	return mapping.ToDomainCategorySlice(categories), nil
}

// UpdateCategory updates an existing category's name and split policy.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	modelCat := mapping.ToModelCategory(category)

	query := `
		UPDATE categories
		SET name = $2, no_split = $3, last_updated_at = $4, last_updated_by = $5
		WHERE category_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		modelCat.CategoryID,
		modelCat.Name,
		modelCat.NoSplit,
		modelCat.LastUpdatedAt,
		modelCat.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update category %s: %w", modelCat.CategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
