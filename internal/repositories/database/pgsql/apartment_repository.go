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

type PgxApartmentRepository struct {
	pool *pgxpool.Pool
}

// newPgxApartmentRepository creates a new repository for apartment data.
func newPgxApartmentRepository(pool *pgxpool.Pool) portsrepo.ApartmentRepositoryFacade {
	return &PgxApartmentRepository{pool: pool}
}

// Ensure PgxApartmentRepository implements portsrepo.ApartmentRepositoryFacade
var _ portsrepo.ApartmentRepositoryFacade = (*PgxApartmentRepository)(nil)

// SaveApartment inserts a new apartment.
func (r *PgxApartmentRepository) SaveApartment(ctx context.Context, apartment domain.Apartment) error {
	modelApt := mapping.ToModelApartment(apartment)

	query := `
		INSERT INTO apartments (apartment_id, name, members, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		modelApt.ApartmentID,
		modelApt.Name,
		modelApt.Members,
		modelApt.CreatedAt,
		modelApt.CreatedBy,
		modelApt.LastUpdatedAt,
		modelApt.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: apartment with ID %s already exists", apperrors.ErrDuplicate, modelApt.ApartmentID)
		}
		return fmt.Errorf("failed to save apartment %s: %w", modelApt.ApartmentID, err)
	}
	return nil
}

// FindApartmentByID retrieves an apartment by its ID.
func (r *PgxApartmentRepository) FindApartmentByID(ctx context.Context, apartmentID string) (*domain.Apartment, error) {
	query := `
		SELECT apartment_id, name, members, created_at, created_by, last_updated_at, last_updated_by
		FROM apartments
		WHERE apartment_id = $1;
	`
	var modelApt models.Apartment
	err := r.pool.QueryRow(ctx, query, apartmentID).Scan(
		&modelApt.ApartmentID,
		&modelApt.Name,
		&modelApt.Members,
		&modelApt.CreatedAt,
		&modelApt.CreatedBy,
		&modelApt.LastUpdatedAt,
		&modelApt.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find apartment by ID %s: %w", apartmentID, err)
	}

	domainApt := mapping.ToDomainApartment(modelApt)
	return &domainApt, nil
}

// ListApartments retrieves the full apartment roster ordered by name.
func (r *PgxApartmentRepository) ListApartments(ctx context.Context) ([]domain.Apartment, error) {
	query := `
		SELECT apartment_id, name, members, created_at, created_by, last_updated_at, last_updated_by
		FROM apartments
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query apartments: %w", err)
	}
	defer rows.Close()

	apartments := []models.Apartment{}
	for rows.Next() {
		var modelApt models.Apartment
		err := rows.Scan(
			&modelApt.ApartmentID,
			&modelApt.Name,
			&modelApt.Members,
			&modelApt.CreatedAt,
			&modelApt.CreatedBy,
			&modelApt.LastUpdatedAt,
			&modelApt.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan apartment row: %w", err)
		}
		apartments = append(apartments, modelApt)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating apartment rows: %w", rows.Err())
	}

	return mapping.ToDomainApartmentSlice(apartments), nil
}

// UpdateApartment updates an existing apartment's name and members.
func (r *PgxApartmentRepository) UpdateApartment(ctx context.Context, apartment domain.Apartment) error {
	modelApt := mapping.ToModelApartment(apartment)

	query := `
		UPDATE apartments
		SET name = $2, members = $3, last_updated_at = $4, last_updated_by = $5
		WHERE apartment_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		modelApt.ApartmentID,
		modelApt.Name,
		modelApt.Members,
		modelApt.LastUpdatedAt,
		modelApt.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update apartment %s: %w", modelApt.ApartmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
