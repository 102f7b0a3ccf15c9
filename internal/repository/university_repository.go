package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/edudham/edudham-api/internal/models"
)

// UniversityRepository provides database access for directory listings.
type UniversityRepository struct {
	db *sqlx.DB
}

// NewUniversityRepository creates a new instance of UniversityRepository.
func NewUniversityRepository(db *sqlx.DB) *UniversityRepository {
	return &UniversityRepository{db: db}
}

const universityColumns = `id, name, location, state, categories, legacy_category, main_photo, photo_gallery, description, courses, placement_percentage, rating, tags, contact_details, created_at`

// List returns every listing, newest first. Search and facet filtering run
// in memory so the listing screen and the server share one matcher.
func (r *UniversityRepository) List(ctx context.Context) ([]models.University, error) {
	query := fmt.Sprintf(`SELECT %s FROM universities ORDER BY created_at DESC`, universityColumns)
	var universities []models.University
	if err := r.db.SelectContext(ctx, &universities, query); err != nil {
		return nil, fmt.Errorf("list universities: %w", err)
	}
	return universities, nil
}

// FindByID returns one listing by identifier.
func (r *UniversityRepository) FindByID(ctx context.Context, id string) (*models.University, error) {
	query := fmt.Sprintf(`SELECT %s FROM universities WHERE id = $1 LIMIT 1`, universityColumns)
	var university models.University
	if err := r.db.GetContext(ctx, &university, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find university by id: %w", err)
	}
	return &university, nil
}

// Create inserts a new listing.
func (r *UniversityRepository) Create(ctx context.Context, u *models.University) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO universities (id, name, location, state, categories, legacy_category, main_photo, photo_gallery, description, courses, placement_percentage, rating, tags, contact_details, created_at)
		VALUES (:id, :name, :location, :state, :categories, :legacy_category, :main_photo, :photo_gallery, :description, :courses, :placement_percentage, :rating, :tags, :contact_details, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, u); err != nil {
		return fmt.Errorf("create university: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of a listing.
func (r *UniversityRepository) Update(ctx context.Context, u *models.University) error {
	const query = `UPDATE universities SET name = :name, location = :location, state = :state, categories = :categories, legacy_category = :legacy_category, main_photo = :main_photo, photo_gallery = :photo_gallery, description = :description, courses = :courses, placement_percentage = :placement_percentage, rating = :rating, tags = :tags, contact_details = :contact_details WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, u); err != nil {
		return fmt.Errorf("update university: %w", err)
	}
	return nil
}

// Delete removes a listing.
func (r *UniversityRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM universities WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete university: %w", err)
	}
	return nil
}

// Count returns the total number of listings.
func (r *UniversityRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM universities`
	var total int
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("count universities: %w", err)
	}
	return total, nil
}
