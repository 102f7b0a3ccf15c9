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

// ApplicationRepository provides database access for student leads.
type ApplicationRepository struct {
	db *sqlx.DB
}

// NewApplicationRepository creates a new instance of ApplicationRepository.
func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, university_id, university_name, name, email, phone, course_interest, short_note, status, created_at`

// Create inserts a new lead.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	if app.Status == "" {
		app.Status = models.ApplicationPending
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO applications (id, university_id, university_name, name, email, phone, course_interest, short_note, status, created_at)
		VALUES (:id, :university_id, :university_name, :name, :email, :phone, :course_interest, :short_note, :status, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, app); err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

// List returns every lead, newest first.
func (r *ApplicationRepository) List(ctx context.Context) ([]models.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications ORDER BY created_at DESC`, applicationColumns)
	var apps []models.Application
	if err := r.db.SelectContext(ctx, &apps, query); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// ListByUniversity returns the leads submitted against one university.
func (r *ApplicationRepository) ListByUniversity(ctx context.Context, universityID string) ([]models.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE university_id = $1 ORDER BY created_at DESC`, applicationColumns)
	var apps []models.Application
	if err := r.db.SelectContext(ctx, &apps, query, universityID); err != nil {
		return nil, fmt.Errorf("list applications by university: %w", err)
	}
	return apps, nil
}

// FindByID returns a lead by identifier.
func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*models.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE id = $1 LIMIT 1`, applicationColumns)
	var app models.Application
	if err := r.db.GetContext(ctx, &app, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find application by id: %w", err)
	}
	return &app, nil
}

// UpdateStatus sets the workflow status of a lead.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	const query = `UPDATE applications SET status = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, status); err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	return nil
}

// Delete removes a lead.
func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM applications WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	return nil
}

// Count returns the total number of leads.
func (r *ApplicationRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM applications`
	var total int
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return total, nil
}

// CountByStatus returns the number of leads in the given status.
func (r *ApplicationRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	const query = `SELECT COUNT(*) FROM applications WHERE status = $1`
	var total int
	if err := r.db.GetContext(ctx, &total, query, status); err != nil {
		return 0, fmt.Errorf("count applications by status: %w", err)
	}
	return total, nil
}
