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

// OTPRepository stores pending password reset codes.
type OTPRepository struct {
	db *sqlx.DB
}

// NewOTPRepository creates a new instance of OTPRepository.
func NewOTPRepository(db *sqlx.DB) *OTPRepository {
	return &OTPRepository{db: db}
}

// Replace discards any pending code for the email and stores the new one.
func (r *OTPRepository) Replace(ctx context.Context, otp *models.PasswordOTP) error {
	if otp.ID == "" {
		otp.ID = uuid.NewString()
	}
	if otp.CreatedAt.IsZero() {
		otp.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin otp replace: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM password_otps WHERE email = $1`, otp.Email); err != nil {
		return fmt.Errorf("clear previous otp: %w", err)
	}

	const insert = `INSERT INTO password_otps (id, email, code, expires_at, created_at) VALUES (:id, :email, :code, :expires_at, :created_at)`
	if _, err := tx.NamedExecContext(ctx, insert, otp); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit otp replace: %w", err)
	}
	return nil
}

// FindByEmail returns the pending code for an email.
func (r *OTPRepository) FindByEmail(ctx context.Context, email string) (*models.PasswordOTP, error) {
	const query = `SELECT id, email, code, expires_at, created_at FROM password_otps WHERE email = $1 LIMIT 1`
	var otp models.PasswordOTP
	if err := r.db.GetContext(ctx, &otp, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find otp by email: %w", err)
	}
	return &otp, nil
}

// DeleteByEmail burns the pending code for an email.
func (r *OTPRepository) DeleteByEmail(ctx context.Context, email string) error {
	const query = `DELETE FROM password_otps WHERE email = $1`
	if _, err := r.db.ExecContext(ctx, query, email); err != nil {
		return fmt.Errorf("delete otp: %w", err)
	}
	return nil
}
