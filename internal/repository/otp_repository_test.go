package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudham/edudham-api/internal/models"
)

func TestReplaceOTPDeletesThenInserts(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewOTPRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM password_otps WHERE email = $1")).
		WithArgs("user@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO password_otps").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	otp := &models.PasswordOTP{Email: "user@example.com", Code: "123456", ExpiresAt: time.Now().Add(10 * time.Minute)}
	err := repo.Replace(context.Background(), otp)
	require.NoError(t, err)
	assert.NotEmpty(t, otp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOTPByEmail(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewOTPRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "code", "expires_at", "created_at"}).
		AddRow("1", "user@example.com", "123456", now.Add(10*time.Minute), now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, code, expires_at, created_at FROM password_otps WHERE email = $1 LIMIT 1")).
		WithArgs("user@example.com").
		WillReturnRows(rows)

	otp, err := repo.FindByEmail(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "123456", otp.Code)
	assert.False(t, otp.Expired(now))
	assert.NoError(t, mock.ExpectationsWereMet())
}
