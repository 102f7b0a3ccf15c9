package models

import "time"

// PasswordOTP is a pending one-time reset code. At most one row exists per
// email; requesting a new code replaces the previous one.
type PasswordOTP struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Code      string    `db:"code" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Expired reports whether the code is past its validity window.
func (o *PasswordOTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
