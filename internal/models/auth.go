package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest holds credentials for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest creates a student account through the public form.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

// TokenResponse returns the issued bearer token and user info.
type TokenResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        UserInfo `json:"user"`
}

// UserInfo describes the authenticated user in responses.
type UserInfo struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	UniversityID *string  `json:"university_id,omitempty"`
}

// OTPRequest initiates the password reset flow for an account email.
type OTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// OTPRequestResponse reports where the one-time code was delivered.
type OTPRequestResponse struct {
	Message     string `json:"message"`
	MasterEmail string `json:"master_email"`
}

// OTPVerifyRequest completes the reset flow with the delivered code.
type OTPVerifyRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,len=6"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// JWTClaims represents the JWT payload for access tokens.
type JWTClaims struct {
	UserID       string   `json:"user_id"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	UniversityID *string  `json:"university_id,omitempty"`
	jwt.RegisteredClaims
}
