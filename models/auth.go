package models

import "time"

// RegisterRequest is the payload of the sign-up form.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the payload of the sign-in form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest asks the server to mail a password reset link.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest completes the reset flow with the token from the link.
type ResetPasswordRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ForgotPasswordResponse reports when the next reset link may be requested.
type ForgotPasswordResponse struct {
	Email       string    `json:"email"`
	ResendAfter time.Time `json:"resend_after"`
}

// PasswordResetToken is a stored, single-use reset credential.
// Only the SHA-256 digest of the raw token is persisted.
type PasswordResetToken struct {
	ID        string
	UserID    int64
	TokenHash string
	ExpiresAt time.Time
	SentAt    time.Time
	UsedAt    *time.Time
}
