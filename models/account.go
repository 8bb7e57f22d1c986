package models

import "time"

// CodePurpose tells which flow a verification code belongs to.
type CodePurpose string

const (
	// PurposeEmailCurrent confirms ownership of the current address
	// during an email change.
	PurposeEmailCurrent CodePurpose = "email_current"
	// PurposeEmailNew confirms ownership of the new address.
	PurposeEmailNew CodePurpose = "email_new"
	// PurposeAccountDelete confirms account deletion.
	PurposeAccountDelete CodePurpose = "account_delete"
)

// VerificationCode is a pending one-time code delivered by email.
type VerificationCode struct {
	ID          int64
	UserID      int64
	Purpose     CodePurpose
	CodeHash    string
	TargetEmail string
	Verified    bool
	ExpiresAt   time.Time
	SentAt      time.Time
}

// Expired reports whether the code is past its expiry at now.
func (c VerificationCode) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// EmailChangeStep is the position of the user in the email change wizard.
type EmailChangeStep int

const (
	EmailStepPassword EmailChangeStep = iota + 1
	EmailStepCurrentCode
	EmailStepNewEmail
	EmailStepNewCode
)

// UsernameChangeRequest renames the account handle.
type UsernameChangeRequest struct {
	Username string `json:"username"`
}

// PasswordChangeRequest replaces the password of a signed-in user.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// PasswordConfirmRequest carries the password for the first email change step.
type PasswordConfirmRequest struct {
	Password string `json:"password"`
}

// CodeRequest carries a verification code typed by the user.
type CodeRequest struct {
	Code string `json:"code"`
}

// NewEmailRequest carries the address the user wants to switch to.
type NewEmailRequest struct {
	Email string `json:"email"`
}

// EmailChangeState is returned after each wizard step.
type EmailChangeState struct {
	Step        EmailChangeStep `json:"step"`
	TargetEmail string          `json:"target_email,omitempty"`
	ResendAfter time.Time       `json:"resend_after"`
}

// DeleteAccountRequest confirms account deletion.
type DeleteAccountRequest struct {
	Code     string `json:"code"`
	Password string `json:"password"`
}

// CodeSentResponse tells where a verification code went and when another
// one may be requested.
type CodeSentResponse struct {
	Email       string    `json:"email"`
	ResendAfter time.Time `json:"resend_after"`
}

// PurgeResult counts the rows removed by a cleanup run.
type PurgeResult struct {
	ResetTokens int64
	Codes       int64
}

// Mail is an outgoing transactional email.
type Mail struct {
	To      string
	Subject string
	Body    string
}
