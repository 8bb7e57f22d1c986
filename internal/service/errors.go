package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/saarzint/candle-recall/models"
)

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrWrongPassword           = errors.New("wrong password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")

	ErrEmailTaken    = errors.New("email is already registered")
	ErrUsernameTaken = errors.New("username is already taken")
	ErrSameEmail     = errors.New("new email equals the current one")

	ErrResetTokenInvalid = errors.New("reset token is invalid or expired")
	ErrCodeInvalid       = errors.New("verification code is incorrect")
	ErrCodeExpired       = errors.New("verification code is expired")
	ErrStepOutOfOrder    = errors.New("step is out of order")
	ErrResendTooSoon     = errors.New("resend requested too soon")

	ErrUserNotFound   = errors.New("user not found")
	ErrReportNotFound = errors.New("report not found")
	ErrMailDelivery   = errors.New("mail delivery failed")
)

// Messages shown under form fields for domain failures.
const (
	MsgEmailTaken        = "This email is already registered."
	MsgUsernameTaken     = "This username is already taken."
	MsgSameEmail         = "This is already your email."
	MsgResetTokenInvalid = "This reset link is invalid or has expired."
	MsgCodeIncorrect     = "The code is incorrect."
	MsgCodeExpired       = "This code has expired. Request a new one."
)

// CooldownError is returned when a code or link is requested again before
// the resend cooldown has passed.
type CooldownError struct {
	RetryAfter time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s: retry in %s", ErrResendTooSoon, e.RetryAfter.Round(time.Second))
}

// Is makes errors.Is(err, ErrResendTooSoon) match.
func (e *CooldownError) Is(target error) bool {
	return target == ErrResendTooSoon
}

// fieldError joins a sentinel with a message for one form field, so callers
// can match the sentinel and still render the message under the field.
func fieldError(sentinel error, field, msg string) error {
	return fmt.Errorf("%w: %w", sentinel, models.FieldErrors{field: msg})
}

// Client side errors.
var (
	ErrNotSignedIn    = errors.New("not signed in")
	ErrSessionExpired = errors.New("session expired, sign in again")
)
