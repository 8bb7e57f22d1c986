package service

import (
	"context"
	"time"

	"github.com/saarzint/candle-recall/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for signing in and out
// and for the password reset flow. A successful Register or Login stores the
// session locally so the next start skips the sign-in screen.
type ClientAuthService interface {
	// Register creates an account on the server and keeps the session.
	Register(ctx context.Context, req models.RegisterRequest) (models.Profile, error)

	// Login authenticates against the server and keeps the session. A wrong
	// email or password is reported as [ErrInvalidCredentials].
	Login(ctx context.Context, req models.LoginRequest) (models.Profile, error)

	// Restore loads the stored session and hands its token to the adapter.
	// It returns [ErrNotSignedIn] when there is no session or the token has
	// expired; an expired session is removed.
	Restore(ctx context.Context) (models.Session, error)

	// Logout forgets the token and removes the stored session.
	Logout(ctx context.Context) error

	// ForgotPassword asks the server to mail a reset link. A request inside
	// the resend cooldown fails with a [*CooldownError].
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.ForgotPasswordResponse, error)

	// ResetPassword sets a new password with the token from the link.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error

	// CheckSession asks the server whether the current token is still
	// accepted. It returns [ErrSessionExpired] when it is not.
	CheckSession(ctx context.Context) error
}

// ClientAccountService defines the client-side contract for the account
// screen: profile, username and password changes, the email change wizard
// and account deletion.
type ClientAccountService interface {
	Profile(ctx context.Context) (models.Profile, error)
	ChangeUsername(ctx context.Context, req models.UsernameChangeRequest) (models.Profile, error)
	ChangePassword(ctx context.Context, req models.PasswordChangeRequest) error

	StartEmailChange(ctx context.Context, req models.PasswordConfirmRequest) (models.EmailChangeState, error)
	VerifyCurrentEmail(ctx context.Context, req models.CodeRequest) (models.EmailChangeState, error)
	SubmitNewEmail(ctx context.Context, req models.NewEmailRequest) (models.EmailChangeState, error)

	// ConfirmNewEmail finishes the wizard and updates the email of the
	// stored session.
	ConfirmNewEmail(ctx context.Context, req models.CodeRequest) (models.Profile, error)
	ResendEmailCode(ctx context.Context) (models.EmailChangeState, error)

	RequestDeletionCode(ctx context.Context) (models.CodeSentResponse, error)

	// DeleteAccount removes the account on the server and signs out.
	DeleteAccount(ctx context.Context, req models.DeleteAccountRequest) error
}

// ClientReportService defines the client-side contract for managing reports.
// All calls go straight to the server; nothing is cached locally.
type ClientReportService interface {
	CreateReport(ctx context.Context, req models.ReportCreateRequest) (models.Report, error)
	ListReports(ctx context.Context, filter models.ReportFilter) (models.ReportList, error)
	GetReport(ctx context.Context, reportID int64) (models.Report, error)
	UpdateReport(ctx context.Context, reportID int64, req models.ReportUpdateRequest) (models.Report, error)
	DeleteReport(ctx context.Context, reportID int64) error
	AddTag(ctx context.Context, reportID int64, tag string) (models.Report, error)
	RemoveTag(ctx context.Context, reportID int64, tag string) (models.Report, error)
	ListTags(ctx context.Context) ([]string, error)
}

// ClientSessionJob defines the contract for a background worker that
// periodically checks that the signed-in session is still accepted by the
// server.
type ClientSessionJob interface {
	// Start launches the background goroutine. It checks every interval,
	// defaulting to 1 minute if interval is zero or negative, and calls
	// onExpired once when the server stops accepting the token. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration, onExpired func())

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
