package service

import (
	"context"
	"time"

	"github.com/saarzint/candle-recall/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles sign-up, sign-in, session tokens and the forgotten
// password flow.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ForgotPassword mails a reset link when the address belongs to an
	// account. The response is the same whether or not it does.
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
}

// AccountService manages the profile of a signed-in user.
type AccountService interface {
	Profile(ctx context.Context, userID int64) (models.Profile, error)
	ChangeUsername(ctx context.Context, userID int64, req models.UsernameChangeRequest) (models.Profile, error)
	ChangePassword(ctx context.Context, userID int64, req models.PasswordChangeRequest) error

	// The email change wizard. Each step returns the state of the next one.
	StartEmailChange(ctx context.Context, userID int64, req models.PasswordConfirmRequest) (models.EmailChangeState, error)
	VerifyCurrentEmail(ctx context.Context, userID int64, req models.CodeRequest) (models.EmailChangeState, error)
	SubmitNewEmail(ctx context.Context, userID int64, req models.NewEmailRequest) (models.EmailChangeState, error)
	ConfirmNewEmail(ctx context.Context, userID int64, req models.CodeRequest) (models.Profile, error)
	ResendEmailCode(ctx context.Context, userID int64) (models.EmailChangeState, error)

	RequestDeletionCode(ctx context.Context, userID int64) (models.CodeSentResponse, error)
	DeleteAccount(ctx context.Context, userID int64, req models.DeleteAccountRequest) error
}

// ReportService manages the reports of a user.
type ReportService interface {
	CreateReport(ctx context.Context, userID int64, req models.ReportCreateRequest) (models.Report, error)
	GetReport(ctx context.Context, userID, reportID int64) (models.Report, error)
	ListReports(ctx context.Context, filter models.ReportFilter) (models.ReportList, error)
	UpdateReport(ctx context.Context, userID, reportID int64, req models.ReportUpdateRequest) (models.Report, error)
	DeleteReport(ctx context.Context, userID, reportID int64) error
	AddTag(ctx context.Context, userID, reportID int64, req models.TagRequest) (models.Report, error)
	RemoveTag(ctx context.Context, userID, reportID int64, tag string) (models.Report, error)
	ListTags(ctx context.Context, userID int64) ([]string, error)
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// MaintenanceService purges expired one-time credentials.
type MaintenanceService interface {
	PurgeExpired(ctx context.Context, now time.Time) (models.PurgeResult, error)
}

// Mailer delivers transactional email.
type Mailer interface {
	Send(ctx context.Context, msg models.Mail) error
}
