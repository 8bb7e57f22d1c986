package store

import (
	"context"
	"time"

	"github.com/saarzint/candle-recall/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUsername(ctx context.Context, userID int64, username string) error
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
	UpdateEmail(ctx context.Context, userID int64, email string) error
	DeleteUser(ctx context.Context, userID int64) error
}

// ResetTokenRepository persists password reset tokens.
type ResetTokenRepository interface {
	SaveResetToken(ctx context.Context, token models.PasswordResetToken) error
	LastResetTokenSentAt(ctx context.Context, userID int64) (time.Time, error)
	FindResetToken(ctx context.Context, tokenHash string) (models.PasswordResetToken, error)
	ConsumeResetToken(ctx context.Context, id string, usedAt time.Time) error
	DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

// VerificationCodeRepository persists emailed one-time codes. There is at
// most one pending code per user and purpose.
type VerificationCodeRepository interface {
	UpsertCode(ctx context.Context, code models.VerificationCode) error
	FindCode(ctx context.Context, userID int64, purpose models.CodePurpose) (models.VerificationCode, error)
	MarkCodeVerified(ctx context.Context, id int64) error
	DeleteCodes(ctx context.Context, userID int64, purposes ...models.CodePurpose) error
	DeleteExpiredCodes(ctx context.Context, now time.Time) (int64, error)
}

// ReportRepository persists reports and their tags.
type ReportRepository interface {
	CreateReport(ctx context.Context, report models.Report) (models.Report, error)
	GetReport(ctx context.Context, userID, reportID int64) (models.Report, error)
	ListReports(ctx context.Context, filter models.ReportFilter, now time.Time) ([]models.Report, error)
	UpdateReport(ctx context.Context, report models.Report) (models.Report, error)
	DeleteReport(ctx context.Context, userID, reportID int64) error
	ListTags(ctx context.Context, userID int64) ([]string, error)
}
