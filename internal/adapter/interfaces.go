// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Candle Recall server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). Field
// level failures are additionally available through [errors.As] with
// [models.FieldErrors].
package adapter

import (
	"context"

	"github.com/saarzint/candle-recall/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Candle
// Recall server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. An empty token signs the adapter out.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the returned bearer token is
	// stored via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login signs in. On success the returned bearer token is stored via
	// SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// ForgotPassword asks the server to mail a reset link. A request inside
	// the resend cooldown fails with a [*RateLimitError].
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.ForgotPasswordResponse, error)

	// ResetPassword sets a new password with the token from a reset link.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error

	Profile(ctx context.Context) (models.Profile, error)
	ChangeUsername(ctx context.Context, req models.UsernameChangeRequest) (models.Profile, error)
	ChangePassword(ctx context.Context, req models.PasswordChangeRequest) error

	// StartEmailChange, VerifyCurrentEmail, SubmitNewEmail and
	// ConfirmNewEmail are the four steps of the email change wizard.
	StartEmailChange(ctx context.Context, req models.PasswordConfirmRequest) (models.EmailChangeState, error)
	VerifyCurrentEmail(ctx context.Context, req models.CodeRequest) (models.EmailChangeState, error)
	SubmitNewEmail(ctx context.Context, req models.NewEmailRequest) (models.EmailChangeState, error)
	ConfirmNewEmail(ctx context.Context, req models.CodeRequest) (models.Profile, error)
	ResendEmailCode(ctx context.Context) (models.EmailChangeState, error)

	RequestDeletionCode(ctx context.Context) (models.CodeSentResponse, error)
	DeleteAccount(ctx context.Context, req models.DeleteAccountRequest) error

	CreateReport(ctx context.Context, req models.ReportCreateRequest) (models.Report, error)
	ListReports(ctx context.Context, filter models.ReportFilter) (models.ReportList, error)
	GetReport(ctx context.Context, reportID int64) (models.Report, error)
	UpdateReport(ctx context.Context, reportID int64, req models.ReportUpdateRequest) (models.Report, error)
	DeleteReport(ctx context.Context, reportID int64) error
	AddTag(ctx context.Context, reportID int64, req models.TagRequest) (models.Report, error)
	RemoveTag(ctx context.Context, reportID int64, tag string) (models.Report, error)
	ListTags(ctx context.Context) ([]string, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
