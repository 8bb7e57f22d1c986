package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/saarzint/candle-recall/internal/config"
	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/store"
	"github.com/saarzint/candle-recall/internal/utils"
	"github.com/saarzint/candle-recall/internal/validators"
	"github.com/saarzint/candle-recall/models"
)

const resetTokenBytes = 32

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, JWT token
// lifecycle and password resets.
type authService struct {
	userRepository       store.UserRepository
	resetTokenRepository store.ResetTokenRepository
	mailer               Mailer
	validator            validators.Validator
	passwords            passwordHasher
	ids                  utils.IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	resetTokenTTL  time.Duration
	resendCooldown time.Duration
	resetLinkBase  string

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(users store.UserRepository, resetTokens store.ResetTokenRepository, mailer Mailer, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       users,
		resetTokenRepository: resetTokens,
		mailer:               mailer,
		validator:            validators.NewRequestValidator(),
		passwords:            newPasswordHasher(cfg.PasswordHashKey),
		ids:                  utils.NewUUIDGenerator(),
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		tokenDuration:        cfg.TokenDuration,
		resetTokenTTL:        cfg.ResetTokenTTL,
		resendCooldown:       cfg.ResendCooldown,
		resetLinkBase:        cfg.ResetLinkBase,
		now:                  time.Now,
		logger:               logger,
	}
}

// RegisterUser validates the sign-up form, hashes the password and creates
// the account. A taken email or username is reported as a field error.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	hash, err := a.passwords.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("error hashing password")
		return models.User{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        normalizeEmail(req.Email),
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hash,
	})
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.User{}, fieldError(ErrEmailTaken, validators.FieldEmail, MsgEmailTaken)
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return models.User{}, fieldError(ErrUsernameTaken, validators.FieldUsername, MsgUsernameTaken)
	case err != nil:
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login authenticates an existing user. An unknown email and a wrong
// password are both reported as [ErrInvalidCredentials].
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(req.Email))
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return models.User{}, ErrInvalidCredentials
	case err != nil:
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.passwords.Verify(user.PasswordHash, req.Password) {
		log.Info().Int64("id", user.UserID).Str("func", "*authService.Login").Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ForgotPassword issues a single-use reset token and mails the link.
//
// Unknown addresses get the same response as known ones. A second request
// for the same account within the resend cooldown returns a [*CooldownError].
func (a *authService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.ForgotPasswordResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.ForgotPasswordResponse{}, err
	}

	now := a.now()
	email := normalizeEmail(req.Email)
	resp := models.ForgotPasswordResponse{Email: email, ResendAfter: now.Add(a.resendCooldown)}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		log.Info().Str("func", "*authService.ForgotPassword").Msg("reset requested for unknown email")
		return resp, nil
	case err != nil:
		log.Err(err).Str("func", "*authService.ForgotPassword").Msg("user search by email failed")
		return models.ForgotPasswordResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	lastSent, err := a.resetTokenRepository.LastResetTokenSentAt(ctx, user.UserID)
	switch {
	case errors.Is(err, store.ErrResetTokenNotFound):
	case err != nil:
		return models.ForgotPasswordResponse{}, err
	default:
		if wait := lastSent.Add(a.resendCooldown).Sub(now); wait > 0 {
			return models.ForgotPasswordResponse{}, &CooldownError{RetryAfter: wait}
		}
	}

	raw, err := utils.RandomToken(resetTokenBytes)
	if err != nil {
		return models.ForgotPasswordResponse{}, err
	}

	err = a.resetTokenRepository.SaveResetToken(ctx, models.PasswordResetToken{
		ID:        a.ids.Generate(),
		UserID:    user.UserID,
		TokenHash: utils.SHA256Hex(raw),
		ExpiresAt: now.Add(a.resetTokenTTL),
		SentAt:    now,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.ForgotPassword").Msg("error saving reset token")
		return models.ForgotPasswordResponse{}, err
	}

	mail := models.Mail{
		To:      user.Email,
		Subject: "Reset your Candle Recall password",
		Body: fmt.Sprintf("Open this link to choose a new password:\n\n%s%s\n\nThe link expires in %s.",
			a.resetLinkBase, raw, a.resetTokenTTL),
	}
	if err = a.mailer.Send(ctx, mail); err != nil {
		log.Err(err).Str("func", "*authService.ForgotPassword").Msg("error sending reset link")
		return models.ForgotPasswordResponse{}, fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}

	return resp, nil
}

// ResetPassword sets a new password using the token from a reset link. The
// token is consumed, so the link works only once.
func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return err
	}

	invalid := fieldError(ErrResetTokenInvalid, validators.FieldToken, MsgResetTokenInvalid)

	token, err := a.resetTokenRepository.FindResetToken(ctx, utils.SHA256Hex(strings.TrimSpace(req.Token)))
	switch {
	case errors.Is(err, store.ErrResetTokenNotFound):
		return invalid
	case err != nil:
		return err
	}

	now := a.now()
	if token.UsedAt != nil || !now.Before(token.ExpiresAt) {
		return invalid
	}

	hash, err := a.passwords.Hash(req.Password)
	if err != nil {
		return err
	}

	if err = a.resetTokenRepository.ConsumeResetToken(ctx, token.ID, now); err != nil {
		if errors.Is(err, store.ErrResetTokenNotFound) {
			return invalid
		}
		return err
	}

	if err = a.userRepository.UpdatePasswordHash(ctx, token.UserID, hash); err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Msg("error updating password")
		return err
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
