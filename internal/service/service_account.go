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
	"github.com/saarzint/candle-recall/internal/validators"
	"github.com/saarzint/candle-recall/models"
)

// accountService implements AccountService. The email change wizard keeps
// its progress in the verification codes table: a verified code for the
// current address unlocks step three, a code for the new address marks
// step four.
type accountService struct {
	userRepository store.UserRepository
	codeRepository store.VerificationCodeRepository
	codes          *codeIssuer
	validator      validators.Validator
	passwords      passwordHasher

	logger *logger.Logger
}

// NewAccountService constructs an AccountService.
func NewAccountService(users store.UserRepository, codes store.VerificationCodeRepository, mailer Mailer, cfg config.App, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: users,
		codeRepository: codes,
		codes: &codeIssuer{
			repository: codes,
			mailer:     mailer,
			hashKey:    cfg.HashKey,
			ttl:        cfg.CodeTTL,
			cooldown:   cfg.ResendCooldown,
			now:        time.Now,
		},
		validator: validators.NewRequestValidator(),
		passwords: newPasswordHasher(cfg.PasswordHashKey),
		logger:    logger,
	}
}

func (s *accountService) Profile(ctx context.Context, userID int64) (models.Profile, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}
	return user.Profile(), nil
}

func (s *accountService) ChangeUsername(ctx context.Context, userID int64, req models.UsernameChangeRequest) (models.Profile, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Profile{}, err
	}

	err := s.userRepository.UpdateUsername(ctx, userID, strings.TrimSpace(req.Username))
	switch {
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return models.Profile{}, fieldError(ErrUsernameTaken, validators.FieldUsername, MsgUsernameTaken)
	case errors.Is(err, store.ErrNoUserWasFound):
		return models.Profile{}, ErrUserNotFound
	case err != nil:
		return models.Profile{}, err
	}

	return s.Profile(ctx, userID)
}

func (s *accountService) ChangePassword(ctx context.Context, userID int64, req models.PasswordChangeRequest) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		return err
	}

	user, err := s.user(ctx, userID)
	if err != nil {
		return err
	}
	if !s.passwords.Verify(user.PasswordHash, req.CurrentPassword) {
		return fieldError(ErrWrongPassword, validators.FieldCurrentPassword, validators.MsgLoginPasswordInvalid)
	}

	hash, err := s.passwords.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepository.UpdatePasswordHash(ctx, userID, hash)
}

// StartEmailChange checks the password and mails a code to the current
// address. Any half-finished change is discarded.
func (s *accountService) StartEmailChange(ctx context.Context, userID int64, req models.PasswordConfirmRequest) (models.EmailChangeState, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.EmailChangeState{}, err
	}

	user, err := s.user(ctx, userID)
	if err != nil {
		return models.EmailChangeState{}, err
	}
	if !s.passwords.Verify(user.PasswordHash, req.Password) {
		return models.EmailChangeState{}, fieldError(ErrWrongPassword, validators.FieldPassword, validators.MsgLoginPasswordInvalid)
	}

	if err = s.codeRepository.DeleteCodes(ctx, userID, models.PurposeEmailNew); err != nil {
		return models.EmailChangeState{}, err
	}

	resendAfter, err := s.codes.issue(ctx, userID, models.PurposeEmailCurrent, user.Email)
	if err != nil {
		return models.EmailChangeState{}, err
	}

	return models.EmailChangeState{
		Step:        models.EmailStepCurrentCode,
		TargetEmail: user.Email,
		ResendAfter: resendAfter,
	}, nil
}

func (s *accountService) VerifyCurrentEmail(ctx context.Context, userID int64, req models.CodeRequest) (models.EmailChangeState, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.EmailChangeState{}, err
	}

	code, err := s.codes.check(ctx, userID, models.PurposeEmailCurrent, req.Code)
	if err != nil {
		return models.EmailChangeState{}, err
	}
	if err = s.codeRepository.MarkCodeVerified(ctx, code.ID); err != nil {
		return models.EmailChangeState{}, err
	}

	return models.EmailChangeState{Step: models.EmailStepNewEmail}, nil
}

func (s *accountService) SubmitNewEmail(ctx context.Context, userID int64, req models.NewEmailRequest) (models.EmailChangeState, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.EmailChangeState{}, err
	}
	if err := s.requireVerifiedCurrent(ctx, userID); err != nil {
		return models.EmailChangeState{}, err
	}

	user, err := s.user(ctx, userID)
	if err != nil {
		return models.EmailChangeState{}, err
	}

	email := normalizeEmail(req.Email)
	if email == user.Email {
		return models.EmailChangeState{}, fieldError(ErrSameEmail, validators.FieldEmail, MsgSameEmail)
	}

	_, err = s.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return models.EmailChangeState{}, fieldError(ErrEmailTaken, validators.FieldEmail, MsgEmailTaken)
	case !errors.Is(err, store.ErrNoUserWasFound):
		return models.EmailChangeState{}, err
	}

	resendAfter, err := s.codes.issue(ctx, userID, models.PurposeEmailNew, email)
	if err != nil {
		return models.EmailChangeState{}, err
	}

	return models.EmailChangeState{
		Step:        models.EmailStepNewCode,
		TargetEmail: email,
		ResendAfter: resendAfter,
	}, nil
}

func (s *accountService) ConfirmNewEmail(ctx context.Context, userID int64, req models.CodeRequest) (models.Profile, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Profile{}, err
	}
	if err := s.requireVerifiedCurrent(ctx, userID); err != nil {
		return models.Profile{}, err
	}

	code, err := s.codes.check(ctx, userID, models.PurposeEmailNew, req.Code)
	if err != nil {
		return models.Profile{}, err
	}

	err = s.userRepository.UpdateEmail(ctx, userID, code.TargetEmail)
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.Profile{}, fieldError(ErrEmailTaken, validators.FieldEmail, MsgEmailTaken)
	case err != nil:
		return models.Profile{}, err
	}

	if err = s.codeRepository.DeleteCodes(ctx, userID, models.PurposeEmailCurrent, models.PurposeEmailNew); err != nil {
		s.logger.Err(err).Str("func", "*accountService.ConfirmNewEmail").Msg("error deleting used codes")
	}

	return s.Profile(ctx, userID)
}

// ResendEmailCode mails the code of the step the wizard is waiting on.
func (s *accountService) ResendEmailCode(ctx context.Context, userID int64) (models.EmailChangeState, error) {
	next, err := s.codeRepository.FindCode(ctx, userID, models.PurposeEmailNew)
	switch {
	case err == nil:
		resendAfter, err := s.codes.issue(ctx, userID, models.PurposeEmailNew, next.TargetEmail)
		if err != nil {
			return models.EmailChangeState{}, err
		}
		return models.EmailChangeState{Step: models.EmailStepNewCode, TargetEmail: next.TargetEmail, ResendAfter: resendAfter}, nil
	case !errors.Is(err, store.ErrCodeNotFound):
		return models.EmailChangeState{}, err
	}

	current, err := s.codeRepository.FindCode(ctx, userID, models.PurposeEmailCurrent)
	switch {
	case errors.Is(err, store.ErrCodeNotFound) || err == nil && current.Verified:
		return models.EmailChangeState{}, ErrStepOutOfOrder
	case err != nil:
		return models.EmailChangeState{}, err
	}

	resendAfter, err := s.codes.issue(ctx, userID, models.PurposeEmailCurrent, current.TargetEmail)
	if err != nil {
		return models.EmailChangeState{}, err
	}
	return models.EmailChangeState{Step: models.EmailStepCurrentCode, TargetEmail: current.TargetEmail, ResendAfter: resendAfter}, nil
}

func (s *accountService) RequestDeletionCode(ctx context.Context, userID int64) (models.CodeSentResponse, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return models.CodeSentResponse{}, err
	}

	resendAfter, err := s.codes.issue(ctx, userID, models.PurposeAccountDelete, user.Email)
	if err != nil {
		return models.CodeSentResponse{}, err
	}

	return models.CodeSentResponse{Email: user.Email, ResendAfter: resendAfter}, nil
}

// DeleteAccount removes the user and everything they own once both the
// emailed code and the password check out.
func (s *accountService) DeleteAccount(ctx context.Context, userID int64, req models.DeleteAccountRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return err
	}

	if _, err := s.codes.check(ctx, userID, models.PurposeAccountDelete, req.Code); err != nil {
		return err
	}

	user, err := s.user(ctx, userID)
	if err != nil {
		return err
	}
	if !s.passwords.Verify(user.PasswordHash, req.Password) {
		return fieldError(ErrWrongPassword, validators.FieldPassword, validators.MsgLoginPasswordInvalid)
	}

	if err = s.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Str("func", "*accountService.DeleteAccount").Msg("error deleting user")
		return err
	}

	log.Info().Int64("id", userID).Str("func", "*accountService.DeleteAccount").Msg("account deleted")
	return nil
}

func (s *accountService) requireVerifiedCurrent(ctx context.Context, userID int64) error {
	current, err := s.codeRepository.FindCode(ctx, userID, models.PurposeEmailCurrent)
	switch {
	case errors.Is(err, store.ErrCodeNotFound):
		return ErrStepOutOfOrder
	case err != nil:
		return err
	case !current.Verified:
		return ErrStepOutOfOrder
	}
	return nil
}

func (s *accountService) user(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return models.User{}, ErrUserNotFound
	case err != nil:
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user, nil
}
