package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/store"
	"github.com/saarzint/candle-recall/internal/utils"
	"github.com/saarzint/candle-recall/internal/validators"
	"github.com/saarzint/candle-recall/models"
)

// codeIssuer sends and checks the six digit codes of the account flows.
// Only the HMAC of a code is stored.
type codeIssuer struct {
	repository store.VerificationCodeRepository
	mailer     Mailer
	hashKey    string
	ttl        time.Duration
	cooldown   time.Duration
	now        func() time.Time
}

var codeSubjects = map[models.CodePurpose]string{
	models.PurposeEmailCurrent:  "Confirm your email change",
	models.PurposeEmailNew:      "Confirm your new email",
	models.PurposeAccountDelete: "Confirm account deletion",
}

// issue mails a fresh code for purpose to the address to and returns when
// the next one may be requested. A pending code younger than the cooldown
// blocks the request with a [*CooldownError].
func (c *codeIssuer) issue(ctx context.Context, userID int64, purpose models.CodePurpose, to string) (time.Time, error) {
	now := c.now()

	pending, err := c.repository.FindCode(ctx, userID, purpose)
	switch {
	case errors.Is(err, store.ErrCodeNotFound):
	case err != nil:
		return time.Time{}, err
	default:
		if wait := pending.SentAt.Add(c.cooldown).Sub(now); wait > 0 {
			return time.Time{}, &CooldownError{RetryAfter: wait}
		}
	}

	code, err := utils.RandomDigits(validators.VerificationCodeLength)
	if err != nil {
		return time.Time{}, err
	}

	err = c.repository.UpsertCode(ctx, models.VerificationCode{
		UserID:      userID,
		Purpose:     purpose,
		CodeHash:    utils.HashString(code, c.hashKey),
		TargetEmail: to,
		ExpiresAt:   now.Add(c.ttl),
		SentAt:      now,
	})
	if err != nil {
		return time.Time{}, err
	}

	mail := models.Mail{
		To:      to,
		Subject: codeSubjects[purpose],
		Body:    fmt.Sprintf("Your Candle Recall code is %s. It expires in %s.", code, c.ttl),
	}
	if err = c.mailer.Send(ctx, mail); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*codeIssuer.issue").Msg("error sending code")
		return time.Time{}, fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}

	return now.Add(c.cooldown), nil
}

// check compares code with the pending one for purpose. A missing code means
// the step was skipped.
func (c *codeIssuer) check(ctx context.Context, userID int64, purpose models.CodePurpose, code string) (models.VerificationCode, error) {
	pending, err := c.repository.FindCode(ctx, userID, purpose)
	switch {
	case errors.Is(err, store.ErrCodeNotFound):
		return models.VerificationCode{}, ErrStepOutOfOrder
	case err != nil:
		return models.VerificationCode{}, err
	}

	if pending.Expired(c.now()) {
		return models.VerificationCode{}, fieldError(ErrCodeExpired, validators.FieldCode, MsgCodeExpired)
	}
	if !utils.EqualHashes(pending.CodeHash, utils.HashString(strings.TrimSpace(code), c.hashKey)) {
		return models.VerificationCode{}, fieldError(ErrCodeInvalid, validators.FieldCode, MsgCodeIncorrect)
	}

	return pending, nil
}
