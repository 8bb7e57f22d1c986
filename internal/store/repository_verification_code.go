package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/models"
)

type verificationCodeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVerificationCodeRepository constructs a [VerificationCodeRepository]
// on db.
func NewVerificationCodeRepository(db *DB, logger *logger.Logger) VerificationCodeRepository {
	logger.Debug().Msg("creating verification code repository")
	return &verificationCodeRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertCode stores a fresh code for the user and purpose, replacing the
// pending one and resetting its verified flag.
func (r *verificationCodeRepository) UpsertCode(ctx context.Context, code models.VerificationCode) error {
	log := logger.FromContext(ctx)

	err := r.db.withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, upsertCode,
			code.UserID, string(code.Purpose), code.CodeHash, code.TargetEmail, code.ExpiresAt, code.SentAt)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*verificationCodeRepository.UpsertCode").Msg("error saving verification code")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *verificationCodeRepository) FindCode(ctx context.Context, userID int64, purpose models.CodePurpose) (models.VerificationCode, error) {
	log := logger.FromContext(ctx)

	var (
		code    models.VerificationCode
		purpStr string
	)
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, findCode, userID, string(purpose)).Scan(
			&code.ID, &code.UserID, &purpStr, &code.CodeHash, &code.TargetEmail,
			&code.Verified, &code.ExpiresAt, &code.SentAt,
		)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.VerificationCode{}, ErrCodeNotFound
	case err != nil:
		log.Err(err).Str("func", "*verificationCodeRepository.FindCode").Msg("error reading verification code")
		return models.VerificationCode{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	code.Purpose = models.CodePurpose(purpStr)

	return code, nil
}

func (r *verificationCodeRepository) MarkCodeVerified(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	var res sql.Result
	err := r.db.withRetry(ctx, func() (err error) {
		res, err = r.db.ExecContext(ctx, markCodeVerified, id)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*verificationCodeRepository.MarkCodeVerified").Msg("error marking code verified")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrCodeNotFound)
}

// DeleteCodes removes the codes of the user for the given purposes.
// Missing rows are not an error.
func (r *verificationCodeRepository) DeleteCodes(ctx context.Context, userID int64, purposes ...models.CodePurpose) error {
	if len(purposes) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	names := make([]string, len(purposes))
	for i, p := range purposes {
		names[i] = string(p)
	}

	err := r.db.withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, deleteCodes, userID, names)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*verificationCodeRepository.DeleteCodes").Msg("error deleting verification codes")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *verificationCodeRepository) DeleteExpiredCodes(ctx context.Context, now time.Time) (int64, error) {
	return deleteExpired(ctx, r.db, "*verificationCodeRepository.DeleteExpiredCodes", deleteExpiredCodes, now)
}
