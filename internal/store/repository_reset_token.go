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

type resetTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewResetTokenRepository constructs a [ResetTokenRepository] on db.
func NewResetTokenRepository(db *DB, logger *logger.Logger) ResetTokenRepository {
	logger.Debug().Msg("creating reset token repository")
	return &resetTokenRepository{
		db:     db,
		logger: logger,
	}
}

func (r *resetTokenRepository) SaveResetToken(ctx context.Context, token models.PasswordResetToken) error {
	log := logger.FromContext(ctx)

	err := r.db.withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, saveResetToken, token.ID, token.UserID, token.TokenHash, token.ExpiresAt, token.SentAt)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.SaveResetToken").Msg("error saving reset token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// LastResetTokenSentAt returns when the newest reset link of the user was
// sent, or [ErrResetTokenNotFound] when none was ever sent.
func (r *resetTokenRepository) LastResetTokenSentAt(ctx context.Context, userID int64) (time.Time, error) {
	log := logger.FromContext(ctx)

	var sentAt time.Time
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, lastResetTokenSentAt, userID).Scan(&sentAt)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return time.Time{}, ErrResetTokenNotFound
	case err != nil:
		log.Err(err).Str("func", "*resetTokenRepository.LastResetTokenSentAt").Msg("error reading last reset token")
		return time.Time{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return sentAt, nil
}

func (r *resetTokenRepository) FindResetToken(ctx context.Context, tokenHash string) (models.PasswordResetToken, error) {
	log := logger.FromContext(ctx)

	var (
		token  models.PasswordResetToken
		usedAt sql.NullTime
	)
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, findResetToken, tokenHash).
			Scan(&token.ID, &token.UserID, &token.TokenHash, &token.ExpiresAt, &token.SentAt, &usedAt)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.PasswordResetToken{}, ErrResetTokenNotFound
	case err != nil:
		log.Err(err).Str("func", "*resetTokenRepository.FindResetToken").Msg("error reading reset token")
		return models.PasswordResetToken{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if usedAt.Valid {
		token.UsedAt = &usedAt.Time
	}

	return token, nil
}

// ConsumeResetToken marks the token used. A token that is already used is
// reported as [ErrResetTokenNotFound], so a link works only once.
func (r *resetTokenRepository) ConsumeResetToken(ctx context.Context, id string, usedAt time.Time) error {
	log := logger.FromContext(ctx)

	var res sql.Result
	err := r.db.withRetry(ctx, func() (err error) {
		res, err = r.db.ExecContext(ctx, consumeResetToken, id, usedAt)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.ConsumeResetToken").Msg("error consuming reset token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrResetTokenNotFound)
}

func (r *resetTokenRepository) DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	return deleteExpired(ctx, r.db, "*resetTokenRepository.DeleteExpiredResetTokens", deleteExpiredResetTokens, now)
}

func deleteExpired(ctx context.Context, db *DB, fn, query string, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	var res sql.Result
	err := db.withRetry(ctx, func() (err error) {
		res, err = db.ExecContext(ctx, query, now)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error deleting expired rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n, nil
}
