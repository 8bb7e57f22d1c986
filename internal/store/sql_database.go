package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/saarzint/candle-recall/internal/logger"
)

const (
	maxRetries    = 3
	retryBaseWait = 50 * time.Millisecond
)

// DB wraps a connection pool with an error classifier used to retry
// transient failures.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened pool. classifier may be nil, which disables
// retries.
func NewDB(conn *sql.DB, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{DB: conn, errorClassificator: classifier, logger: log}
}

// withRetry runs fn and repeats it with a growing delay while the classifier
// reports the error as retryable.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err = fn()
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		wait := retryBaseWait * time.Duration(1<<attempt)
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.withRetry").
			Int("attempt", attempt+1).
			Dur("wait", wait).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(wait):
		}
	}
	return err
}

// inTx runs fn in a transaction, committing on success and rolling back
// otherwise. The whole transaction is retried on retryable errors.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return db.withRetry(ctx, func() error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}

		if err := fn(tx); err != nil {
			_ = tx.Rollback()
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
}
