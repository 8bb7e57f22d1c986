package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/models"
)

const (
	saveSession = `INSERT INTO sessions (id, email, token, saved_at)
    VALUES (1, ?, ?, ?)
    ON CONFLICT (id) DO UPDATE
    SET email = excluded.email, token = excluded.token, saved_at = excluded.saved_at;`

	loadSession  = `SELECT email, token, saved_at FROM sessions WHERE id = 1;`
	clearSession = `DELETE FROM sessions;`
)

// sessionRepository keeps a single session row in the client SQLite file.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] on db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSession replaces the stored session.
func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	if _, err := r.db.ExecContext(ctx, saveSession, session.Email, session.Token, session.SavedAt.UTC()); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// LoadSession returns the stored session or [ErrLocalSessionNotFound].
func (r *sessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	var session models.Session
	err := r.db.QueryRowContext(ctx, loadSession).Scan(&session.Email, &session.Token, &session.SavedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Session{}, ErrLocalSessionNotFound
	case err != nil:
		r.logger.Err(err).Str("func", "*sessionRepository.LoadSession").Msg("error loading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return session, nil
}

// ClearSession forgets the signed-in user.
func (r *sessionRepository) ClearSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearSession); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.ClearSession").Msg("error clearing session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
