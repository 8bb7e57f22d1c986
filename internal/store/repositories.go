package store

import (
	"context"
	"fmt"

	"github.com/saarzint/candle-recall/internal/config"
	"github.com/saarzint/candle-recall/internal/logger"
)

// Repositories groups the server repositories sharing one PostgreSQL pool.
type Repositories struct {
	UserRepository             UserRepository
	ResetTokenRepository       ResetTokenRepository
	VerificationCodeRepository VerificationCodeRepository
	ReportRepository           ReportRepository

	db *DB
}

// NewRepositories connects to PostgreSQL, migrates the schema and builds
// every repository.
func NewRepositories(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Repositories, error) {
	logger.Info().Msg("creating new repositories...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	return NewRepositoriesOnDB(db, logger), nil
}

// NewRepositoriesOnDB builds the repositories on an existing pool.
func NewRepositoriesOnDB(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:             NewUserRepository(db, logger),
		ResetTokenRepository:       NewResetTokenRepository(db, logger),
		VerificationCodeRepository: NewVerificationCodeRepository(db, logger),
		ReportRepository:           NewReportRepository(db, logger),
		db:                         db,
	}
}

// Ping checks that the database answers. It backs the health service.
func (r *Repositories) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close releases the pool.
func (r *Repositories) Close() error {
	return r.db.Close()
}
