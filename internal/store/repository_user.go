package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/models"
)

const usernameConstraint = "users_username_key"

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and profile updates against the
// "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned UserID and CreatedAt.
//
// Error handling:
//   - unique_violation on the username → [ErrUsernameAlreadyExists].
//   - any other unique_violation → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, createUser, user.Email, user.Username, user.PasswordHash).
			Scan(&created.UserID, &created.Email, &created.Username, &created.PasswordHash, &created.CreatedAt)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, uniqueUserError(err)
	}

	return created, nil
}

// FindUserByEmail looks a user up by email, ignoring case.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID looks a user up by primary key.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findOne(ctx context.Context, fn, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, arg).
			Scan(&user.UserID, &user.Email, &user.Username, &user.PasswordHash, &user.CreatedAt)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", fn).Msg("error looking user up")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// UpdateUsername changes the handle of the user.
func (r *userRepository) UpdateUsername(ctx context.Context, userID int64, username string) error {
	return r.updateOne(ctx, "*userRepository.UpdateUsername", updateUsername, userID, username)
}

// UpdatePasswordHash replaces the stored password hash.
func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	return r.updateOne(ctx, "*userRepository.UpdatePasswordHash", updatePasswordHash, userID, passwordHash)
}

// UpdateEmail changes the sign-in address.
func (r *userRepository) UpdateEmail(ctx context.Context, userID int64, email string) error {
	return r.updateOne(ctx, "*userRepository.UpdateEmail", updateEmail, userID, email)
}

// DeleteUser removes the user. Reports, codes and reset tokens cascade.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	var res sql.Result
	err := r.db.withRetry(ctx, func() (err error) {
		res, err = r.db.ExecContext(ctx, deleteUser, userID)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrNoUserWasFound)
}

func (r *userRepository) updateOne(ctx context.Context, fn, query string, userID int64, value string) error {
	log := logger.FromContext(ctx)

	var res sql.Result
	err := r.db.withRetry(ctx, func() (err error) {
		res, err = r.db.ExecContext(ctx, query, userID, value)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error updating user")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return uniqueUserError(err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrNoUserWasFound)
}

func uniqueUserError(err error) error {
	if postgresError(err) != pgerrcode.UniqueViolation {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if constraintName(err) == usernameConstraint {
		return ErrUsernameAlreadyExists
	}
	return ErrEmailAlreadyExists
}

// expectAffected returns notFound when res reports zero affected rows.
func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
