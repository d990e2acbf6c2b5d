package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alternajob/user-service/internal/logger"
	"github.com/alternajob/user-service/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It runs unchanged against PostgreSQL and SQLite; the wrapped [DB] carries
// the backend-specific error classifier.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// isUniqueViolation reports whether err is a unique-constraint violation in
// either supported backend.
func isUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation || isSQLiteUniqueViolation(err)
}

// scanUser reads one full user row in [userColumns] order.
func scanUser(row interface{ Scan(...any) error }, user *models.User) error {
	return row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.Nom,
		&user.Prenom,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}

// GetAllUsers returns every stored user ordered by id. An empty table yields
// an empty (non-nil) slice.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllUsers)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.GetAllUsers").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err = scanUser(rows, &user); err != nil {
			log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error: rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// GetUserByID retrieves one user row by id.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, getUserByID, id)

	if err := scanUser(row, &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%w: id %d", ErrUserNotFound, id)
		}
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// ExistsByID reports whether a row with the given id exists.
func (r *userRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, existsUserByID, id)
}

// ExistsByUsername reports whether any row holds the given username.
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, existsUserByUsername, username)
}

// ExistsByUsernameExcluding reports whether a row other than id holds the
// given username.
func (r *userRepository) ExistsByUsernameExcluding(ctx context.Context, username string, id int64) (bool, error) {
	return r.exists(ctx, existsUserByUsernameExcluding, username, id)
}

func (r *userRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*userRepository.exists").Msg("error: existence check failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// CreateUser persists a new user record inside its own transaction and
// returns the fully populated [models.User] with server-assigned fields
// (ID, CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique_violation on the username index → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var saved models.User
	row := tx.QueryRowContext(ctx, createUser,
		user.Username, user.PasswordHash, string(user.Role), user.Nom, user.Prenom)

	if err = scanUser(row, &saved); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, fmt.Errorf("%w: %s", ErrUsernameAlreadyExists, user.Username)
		}
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: insert failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: commit failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

// UpdateUser applies a dynamic partial UPDATE built by [buildUpdateQuery]
// inside its own transaction and returns the persisted row. updated_at is
// refreshed unconditionally.
//
// Error handling:
//   - no matching row → [ErrUserNotFound].
//   - unique_violation on the username index → [ErrUsernameAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var saved models.User
	row := tx.QueryRowContext(ctx, query, args...)

	if err = scanUser(row, &saved); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, fmt.Errorf("%w: id %d", ErrUserNotFound, update.ID)
		case isUniqueViolation(err):
			// The username column is the only unique index, so the update
			// descriptor necessarily carried a username here.
			name := ""
			if update.Username != nil {
				name = *update.Username
			}
			return models.User{}, fmt.Errorf("%w: %s", ErrUsernameAlreadyExists, name)
		default:
			log.Err(err).
				Str("func", "*userRepository.UpdateUser").
				Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
				Msg("error: update failed")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: commit failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

// DeleteUser removes the row permanently. Zero affected rows are reported as
// [ErrUserNotFound] so the caller never needs a separate existence probe to
// distinguish "deleted" from "was never there".
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.DeleteUser").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: rows affected")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", ErrUserNotFound, id)
	}

	return nil
}
