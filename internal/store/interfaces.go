package store

import (
	"context"

	"github.com/alternajob/user-service/models"
)

// UserRepository is the persistence contract for user accounts.
//
// Implementations must back the username uniqueness invariant with a unique
// index at the store layer and translate constraint violations into
// [ErrUsernameAlreadyExists]; the application-level existence pre-checks are
// advisory only and do not survive concurrent writers on their own.
type UserRepository interface {
	// GetAllUsers enumerates every stored user, ordered by id.
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// GetUserByID returns the user with the given id, or [ErrUserNotFound].
	GetUserByID(ctx context.Context, id int64) (models.User, error)

	// ExistsByID reports whether a user with the given id exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// ExistsByUsername reports whether any user holds the given username.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByUsernameExcluding reports whether a user other than id holds
	// the given username. Used for the uniqueness re-check on update.
	ExistsByUsernameExcluding(ctx context.Context, username string, id int64) (bool, error)

	// CreateUser inserts a new user and returns the persisted row with
	// server-assigned id and timestamps. A unique violation is returned as
	// [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateUser applies a partial update and returns the persisted row.
	// updated_at is refreshed unconditionally. Zero matched rows are
	// returned as [ErrUserNotFound], unique violations as
	// [ErrUsernameAlreadyExists].
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the row permanently. Zero affected rows are
	// returned as [ErrUserNotFound].
	DeleteUser(ctx context.Context, id int64) error
}
