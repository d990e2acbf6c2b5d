package service

import (
	"context"

	"github.com/alternajob/user-service/models"
)

// UserService implements the five user-management use cases. Every operation
// executes as one logical unit of work against the store; errors are
// sentinel-based and matched with errors.Is (see the package errors and
// store sentinels).
type UserService interface {
	// ListUsers returns one response shape per stored user, in store
	// enumeration order. Read-only.
	ListUsers(ctx context.Context) ([]models.UserResponse, error)

	// GetUser returns the response shape for the user with that id.
	// Fails with store.ErrUserNotFound if no such id exists.
	GetUser(ctx context.Context, id int64) (models.UserResponse, error)

	// CreateUser hashes the password, encrypts the name fields, persists a
	// new user and returns its response shape. Fails with
	// store.ErrUsernameAlreadyExists on a duplicate username.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.UserResponse, error)

	// UpdateUser applies a partial-merge patch: only present fields
	// overwrite existing ones, a username change is re-checked for
	// uniqueness against all other users, passwords are re-hashed and name
	// fields re-encrypted. updated_at is refreshed whenever persistence is
	// reached. Fails with store.ErrUserNotFound or
	// store.ErrUsernameAlreadyExists.
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.UserResponse, error)

	// DeleteUser removes the user permanently. Fails with
	// store.ErrUserNotFound if the id does not exist.
	DeleteUser(ctx context.Context, id int64) error
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating or logging.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}
