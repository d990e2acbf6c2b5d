// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the user-management server.
//
// The primary abstraction is [UserDirectory], which decouples client-side
// callers from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPUserDirectory]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/alternajob/user-service/models"
)

// UserDirectory defines transport-agnostic access to the user-management
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type UserDirectory interface {
	// ListUsers fetches every user known to the server.
	ListUsers(ctx context.Context) ([]models.UserResponse, error)

	// GetUser fetches one user by id. Returns [ErrNotFound] (wrapped) if the
	// id does not exist on the server.
	GetUser(ctx context.Context, id int64) (models.UserResponse, error)

	// CreateUser registers a new user and returns its server-side record.
	// Returns [ErrConflict] (wrapped) on a duplicate username and
	// [ErrBadRequest] on a rejected request shape.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.UserResponse, error)

	// UpdateUser applies a partial patch to the user with that id. Returns
	// [ErrNotFound], [ErrConflict] or [ErrBadRequest] (wrapped) following the
	// server's verdict.
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.UserResponse, error)

	// DeleteUser removes the user with that id. Returns [ErrNotFound]
	// (wrapped) if the id does not exist on the server.
	DeleteUser(ctx context.Context, id int64) error
}
