package service

import (
	"context"
	"fmt"

	"github.com/alternajob/user-service/internal/validators"
	"github.com/alternajob/user-service/models"
)

// UserValidationService decorates a [UserService] with request validation.
// Every mutating operation validates its request shape before delegating;
// a failed validation is wrapped in [ErrInvalidDataProvided] so transport
// layers can map the whole family to one status.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.UserResponse, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) GetUser(ctx context.Context, id int64) (models.UserResponse, error) {
	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.UserResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.UserResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateUser(ctx, req)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.UserResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.UserResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateUser(ctx, id, req)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id int64) error {
	return v.inner.DeleteUser(ctx, id)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}
