package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alternajob/user-service/models"
)

// stubUserService records which inner methods were reached.
type stubUserService struct {
	listCalled   bool
	getCalled    bool
	createCalled bool
	updateCalled bool
	deleteCalled bool
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]models.UserResponse, error) {
	s.listCalled = true
	return nil, nil
}

func (s *stubUserService) GetUser(ctx context.Context, id int64) (models.UserResponse, error) {
	s.getCalled = true
	return models.UserResponse{ID: id}, nil
}

func (s *stubUserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.UserResponse, error) {
	s.createCalled = true
	return models.UserResponse{Username: req.Username}, nil
}

func (s *stubUserService) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.UserResponse, error) {
	s.updateCalled = true
	return models.UserResponse{ID: id}, nil
}

func (s *stubUserService) DeleteUser(ctx context.Context, id int64) error {
	s.deleteCalled = true
	return nil
}

func newWrappedStub() (*stubUserService, UserService) {
	inner := &stubUserService{}
	return inner, NewUserValidationService().Wrap(inner)
}

func TestUserValidationService_CreateUser_RejectsInvalid(t *testing.T) {
	inner, wrapped := newWrappedStub()

	_, err := wrapped.CreateUser(context.Background(), models.CreateUserRequest{
		Username: "x", // too short
		Password: "s3cret",
		Role:     models.RoleAdmin,
		Nom:      "D",
		Prenom:   "A",
	})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.False(t, inner.createCalled, "invalid request must not reach the core service")
}

func TestUserValidationService_CreateUser_DelegatesValid(t *testing.T) {
	inner, wrapped := newWrappedStub()

	response, err := wrapped.CreateUser(context.Background(), models.CreateUserRequest{
		Username: "alice",
		Password: "s3cret",
		Role:     models.RoleCandidat,
		Nom:      "Dupont",
		Prenom:   "Alice",
	})
	require.NoError(t, err)
	assert.True(t, inner.createCalled)
	assert.Equal(t, "alice", response.Username)
}

func TestUserValidationService_UpdateUser_RejectsBlankPatchField(t *testing.T) {
	inner, wrapped := newWrappedStub()

	blank := "  "
	_, err := wrapped.UpdateUser(context.Background(), 1, models.UpdateUserRequest{Nom: &blank})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.False(t, inner.updateCalled)
}

func TestUserValidationService_UpdateUser_DelegatesEmptyPatch(t *testing.T) {
	inner, wrapped := newWrappedStub()

	_, err := wrapped.UpdateUser(context.Background(), 1, models.UpdateUserRequest{})
	require.NoError(t, err)
	assert.True(t, inner.updateCalled, "an empty patch is valid and must be delegated")
}

func TestUserValidationService_ReadAndDeletePassThrough(t *testing.T) {
	inner, wrapped := newWrappedStub()

	_, err := wrapped.ListUsers(context.Background())
	require.NoError(t, err)
	_, err = wrapped.GetUser(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, wrapped.DeleteUser(context.Background(), 1))

	assert.True(t, inner.listCalled)
	assert.True(t, inner.getCalled)
	assert.True(t, inner.deleteCalled)
}
