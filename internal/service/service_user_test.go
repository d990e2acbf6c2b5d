// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alternajob/user-service/internal/crypto"
	"github.com/alternajob/user-service/internal/logger"
	"github.com/alternajob/user-service/internal/store"
	"github.com/alternajob/user-service/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	getAllFn          func(ctx context.Context) ([]models.User, error)
	getByIDFn         func(ctx context.Context, id int64) (models.User, error)
	existsByIDFn      func(ctx context.Context, id int64) (bool, error)
	existsFn          func(ctx context.Context, username string) (bool, error)
	existsExcludingFn func(ctx context.Context, username string, id int64) (bool, error)
	createFn          func(ctx context.Context, user models.User) (models.User, error)
	updateFn          func(ctx context.Context, update models.UserUpdate) (models.User, error)
	deleteFn          func(ctx context.Context, id int64) error
}

func (m *mockUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if m.existsByIDFn != nil {
		return m.existsByIDFn(ctx, id)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsByUsernameExcluding(ctx context.Context, username string, id int64) (bool, error) {
	if m.existsExcludingFn != nil {
		return m.existsExcludingFn(ctx, username, id)
	}
	return false, nil
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, update)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testCipherKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

// newRawUserService bypasses the validation wrapper and wires real crypto
// collaborators (minimum bcrypt cost to keep the tests fast).
func newRawUserService(t *testing.T, repo *mockUserRepository) (*userService, crypto.FieldCipher) {
	t.Helper()

	cipher, err := crypto.NewFieldCipher(testCipherKey)
	require.NoError(t, err)

	return &userService{
		userRepository: repo,
		hasher:         crypto.NewPasswordHasher(bcrypt.MinCost),
		cipher:         cipher,
		logger:         logger.Nop(),
	}, cipher
}

func encryptedUser(t *testing.T, cipher crypto.FieldCipher, id int64, username, nom, prenom string) models.User {
	t.Helper()

	encryptedNom, err := cipher.Encrypt(nom)
	require.NoError(t, err)
	encryptedPrenom, err := cipher.Encrypt(prenom)
	require.NoError(t, err)

	return models.User{
		ID:           id,
		Username:     username,
		PasswordHash: "$2a$04$fakehash",
		Role:         models.RoleCandidat,
		Nom:          encryptedNom,
		Prenom:       encryptedPrenom,
	}
}

// ─────────────────────────────────────────────
// ListUsers / GetUser
// ─────────────────────────────────────────────

func TestUserService_ListUsers_DecryptsNames(t *testing.T) {
	repo := &mockUserRepository{}
	svc, cipher := newRawUserService(t, repo)

	repo.getAllFn = func(ctx context.Context) ([]models.User, error) {
		return []models.User{
			encryptedUser(t, cipher, 1, "alice", "Dupont", "Alice"),
			encryptedUser(t, cipher, 2, "bob", "Martin", "Bob"),
		}, nil
	}

	responses, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, responses, 2)

	assert.Equal(t, "Dupont", responses[0].Nom)
	assert.Equal(t, "Alice", responses[0].Prenom)
	assert.Equal(t, "Martin", responses[1].Nom)
	assert.Equal(t, int64(2), responses[1].ID)
}

func TestUserService_ListUsers_Empty(t *testing.T) {
	repo := &mockUserRepository{
		getAllFn: func(ctx context.Context) ([]models.User, error) {
			return []models.User{}, nil
		},
	}
	svc, _ := newRawUserService(t, repo)

	responses, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, responses)
}

func TestUserService_ListUsers_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		getAllFn: func(ctx context.Context) ([]models.User, error) {
			return nil, store.ErrExecutingQuery
		},
	}
	svc, _ := newRawUserService(t, repo)

	_, err := svc.ListUsers(context.Background())
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestUserService_GetUser_Success(t *testing.T) {
	repo := &mockUserRepository{}
	svc, cipher := newRawUserService(t, repo)

	repo.getByIDFn = func(ctx context.Context, id int64) (models.User, error) {
		return encryptedUser(t, cipher, id, "alice", "Dupont", "Alice"), nil
	}

	response, err := svc.GetUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", response.Username)
	assert.Equal(t, "Dupont", response.Nom)
	assert.Equal(t, "Alice", response.Prenom)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		getByIDFn: func(ctx context.Context, id int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc, _ := newRawUserService(t, repo)

	_, err := svc.GetUser(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

// ─────────────────────────────────────────────
// CreateUser
// ─────────────────────────────────────────────

func TestUserService_CreateUser_HashesAndEncrypts(t *testing.T) {
	repo := &mockUserRepository{}
	svc, cipher := newRawUserService(t, repo)

	var persisted models.User
	repo.createFn = func(ctx context.Context, user models.User) (models.User, error) {
		persisted = user
		user.ID = 1
		return user, nil
	}

	req := models.CreateUserRequest{
		Username: "alice",
		Password: "s3cret",
		Role:     models.RoleCandidat,
		Nom:      "Dupont",
		Prenom:   "Alice",
	}

	response, err := svc.CreateUser(context.Background(), req)
	require.NoError(t, err)

	// the stored password is a verifiable bcrypt digest, never the plaintext
	assert.NotEqual(t, "s3cret", persisted.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte("s3cret")))

	// names reach the repository as ciphertext only
	assert.NotEqual(t, "Dupont", persisted.Nom)
	assert.NotEqual(t, "Alice", persisted.Prenom)

	decryptedNom, err := cipher.Decrypt(persisted.Nom)
	require.NoError(t, err)
	assert.Equal(t, "Dupont", decryptedNom)

	// the response echoes the plaintext names
	assert.Equal(t, int64(1), response.ID)
	assert.Equal(t, "Dupont", response.Nom)
	assert.Equal(t, "Alice", response.Prenom)
}

func TestUserService_CreateUser_UsernameTaken(t *testing.T) {
	created := false
	repo := &mockUserRepository{
		existsFn: func(ctx context.Context, username string) (bool, error) {
			return true, nil
		},
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			created = true
			return user, nil
		},
	}
	svc, _ := newRawUserService(t, repo)

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
		Username: "alice", Password: "s3cret", Role: models.RoleAdmin, Nom: "D", Prenom: "A",
	})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
	assert.False(t, created, "repository create must not run after a failed uniqueness check")
}

func TestUserService_CreateUser_RaceLostOnInsert(t *testing.T) {
	// pre-check passes, but a concurrent create wins; the unique index
	// surfaces the conflict from the insert itself
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}
	svc, _ := newRawUserService(t, repo)

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
		Username: "alice", Password: "s3cret", Role: models.RoleAdmin, Nom: "D", Prenom: "A",
	})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

// ─────────────────────────────────────────────
// UpdateUser
// ─────────────────────────────────────────────

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		getByIDFn: func(ctx context.Context, id int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc, _ := newRawUserService(t, repo)

	_, err := svc.UpdateUser(context.Background(), 99, models.UpdateUserRequest{})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_UpdateUser_UsernameCollision(t *testing.T) {
	repo := &mockUserRepository{}
	svc, cipher := newRawUserService(t, repo)

	repo.getByIDFn = func(ctx context.Context, id int64) (models.User, error) {
		return encryptedUser(t, cipher, id, "alice", "Dupont", "Alice"), nil
	}
	repo.existsExcludingFn = func(ctx context.Context, username string, id int64) (bool, error) {
		return username == "bob", nil
	}

	taken := "bob"
	_, err := svc.UpdateUser(context.Background(), 1, models.UpdateUserRequest{Username: &taken})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestUserService_UpdateUser_SameUsernameSkipsUniquenessCheck(t *testing.T) {
	repo := &mockUserRepository{}
	svc, cipher := newRawUserService(t, repo)

	repo.getByIDFn = func(ctx context.Context, id int64) (models.User, error) {
		return encryptedUser(t, cipher, id, "alice", "Dupont", "Alice"), nil
	}
	repo.existsExcludingFn = func(ctx context.Context, username string, id int64) (bool, error) {
		t.Fatal("uniqueness check must not run for an unchanged username")
		return false, nil
	}
	repo.updateFn = func(ctx context.Context, update models.UserUpdate) (models.User, error) {
		assert.Nil(t, update.Username, "unchanged username must not be part of the update")
		return encryptedUser(t, cipher, update.ID, "alice", "Dupont", "Alice"), nil
	}

	same := "alice"
	_, err := svc.UpdateUser(context.Background(), 1, models.UpdateUserRequest{Username: &same})
	require.NoError(t, err)
}

func TestUserService_UpdateUser_RehashesPasswordAndReencryptsNames(t *testing.T) {
	repo := &mockUserRepository{}
	svc, cipher := newRawUserService(t, repo)

	repo.getByIDFn = func(ctx context.Context, id int64) (models.User, error) {
		return encryptedUser(t, cipher, id, "alice", "Dupont", "Alice"), nil
	}

	var captured models.UserUpdate
	repo.updateFn = func(ctx context.Context, update models.UserUpdate) (models.User, error) {
		captured = update
		return encryptedUser(t, cipher, update.ID, "alice", "Martin", "Alice"), nil
	}

	password := "new-s3cret"
	nom := "Martin"
	response, err := svc.UpdateUser(context.Background(), 1, models.UpdateUserRequest{
		Password: &password,
		Nom:      &nom,
	})
	require.NoError(t, err)

	require.NotNil(t, captured.PasswordHash)
	assert.NotEqual(t, password, *captured.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*captured.PasswordHash), []byte(password)))

	require.NotNil(t, captured.Nom)
	assert.NotEqual(t, "Martin", *captured.Nom)
	decrypted, err := cipher.Decrypt(*captured.Nom)
	require.NoError(t, err)
	assert.Equal(t, "Martin", decrypted)

	assert.Nil(t, captured.Role, "untouched fields stay out of the update")
	assert.Nil(t, captured.Prenom)

	assert.Equal(t, "Martin", response.Nom)
}

func TestUserService_UpdateUser_EmptyPatchStillPersists(t *testing.T) {
	repo := &mockUserRepository{}
	svc, cipher := newRawUserService(t, repo)

	repo.getByIDFn = func(ctx context.Context, id int64) (models.User, error) {
		return encryptedUser(t, cipher, id, "alice", "Dupont", "Alice"), nil
	}

	persisted := false
	repo.updateFn = func(ctx context.Context, update models.UserUpdate) (models.User, error) {
		persisted = true
		assert.Equal(t, models.UserUpdate{ID: update.ID}, update)
		return encryptedUser(t, cipher, update.ID, "alice", "Dupont", "Alice"), nil
	}

	_, err := svc.UpdateUser(context.Background(), 1, models.UpdateUserRequest{})
	require.NoError(t, err)
	assert.True(t, persisted, "an empty patch still reaches the store to refresh updated_at")
}

// ─────────────────────────────────────────────
// DeleteUser
// ─────────────────────────────────────────────

func TestUserService_DeleteUser_Success(t *testing.T) {
	deleted := int64(0)
	repo := &mockUserRepository{
		existsByIDFn: func(ctx context.Context, id int64) (bool, error) {
			return true, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	svc, _ := newRawUserService(t, repo)

	require.NoError(t, svc.DeleteUser(context.Background(), 7))
	assert.Equal(t, int64(7), deleted)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		existsByIDFn: func(ctx context.Context, id int64) (bool, error) {
			return false, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			t.Fatal("delete must not run for a missing user")
			return nil
		},
	}
	svc, _ := newRawUserService(t, repo)

	err := svc.DeleteUser(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_DeleteUser_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		existsByIDFn: func(ctx context.Context, id int64) (bool, error) {
			return true, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			return errors.New("db network error")
		},
	}
	svc, _ := newRawUserService(t, repo)

	err := svc.DeleteUser(context.Background(), 7)
	assert.Error(t, err)
}
