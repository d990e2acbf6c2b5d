// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/alternajob/user-service/internal/crypto"
	"github.com/alternajob/user-service/internal/logger"
	"github.com/alternajob/user-service/internal/store"
	"github.com/alternajob/user-service/models"
)

// userService is the concrete implementation of [UserService].
// It orchestrates the user repository and the two cryptographic
// collaborators: the one-way password hasher and the reversible field
// cipher protecting nom/prenom at rest.
//
// The service holds no per-instance mutable state; it is safe for
// concurrent use after construction.
type userService struct {
	// userRepository is the data-access layer for user rows.
	userRepository store.UserRepository

	// hasher turns plaintext passwords into stored bcrypt digests.
	hasher crypto.PasswordHasher

	// cipher encrypts nom/prenom before persistence and decrypts them at
	// the moment a response shape is built. Ciphertext never crosses the
	// service boundary outward.
	cipher crypto.FieldCipher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a [UserService] wired to the given repository
// and crypto collaborators.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cipher crypto.FieldCipher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		cipher:         cipher,
		logger:         logger,
	}
}

// ListUsers returns the response shape of every stored user, in store
// enumeration order. Read-only; no side effects.
func (s *userService) ListUsers(ctx context.Context) ([]models.UserResponse, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	responses := make([]models.UserResponse, 0, len(users))
	for _, user := range users {
		response, err := s.toResponse(user)
		if err != nil {
			log.Err(err).Int64("id", user.ID).Msg("building user response failed")
			return nil, err
		}
		responses = append(responses, response)
	}

	return responses, nil
}

// GetUser returns the response shape for one user id.
//
// Returns store.ErrUserNotFound (wrapped) if the id does not exist.
func (s *userService) GetUser(ctx context.Context, id int64) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user search by id failed")
		return models.UserResponse{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return s.toResponse(user)
}

// CreateUser creates a new user account.
//
// The username is pre-checked for uniqueness (friendly error), the password
// is hashed, nom/prenom are encrypted, and the row is persisted in one store
// unit of work. The unique index backs the pre-check: a concurrent create of
// the same username surfaces as store.ErrUsernameAlreadyExists from the
// insert itself, never as a duplicate row.
//
// Returns the response shape of the persisted user; its nom/prenom are the
// decrypted values, equivalent to echoing the original plaintext.
func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	taken, err := s.userRepository.ExistsByUsername(ctx, req.Username)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("username existence check failed")
		return models.UserResponse{}, fmt.Errorf("username existence check failed: %w", err)
	}
	if taken {
		return models.UserResponse{}, fmt.Errorf("%w: %s", store.ErrUsernameAlreadyExists, req.Username)
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.UserResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	nom, prenom, err := s.encryptNames(req.Nom, req.Prenom)
	if err != nil {
		log.Err(err).Msg("name encryption failed")
		return models.UserResponse{}, err
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Role:         req.Role,
		Nom:          nom,
		Prenom:       prenom,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.UserResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", created.ID).Str("username", created.Username).Msg("user created")

	return s.toResponse(created)
}

// UpdateUser applies a partial-merge patch to an existing user.
//
// Only present patch fields overwrite the stored ones: a username change is
// re-checked for uniqueness against all *other* ids, a new password is
// re-hashed, new nom/prenom values are re-encrypted. updated_at is refreshed
// unconditionally once the operation reaches persistence, patch fields or
// not.
//
// Returns store.ErrUserNotFound if the id does not exist and
// store.ErrUsernameAlreadyExists on a username collision.
func (s *userService) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	current, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user search by id failed")
		return models.UserResponse{}, fmt.Errorf("user search by id failed: %w", err)
	}

	update := models.UserUpdate{ID: id}

	if req.Username != nil && *req.Username != current.Username {
		taken, err := s.userRepository.ExistsByUsernameExcluding(ctx, *req.Username, id)
		if err != nil {
			log.Err(err).Str("username", *req.Username).Msg("username existence check failed")
			return models.UserResponse{}, fmt.Errorf("username existence check failed: %w", err)
		}
		if taken {
			return models.UserResponse{}, fmt.Errorf("%w: %s", store.ErrUsernameAlreadyExists, *req.Username)
		}
		update.Username = req.Username
	}

	if req.Password != nil {
		passwordHash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.UserResponse{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.PasswordHash = &passwordHash
	}

	if req.Role != nil {
		update.Role = req.Role
	}

	if req.Nom != nil {
		nom, err := s.cipher.Encrypt(*req.Nom)
		if err != nil {
			log.Err(err).Msg("name encryption failed")
			return models.UserResponse{}, fmt.Errorf("name encryption failed: %w", err)
		}
		update.Nom = &nom
	}

	if req.Prenom != nil {
		prenom, err := s.cipher.Encrypt(*req.Prenom)
		if err != nil {
			log.Err(err).Msg("name encryption failed")
			return models.UserResponse{}, fmt.Errorf("name encryption failed: %w", err)
		}
		update.Prenom = &prenom
	}

	updated, err := s.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user update ended with error")
		return models.UserResponse{}, fmt.Errorf("user update ended with error: %w", err)
	}

	log.Info().Int64("id", updated.ID).Msg("user updated")

	return s.toResponse(updated)
}

// DeleteUser removes a user permanently.
//
// Returns store.ErrUserNotFound if the id does not exist. Hard delete, no
// tombstone.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	exists, err := s.userRepository.ExistsByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user existence check failed")
		return fmt.Errorf("user existence check failed: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: id %d", store.ErrUserNotFound, id)
	}

	if err = s.userRepository.DeleteUser(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	log.Info().Int64("id", id).Msg("user deleted")

	return nil
}

// encryptNames encrypts both name fields with the field cipher.
func (s *userService) encryptNames(nom, prenom string) (string, string, error) {
	encryptedNom, err := s.cipher.Encrypt(nom)
	if err != nil {
		return "", "", fmt.Errorf("name encryption failed: %w", err)
	}
	encryptedPrenom, err := s.cipher.Encrypt(prenom)
	if err != nil {
		return "", "", fmt.Errorf("name encryption failed: %w", err)
	}
	return encryptedNom, encryptedPrenom, nil
}

// toResponse builds the outward projection of a stored user. nom/prenom are
// decrypted here and nowhere else; the password hash is dropped entirely.
func (s *userService) toResponse(user models.User) (models.UserResponse, error) {
	nom, err := s.cipher.Decrypt(user.Nom)
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("name decryption failed: %w", err)
	}
	prenom, err := s.cipher.Decrypt(user.Prenom)
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("name decryption failed: %w", err)
	}

	return models.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		Nom:       nom,
		Prenom:    prenom,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}
