package service

import (
	"fmt"

	"github.com/alternajob/user-service/internal/config"
	"github.com/alternajob/user-service/internal/crypto"
	"github.com/alternajob/user-service/internal/logger"
	"github.com/alternajob/user-service/internal/store"
)

type Services struct {
	UserService UserService
}

// NewServices wires the service layer: bcrypt hasher and AES-GCM field
// cipher from the application config, the core user service on top of the
// repository, and the validation wrapper outermost so invalid requests are
// rejected before any hashing or storage work happens.
func NewServices(storages store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	hasher := crypto.NewPasswordHasher(cfg.BcryptCost)

	cipher, err := crypto.NewFieldCipher(cfg.FieldCipherKey)
	if err != nil {
		return nil, fmt.Errorf("error during field cipher init: %w", err)
	}

	userService := NewUserService(storages.UserRepository, hasher, cipher, logger)
	userService = NewUserValidationService().Wrap(userService)

	return &Services{
		UserService: userService,
	}, nil
}
