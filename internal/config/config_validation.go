// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Rules:
//   - App.FieldCipherKey, when set, must be hex and decode to exactly
//     32 bytes (AES-256).
//   - App.BcryptCost, when set, must lie within the bcrypt library bounds.
//
// A missing cipher key or DSN is not rejected here: the admin console loads
// the same config and needs neither. The server entrypoint enforces their
// presence.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	var errs error

	if cfg.App.FieldCipherKey != "" {
		key, err := hex.DecodeString(cfg.App.FieldCipherKey)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("field cipher key is not valid hex: %w", err))
		} else if len(key) != 32 {
			errs = errors.Join(errs, fmt.Errorf("field cipher key must be 32 bytes, got %d", len(key)))
		}
	}

	if cfg.App.BcryptCost != 0 &&
		(cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost) {
		errs = errors.Join(errs, fmt.Errorf("bcrypt cost %d out of range [%d, %d]",
			cfg.App.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost))
	}

	return errs
}
