// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/habit-tracker/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// bcryptMaxPasswordLen is the number of password bytes bcrypt consumes.
const bcryptMaxPasswordLen = 72

// passwordHasher is the bcrypt implementation of [PasswordHasher].
type passwordHasher struct {
	// cost is used for new hashes only; verification reads the cost embedded
	// in the stored hash.
	cost int
}

// NewPasswordHasher constructs a [PasswordHasher] using the bcrypt cost from
// cfg. A zero cost selects [bcrypt.DefaultCost].
func NewPasswordHasher(cfg config.App) (PasswordHasher, error) {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBcryptCost, cost)
	}

	return &passwordHasher{cost: cost}, nil
}

// Hash implements [PasswordHasher].
func (h *passwordHasher) Hash(password string) (string, error) {
	if !utf8.ValidString(password) {
		return "", fmt.Errorf("%w: password is not valid UTF-8", ErrEncoding)
	}
	if len(password) > bcryptMaxPasswordLen {
		return "", fmt.Errorf("%w: password exceeds %d bytes", ErrEncoding, bcryptMaxPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}

	return string(hash), nil
}

// Verify implements [PasswordHasher].
func (h *passwordHasher) Verify(password, storedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	case errors.Is(err, bcrypt.ErrPasswordTooLong):
		// such a password could never have produced a stored hash
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrInvalidHashFormat, err)
	}
}
