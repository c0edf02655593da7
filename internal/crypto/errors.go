// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Password hashing errors.
var (
	// ErrEncoding is returned by [PasswordHasher.Hash] when the password
	// cannot be encoded for hashing (invalid UTF-8 or longer than 72 bytes).
	ErrEncoding = errors.New("password cannot be encoded for hashing")

	// ErrInvalidHashFormat is returned by [PasswordHasher.Verify] when the
	// stored hash is structurally unparseable. It indicates data corruption.
	ErrInvalidHashFormat = errors.New("stored password hash has invalid format")

	// ErrInvalidBcryptCost is returned by [NewPasswordHasher] when the
	// configured cost lies outside bcrypt's accepted range.
	ErrInvalidBcryptCost = errors.New("invalid bcrypt cost")
)

// Token errors. Callers must collapse all verification failures into a single
// unauthorized outcome; the distinction exists for diagnostics only.
var (
	// ErrTokenExpired is returned when the current time is past the "exp" claim.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenMalformed is returned when the token is not three base64url
	// segments or its header/payload is not valid JSON.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrSignatureInvalid is returned when the signature does not match the
	// recomputed one or the token declares an unexpected algorithm.
	ErrSignatureInvalid = errors.New("token signature is invalid")

	// ErrMissingClaim is returned when a required claim is absent.
	ErrMissingClaim = errors.New("token is missing a required claim")

	// ErrEmptySubject is returned by [TokenAuthority.Issue] for an empty subject.
	ErrEmptySubject = errors.New("token subject is empty")

	// ErrEmptySignKey is returned by [NewTokenAuthority] when no secret is set.
	ErrEmptySignKey = errors.New("token sign key is empty")

	// ErrUnsupportedAlgorithm is returned by [NewTokenAuthority] for any
	// algorithm outside the HMAC-SHA2 family.
	ErrUnsupportedAlgorithm = errors.New("unsupported token signing algorithm")
)
