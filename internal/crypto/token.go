// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/habit-tracker/internal/config"
	"github.com/MKhiriev/habit-tracker/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// reservedClaims cannot be set through the extra claims of [TokenAuthority.Issue].
var reservedClaims = map[string]struct{}{
	models.ClaimSubject:   {},
	models.ClaimUserID:    {},
	models.ClaimExpiresAt: {},
	models.ClaimIssuedAt:  {},
	models.ClaimTokenID:   {},
}

// tokenAuthority is the HMAC-SHA2 JWT implementation of [TokenAuthority].
type tokenAuthority struct {
	// signKey is the symmetric secret. It never leaves this struct.
	signKey []byte

	// method is the configured HMAC signing method; tokens declaring any
	// other "alg" are rejected.
	method *jwt.SigningMethodHMAC

	// lifetime is the default token lifetime.
	lifetime time.Duration

	// now is the UTC clock shared by issuance and verification.
	now func() time.Time

	// structure decodes header and payload without checking the signature.
	structure *jwt.Parser
}

// TokenAuthorityOption customizes a [TokenAuthority] built by [NewTokenAuthority].
type TokenAuthorityOption func(*tokenAuthority)

// WithClock replaces the wall clock used for "iat", "exp" and expiry checks.
// The returned times are converted to UTC.
func WithClock(now func() time.Time) TokenAuthorityOption {
	return func(a *tokenAuthority) {
		a.now = func() time.Time { return now().UTC() }
	}
}

// NewTokenAuthority constructs a [TokenAuthority] from the signing secret,
// algorithm and default lifetime in cfg.
//
// Returns ErrEmptySignKey if the secret is empty and ErrUnsupportedAlgorithm
// if the algorithm is not HS256, HS384 or HS512. An empty algorithm selects
// HS256 and a non-positive lifetime selects [config.DefaultTokenDuration].
func NewTokenAuthority(cfg config.App, opts ...TokenAuthorityOption) (TokenAuthority, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrEmptySignKey
	}

	alg := cfg.TokenAlgorithm
	if alg == "" {
		alg = config.DefaultTokenAlgorithm
	}
	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}

	lifetime := cfg.TokenDuration
	if lifetime <= 0 {
		lifetime = config.DefaultTokenDuration
	}

	a := &tokenAuthority{
		signKey:  []byte(cfg.TokenSignKey),
		method:   method,
		lifetime: lifetime,
		now:      func() time.Time { return time.Now().UTC() },

		structure: jwt.NewParser(jwt.WithStrictDecoding()),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Issue implements [TokenAuthority].
func (a *tokenAuthority) Issue(subjectID string, extra map[string]string, lifetime time.Duration) (models.Token, error) {
	if subjectID == "" {
		return models.Token{}, ErrEmptySubject
	}
	if lifetime <= 0 {
		lifetime = a.lifetime
	}

	issuedAt := jwt.NewNumericDate(a.now())
	expiresAt := jwt.NewNumericDate(issuedAt.Add(lifetime))

	claims := make(jwt.MapClaims, len(extra)+len(reservedClaims))
	for name, value := range extra {
		if _, reserved := reservedClaims[name]; reserved {
			continue
		}
		claims[name] = value
	}
	// numbers are kept as float64, the shape they have after decoding
	claims[models.ClaimSubject] = subjectID
	claims[models.ClaimUserID] = subjectID
	claims[models.ClaimTokenID] = uuid.NewString()
	claims[models.ClaimIssuedAt] = float64(issuedAt.Unix())
	claims[models.ClaimExpiresAt] = float64(expiresAt.Unix())

	signed, err := jwt.NewWithClaims(a.method, claims).SignedString(a.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: signed,
		Claims:       models.ClaimSet(claims),
		ExpiresAt:    expiresAt.UTC(),
	}, nil
}

// Verify implements [TokenAuthority].
//
// Header and payload are decoded first: a token whose structure cannot be
// read is ErrTokenMalformed whatever its signature looks like. The signature
// segment is then decoded strictly, so that flipping any character of it
// (including the trailing one whose low bits base64url would otherwise
// ignore) is reported as ErrSignatureInvalid.
func (a *tokenAuthority) Verify(tokenString string) (models.ClaimSet, error) {
	segments := strings.Split(tokenString, ".")
	if len(segments) != 3 {
		return nil, fmt.Errorf("%w: token must have 3 segments, got %d", ErrTokenMalformed, len(segments))
	}
	if _, _, err := a.structure.ParseUnverified(tokenString, jwt.MapClaims{}); errors.Is(err, jwt.ErrTokenMalformed) {
		return nil, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
	if _, err := base64.RawURLEncoding.Strict().DecodeString(segments[2]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSignatureInvalid, err)
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, a.keyFunc,
		jwt.WithValidMethods([]string{a.method.Alg()}),
		jwt.WithTimeFunc(a.now),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
	)
	if err != nil {
		return nil, classifyTokenError(err)
	}

	return models.ClaimSet(claims), nil
}

func (a *tokenAuthority) keyFunc(*jwt.Token) (any, error) {
	return a.signKey, nil
}

// classifyTokenError maps golang-jwt validation errors onto the package's
// token error taxonomy, keeping the original error in the chain.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrSignatureInvalid, err)
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return fmt.Errorf("%w: %w", ErrMissingClaim, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}
