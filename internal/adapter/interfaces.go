// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the habit-tracker HTTP API.
//
// [ServerAdapter] hides the transport from callers. Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so that callers
// can use [errors.Is] (e.g. [ErrEmailAlreadyRegistered] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/habit-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the habit-tracker API on behalf of one user.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, credentials models.Credentials) (models.AccessTokenResponse, error)

	// Login exchanges credentials for a token and stores it.
	Login(ctx context.Context, credentials models.Credentials) (models.AccessTokenResponse, error)

	// CurrentUser returns the account the stored token belongs to.
	CurrentUser(ctx context.Context) (models.UserOut, error)

	// Health reports whether the API answers its health probe.
	Health(ctx context.Context) (models.StatusResponse, error)
}
