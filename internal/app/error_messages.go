// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// habit-tracker server handlers and the API client.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgAPIRunning is the body of the root endpoint.
	MsgAPIRunning = "HabitTracker API is running!"

	// MsgInvalidJSON is returned when the request body is not a JSON object
	// of the expected shape.
	MsgInvalidJSON = "Invalid JSON"

	// MsgInvalidOrExpiredToken is the single response to every rejected
	// bearer token, whatever the reason.
	MsgInvalidOrExpiredToken = "Invalid or expired token"

	// MsgInvalidEmailOrPassword is returned both for an unknown email and for
	// a wrong password.
	MsgInvalidEmailOrPassword = "Invalid email or password"

	// MsgEmailAlreadyRegistered is returned when registration hits an
	// existing account.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgServiceUnavailable is returned when the user store cannot be
	// reached.
	MsgServiceUnavailable = "Service temporarily unavailable"

	// MsgInternalServerError is returned for unexpected failures.
	MsgInternalServerError = "Internal Server Error"

	// StatusHealthy and StatusUnhealthy are the values of the health
	// endpoint's "status" field.
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)
