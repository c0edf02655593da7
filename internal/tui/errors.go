// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/habit-tracker/internal/adapter"
)

// humanizeError turns adapter and network failures into a one-line message.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Invalid email or password"
	case errors.Is(err, adapter.ErrEmailAlreadyRegistered):
		return "Email already registered"
	case errors.Is(err, adapter.ErrServiceUnavailable):
		return "Server is temporarily unavailable"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unreachable"
	}

	return err.Error()
}
