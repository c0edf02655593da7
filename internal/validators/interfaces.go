// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks account input before the auth service acts on
// it: email shape and length, password presence, display name length and
// timezone names.
package validators

import "context"

// Validator checks value. When fields are given only those fields are
// checked; unknown field names yield ErrUnknownField.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
