// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the sub-command in args and returns when it completes.
	Run(ctx context.Context, args []string) error
}

// TokenStore persists the bearer token between client invocations.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// UI is an interactive front end started by the "tui" command.
type UI interface {
	Run(ctx context.Context) error
}
