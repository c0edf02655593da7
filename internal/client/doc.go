// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the habit-tracker API.
//
// It parses a sub-command, calls the API through an [adapter.ServerAdapter]
// and keeps the bearer token between invocations in a local file.
package client
