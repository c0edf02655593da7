// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated means neither SERVER_ADDRESS nor
	// SERVER_GRPC_ADDRESS produced a transport.
	errNoServersAreCreated = errors.New("no servers are created")
	errListen              = errors.New("cannot listen on address")
)
