// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is a fatal startup error: the server config named
// neither an HTTP nor a gRPC address.
var errNoHandlersAreCreated = errors.New("no handlers are created")
