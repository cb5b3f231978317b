// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration carries no HTTP address. Without a listener there is nothing
// to serve, so the application fails at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
