// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators turns raw inbound query parameters into typed lookup
// queries and rejects malformed ones before any backend is contacted.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ParseUserQuery / ParseStorageQuery: build models.UserQuery and
//     models.StorageQuery from url.Values and validate them.
//
// Every failure is one of the sentinel errors in errors.go, so transport
// layers can map them to a client-error status with [IsValidationError].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
