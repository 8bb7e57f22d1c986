// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators implements input validation shared by the API server
// and the terminal client.
//
// Two layers live here:
//   - Validate and Field: the single-input validator with its email,
//     password, required and custom modes, and the reconciliation of
//     external and internal error messages.
//   - Validator: request-level validation that runs the same rules over
//     every field of a request model and reports a models.FieldErrors.
package validators

import "context"

// Validator validates a request model. When fields are given only those
// fields are checked. Field failures are returned as models.FieldErrors;
// other errors mean the value could not be validated at all.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
