// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request-level rules that sit outside the payload
// core: render options, export formats, history imports and templates.
//
// Validators are injected into services and called with an optional list of
// field names that restricts which rules run.
package validators

import "context"

// Validator validates v, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
