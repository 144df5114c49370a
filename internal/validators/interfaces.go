// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches a remote call or the
// database. The same rules run on the client (before a request is sent) and
// on the server (before anything is stored).
//
// Validate accepts any supported model and an optional list of field names.
// With no fields the model's default set is checked; naming fields restricts
// the check, which lets the server skip client-only rules such as the
// password confirmation.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the named
// fields. The first failing field is reported, wrapped around one of the
// sentinel errors of this package.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
