// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the HTTP handlers
// and middleware.
//
// Service errors carry their own text. The Msg* constants cover failures
// detected before a request reaches a service.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidGzip is returned when a gzip-encoded body is corrupt.
	MsgInvalidGzip = "Invalid gzip data"

	// MsgReadBodyFailed is returned when the body could not be read for the
	// integrity check.
	MsgReadBodyFailed = "failed to read request body"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the body.
	MsgIntegrityCheckFailed = "Integrity check failed"

	// MsgInvalidShareFormat is returned for a share link requested in a
	// format other than png or svg.
	MsgInvalidShareFormat = "format must be png or svg"
)
